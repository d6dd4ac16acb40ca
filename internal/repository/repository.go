package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	Account         AccountRepository
	Faculty         FacultyRepository
	FacultyGroup    FacultyGroupRepository
	FieldOfStudy    FieldOfStudyRepository
	AcademicField   AcademicFieldRepository
	Course          CourseRepository
	CourseType      CourseTypeRepository
	Semester        SemesterRepository
	SemesterCourse  SemesterCourseRepository
	ClassSession    ClassSessionRepository
	StudentCourse   StudentCourseRepository
	StudentSemester StudentSemesterRepository
	Student         StudentRepository
	Professor       ProfessorRepository
	Assistant       AssistantRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:              db,
		Account:         NewAccountRepo(db),
		Faculty:         NewFacultyRepo(db),
		FacultyGroup:    NewFacultyGroupRepo(db),
		FieldOfStudy:    NewFieldOfStudyRepo(db),
		AcademicField:   NewAcademicFieldRepo(db),
		Course:          NewCourseRepo(db),
		CourseType:      NewCourseTypeRepo(db),
		Semester:        NewSemesterRepo(db),
		SemesterCourse:  NewSemesterCourseRepo(db),
		ClassSession:    NewClassSessionRepo(db),
		StudentCourse:   NewStudentCourseRepo(db),
		StudentSemester: NewStudentSemesterRepo(db),
		Student:         NewStudentRepo(db),
		Professor:       NewProfessorRepo(db),
		Assistant:       NewAssistantRepo(db),
	}
}

// BeginTx 开启一个数据库事务
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	return tx, tx.Error
}

// WithTx 返回绑定到给定事务连接的 Repository 聚合
// 提交 / 回滚由调用方负责
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}
