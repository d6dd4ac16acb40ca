package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Mahdi-Salimi/university-management-system/internal/model"
)

// SemesterCourseRepository 开课数据访问接口
type SemesterCourseRepository interface {
	Create(ctx context.Context, sc *model.SemesterCourse) error
	GetByID(ctx context.Context, id uint) (*model.SemesterCourse, error)
	List(ctx context.Context, offset, limit int) ([]model.SemesterCourse, int64, error)
	ListBySemester(ctx context.Context, semesterID uint) ([]model.SemesterCourse, error)
	ListByProfessorAndSemester(ctx context.Context, professorID, semesterID uint) ([]model.SemesterCourse, error)
	Update(ctx context.Context, sc *model.SemesterCourse) error
	Delete(ctx context.Context, id uint) error
}

// semesterCourseRepo SemesterCourseRepository 的 GORM 实现
type semesterCourseRepo struct {
	db *gorm.DB
}

// NewSemesterCourseRepo 创建 SemesterCourseRepository 实例
func NewSemesterCourseRepo(db *gorm.DB) SemesterCourseRepository {
	return &semesterCourseRepo{db: db}
}

func (r *semesterCourseRepo) Create(ctx context.Context, sc *model.SemesterCourse) error {
	return r.db.WithContext(ctx).Create(sc).Error
}

func (r *semesterCourseRepo) GetByID(ctx context.Context, id uint) (*model.SemesterCourse, error) {
	var sc model.SemesterCourse
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Semester").
		First(&sc, id).Error
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func (r *semesterCourseRepo) List(ctx context.Context, offset, limit int) ([]model.SemesterCourse, int64, error) {
	var scs []model.SemesterCourse
	var total int64

	db := r.db.WithContext(ctx).Model(&model.SemesterCourse{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Course").Preload("Semester").
		Order("id").Offset(offset).Limit(limit).
		Find(&scs).Error
	return scs, total, err
}

func (r *semesterCourseRepo) ListBySemester(ctx context.Context, semesterID uint) ([]model.SemesterCourse, error) {
	var scs []model.SemesterCourse
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("semester_id = ?", semesterID).
		Find(&scs).Error
	return scs, err
}

func (r *semesterCourseRepo) ListByProfessorAndSemester(ctx context.Context, professorID, semesterID uint) ([]model.SemesterCourse, error) {
	var scs []model.SemesterCourse
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Semester").
		Where("professor_id = ? AND semester_id = ?", professorID, semesterID).
		Find(&scs).Error
	return scs, err
}

func (r *semesterCourseRepo) Update(ctx context.Context, sc *model.SemesterCourse) error {
	return r.db.WithContext(ctx).Save(sc).Error
}

func (r *semesterCourseRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.SemesterCourse{}, id).Error
}

// ClassSessionRepository 周课时数据访问接口
type ClassSessionRepository interface {
	Create(ctx context.Context, session *model.ClassSession) error
	GetByID(ctx context.Context, id uint) (*model.ClassSession, error)
	ListBySemesterCourse(ctx context.Context, semesterCourseID uint) ([]model.ClassSession, error)
	List(ctx context.Context, offset, limit int) ([]model.ClassSession, int64, error)
	Update(ctx context.Context, session *model.ClassSession) error
	Delete(ctx context.Context, id uint) error

	// ListForStudent 学生在某学期的全部周课时（经由选课记录连接）
	ListForStudent(ctx context.Context, studentID, semesterID uint) ([]model.ClassSession, error)
	// ListForProfessor 教授在某学期所授课程的全部周课时
	ListForProfessor(ctx context.Context, professorID, semesterID uint) ([]model.ClassSession, error)
}

// classSessionRepo ClassSessionRepository 的 GORM 实现
type classSessionRepo struct {
	db *gorm.DB
}

// NewClassSessionRepo 创建 ClassSessionRepository 实例
func NewClassSessionRepo(db *gorm.DB) ClassSessionRepository {
	return &classSessionRepo{db: db}
}

func (r *classSessionRepo) Create(ctx context.Context, session *model.ClassSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *classSessionRepo) GetByID(ctx context.Context, id uint) (*model.ClassSession, error) {
	var session model.ClassSession
	err := r.db.WithContext(ctx).
		Preload("SemesterCourse.Course").
		First(&session, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *classSessionRepo) ListBySemesterCourse(ctx context.Context, semesterCourseID uint) ([]model.ClassSession, error) {
	var sessions []model.ClassSession
	err := r.db.WithContext(ctx).
		Where("semester_course_id = ?", semesterCourseID).
		Find(&sessions).Error
	return sessions, err
}

func (r *classSessionRepo) List(ctx context.Context, offset, limit int) ([]model.ClassSession, int64, error) {
	var sessions []model.ClassSession
	var total int64

	db := r.db.WithContext(ctx).Model(&model.ClassSession{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("id").Offset(offset).Limit(limit).Find(&sessions).Error
	return sessions, total, err
}

func (r *classSessionRepo) Update(ctx context.Context, session *model.ClassSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *classSessionRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ClassSession{}, id).Error
}

func (r *classSessionRepo) ListForStudent(ctx context.Context, studentID, semesterID uint) ([]model.ClassSession, error) {
	var sessions []model.ClassSession
	err := r.db.WithContext(ctx).
		Preload("SemesterCourse.Course").
		Preload("SemesterCourse.Semester").
		Joins("JOIN semester_courses ON semester_courses.id = class_sessions.semester_course_id").
		Joins("JOIN student_courses ON student_courses.semester_course_id = semester_courses.id").
		Where("student_courses.student_id = ? AND semester_courses.semester_id = ?", studentID, semesterID).
		Where("student_courses.course_status = ?", model.AttemptStudying).
		Find(&sessions).Error
	return sessions, err
}

func (r *classSessionRepo) ListForProfessor(ctx context.Context, professorID, semesterID uint) ([]model.ClassSession, error) {
	var sessions []model.ClassSession
	err := r.db.WithContext(ctx).
		Preload("SemesterCourse.Course").
		Preload("SemesterCourse.Semester").
		Joins("JOIN semester_courses ON semester_courses.id = class_sessions.semester_course_id").
		Where("semester_courses.professor_id = ? AND semester_courses.semester_id = ?", professorID, semesterID).
		Find(&sessions).Error
	return sessions, err
}
