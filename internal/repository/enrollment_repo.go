package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Mahdi-Salimi/university-management-system/internal/model"
)

// StudentCourseRepository 选课记录数据访问接口
type StudentCourseRepository interface {
	Create(ctx context.Context, attempt *model.StudentCourse) error
	GetByID(ctx context.Context, id uint) (*model.StudentCourse, error)
	List(ctx context.Context, offset, limit int) ([]model.StudentCourse, int64, error)
	ListByStudent(ctx context.Context, studentID uint) ([]model.StudentCourse, error)
	ListByStudentAndSemester(ctx context.Context, studentID, semesterID uint) ([]model.StudentCourse, error)
	Update(ctx context.Context, attempt *model.StudentCourse) error
	Delete(ctx context.Context, id uint) error
}

// studentCourseRepo StudentCourseRepository 的 GORM 实现
type studentCourseRepo struct {
	db *gorm.DB
}

// NewStudentCourseRepo 创建 StudentCourseRepository 实例
func NewStudentCourseRepo(db *gorm.DB) StudentCourseRepository {
	return &studentCourseRepo{db: db}
}

func (r *studentCourseRepo) Create(ctx context.Context, attempt *model.StudentCourse) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *studentCourseRepo) GetByID(ctx context.Context, id uint) (*model.StudentCourse, error) {
	var attempt model.StudentCourse
	err := r.db.WithContext(ctx).
		Preload("SemesterCourse.Course").
		Preload("SemesterCourse.Semester").
		First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *studentCourseRepo) List(ctx context.Context, offset, limit int) ([]model.StudentCourse, int64, error) {
	var attempts []model.StudentCourse
	var total int64

	db := r.db.WithContext(ctx).Model(&model.StudentCourse{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("SemesterCourse.Course").
		Order("id").Offset(offset).Limit(limit).
		Find(&attempts).Error
	return attempts, total, err
}

func (r *studentCourseRepo) ListByStudent(ctx context.Context, studentID uint) ([]model.StudentCourse, error) {
	var attempts []model.StudentCourse
	err := r.db.WithContext(ctx).
		Preload("SemesterCourse.Course").
		Preload("SemesterCourse.Semester").
		Where("student_id = ?", studentID).
		Find(&attempts).Error
	return attempts, err
}

func (r *studentCourseRepo) ListByStudentAndSemester(ctx context.Context, studentID, semesterID uint) ([]model.StudentCourse, error) {
	var attempts []model.StudentCourse
	err := r.db.WithContext(ctx).
		Preload("SemesterCourse.Course").
		Preload("SemesterCourse.Semester").
		Joins("JOIN semester_courses ON semester_courses.id = student_courses.semester_course_id").
		Where("student_courses.student_id = ? AND semester_courses.semester_id = ?", studentID, semesterID).
		Find(&attempts).Error
	return attempts, err
}

func (r *studentCourseRepo) Update(ctx context.Context, attempt *model.StudentCourse) error {
	return r.db.WithContext(ctx).Save(attempt).Error
}

func (r *studentCourseRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.StudentCourse{}, id).Error
}

// StudentSemesterRepository 学期成绩数据访问接口
type StudentSemesterRepository interface {
	Create(ctx context.Context, record *model.StudentSemester) error
	GetByID(ctx context.Context, id uint) (*model.StudentSemester, error)
	GetByStudentAndSemester(ctx context.Context, studentID, semesterID uint) (*model.StudentSemester, error)
	List(ctx context.Context, offset, limit int) ([]model.StudentSemester, int64, error)
	ListByStudent(ctx context.Context, studentID uint) ([]model.StudentSemester, error)
	Update(ctx context.Context, record *model.StudentSemester) error
	Delete(ctx context.Context, id uint) error
}

// studentSemesterRepo StudentSemesterRepository 的 GORM 实现
type studentSemesterRepo struct {
	db *gorm.DB
}

// NewStudentSemesterRepo 创建 StudentSemesterRepository 实例
func NewStudentSemesterRepo(db *gorm.DB) StudentSemesterRepository {
	return &studentSemesterRepo{db: db}
}

func (r *studentSemesterRepo) Create(ctx context.Context, record *model.StudentSemester) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *studentSemesterRepo) GetByID(ctx context.Context, id uint) (*model.StudentSemester, error) {
	var record model.StudentSemester
	err := r.db.WithContext(ctx).
		Preload("Semester").
		First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *studentSemesterRepo) GetByStudentAndSemester(ctx context.Context, studentID, semesterID uint) (*model.StudentSemester, error) {
	var record model.StudentSemester
	err := r.db.WithContext(ctx).
		Preload("Semester").
		Where("student_id = ? AND semester_id = ?", studentID, semesterID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *studentSemesterRepo) List(ctx context.Context, offset, limit int) ([]model.StudentSemester, int64, error) {
	var records []model.StudentSemester
	var total int64

	db := r.db.WithContext(ctx).Model(&model.StudentSemester{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Semester").
		Order("id").Offset(offset).Limit(limit).
		Find(&records).Error
	return records, total, err
}

func (r *studentSemesterRepo) ListByStudent(ctx context.Context, studentID uint) ([]model.StudentSemester, error) {
	var records []model.StudentSemester
	err := r.db.WithContext(ctx).
		Preload("Semester").
		Where("student_id = ?", studentID).
		Find(&records).Error
	return records, err
}

func (r *studentSemesterRepo) Update(ctx context.Context, record *model.StudentSemester) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *studentSemesterRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.StudentSemester{}, id).Error
}
