package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Mahdi-Salimi/university-management-system/internal/model"
)

// SemesterRepository 学期数据访问接口
type SemesterRepository interface {
	Create(ctx context.Context, semester *model.Semester) error
	GetByID(ctx context.Context, id uint) (*model.Semester, error)
	List(ctx context.Context, offset, limit int) ([]model.Semester, int64, error)
	Update(ctx context.Context, semester *model.Semester) error
	Delete(ctx context.Context, id uint) error

	// ListContaining 选课开始 ≤ now ≤ 学期结束 的全部学期
	// 当前学期的唯一性由 Service 层裁决
	ListContaining(ctx context.Context, now time.Time) ([]model.Semester, error)
}

// semesterRepo SemesterRepository 的 GORM 实现
type semesterRepo struct {
	db *gorm.DB
}

// NewSemesterRepo 创建 SemesterRepository 实例
func NewSemesterRepo(db *gorm.DB) SemesterRepository {
	return &semesterRepo{db: db}
}

func (r *semesterRepo) Create(ctx context.Context, semester *model.Semester) error {
	return r.db.WithContext(ctx).Create(semester).Error
}

func (r *semesterRepo) GetByID(ctx context.Context, id uint) (*model.Semester, error) {
	var semester model.Semester
	if err := r.db.WithContext(ctx).First(&semester, id).Error; err != nil {
		return nil, err
	}
	return &semester, nil
}

func (r *semesterRepo) List(ctx context.Context, offset, limit int) ([]model.Semester, int64, error) {
	var semesters []model.Semester
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Semester{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("academic_year DESC, academic_semester").
		Offset(offset).Limit(limit).
		Find(&semesters).Error
	return semesters, total, err
}

func (r *semesterRepo) Update(ctx context.Context, semester *model.Semester) error {
	return r.db.WithContext(ctx).Save(semester).Error
}

func (r *semesterRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Semester{}, id).Error
}

func (r *semesterRepo) ListContaining(ctx context.Context, now time.Time) ([]model.Semester, error) {
	var semesters []model.Semester
	err := r.db.WithContext(ctx).
		Where("start_course_registration <= ? AND end_semester_date >= ?", now, now).
		Find(&semesters).Error
	return semesters, err
}
