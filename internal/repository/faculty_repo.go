package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Mahdi-Salimi/university-management-system/internal/model"
)

// ── 组织层级四级实体的数据访问接口 ──

// FacultyRepository 学院数据访问接口
type FacultyRepository interface {
	Create(ctx context.Context, faculty *model.Faculty) error
	GetByID(ctx context.Context, id uint) (*model.Faculty, error)
	GetByName(ctx context.Context, name string) (*model.Faculty, error)
	List(ctx context.Context, offset, limit int) ([]model.Faculty, int64, error)
	Update(ctx context.Context, faculty *model.Faculty) error
	Delete(ctx context.Context, id uint) error
}

type facultyRepo struct {
	db *gorm.DB
}

// NewFacultyRepo 创建 FacultyRepository 实例
func NewFacultyRepo(db *gorm.DB) FacultyRepository {
	return &facultyRepo{db: db}
}

func (r *facultyRepo) Create(ctx context.Context, faculty *model.Faculty) error {
	return r.db.WithContext(ctx).Create(faculty).Error
}

func (r *facultyRepo) GetByID(ctx context.Context, id uint) (*model.Faculty, error) {
	var faculty model.Faculty
	if err := r.db.WithContext(ctx).First(&faculty, id).Error; err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepo) GetByName(ctx context.Context, name string) (*model.Faculty, error) {
	var faculty model.Faculty
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&faculty).Error; err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepo) List(ctx context.Context, offset, limit int) ([]model.Faculty, int64, error) {
	var faculties []model.Faculty
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Faculty{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("id").Offset(offset).Limit(limit).Find(&faculties).Error
	return faculties, total, err
}

func (r *facultyRepo) Update(ctx context.Context, faculty *model.Faculty) error {
	return r.db.WithContext(ctx).Save(faculty).Error
}

func (r *facultyRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Faculty{}, id).Error
}

// FacultyGroupRepository 学院组数据访问接口
type FacultyGroupRepository interface {
	Create(ctx context.Context, group *model.FacultyGroup) error
	GetByID(ctx context.Context, id uint) (*model.FacultyGroup, error)
	List(ctx context.Context, offset, limit int) ([]model.FacultyGroup, int64, error)
	Update(ctx context.Context, group *model.FacultyGroup) error
	Delete(ctx context.Context, id uint) error
}

type facultyGroupRepo struct {
	db *gorm.DB
}

// NewFacultyGroupRepo 创建 FacultyGroupRepository 实例
func NewFacultyGroupRepo(db *gorm.DB) FacultyGroupRepository {
	return &facultyGroupRepo{db: db}
}

func (r *facultyGroupRepo) Create(ctx context.Context, group *model.FacultyGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *facultyGroupRepo) GetByID(ctx context.Context, id uint) (*model.FacultyGroup, error) {
	var group model.FacultyGroup
	err := r.db.WithContext(ctx).
		Preload("Faculty").
		First(&group, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *facultyGroupRepo) List(ctx context.Context, offset, limit int) ([]model.FacultyGroup, int64, error) {
	var groups []model.FacultyGroup
	var total int64

	db := r.db.WithContext(ctx).Model(&model.FacultyGroup{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Faculty").Order("id").Offset(offset).Limit(limit).Find(&groups).Error
	return groups, total, err
}

func (r *facultyGroupRepo) Update(ctx context.Context, group *model.FacultyGroup) error {
	return r.db.WithContext(ctx).Save(group).Error
}

func (r *facultyGroupRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.FacultyGroup{}, id).Error
}

// FieldOfStudyRepository 专业方向数据访问接口
type FieldOfStudyRepository interface {
	Create(ctx context.Context, field *model.FieldOfStudy) error
	GetByID(ctx context.Context, id uint) (*model.FieldOfStudy, error)
	List(ctx context.Context, offset, limit int) ([]model.FieldOfStudy, int64, error)
	Update(ctx context.Context, field *model.FieldOfStudy) error
	Delete(ctx context.Context, id uint) error
}

type fieldOfStudyRepo struct {
	db *gorm.DB
}

// NewFieldOfStudyRepo 创建 FieldOfStudyRepository 实例
func NewFieldOfStudyRepo(db *gorm.DB) FieldOfStudyRepository {
	return &fieldOfStudyRepo{db: db}
}

func (r *fieldOfStudyRepo) Create(ctx context.Context, field *model.FieldOfStudy) error {
	return r.db.WithContext(ctx).Create(field).Error
}

func (r *fieldOfStudyRepo) GetByID(ctx context.Context, id uint) (*model.FieldOfStudy, error) {
	var field model.FieldOfStudy
	err := r.db.WithContext(ctx).
		Preload("FacultyGroup.Faculty").
		First(&field, id).Error
	if err != nil {
		return nil, err
	}
	return &field, nil
}

func (r *fieldOfStudyRepo) List(ctx context.Context, offset, limit int) ([]model.FieldOfStudy, int64, error) {
	var fields []model.FieldOfStudy
	var total int64

	db := r.db.WithContext(ctx).Model(&model.FieldOfStudy{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("FacultyGroup.Faculty").Order("id").Offset(offset).Limit(limit).Find(&fields).Error
	return fields, total, err
}

func (r *fieldOfStudyRepo) Update(ctx context.Context, field *model.FieldOfStudy) error {
	return r.db.WithContext(ctx).Save(field).Error
}

func (r *fieldOfStudyRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.FieldOfStudy{}, id).Error
}

// AcademicFieldRepository 培养方案数据访问接口
type AcademicFieldRepository interface {
	Create(ctx context.Context, field *model.AcademicField) error
	GetByID(ctx context.Context, id uint) (*model.AcademicField, error)
	List(ctx context.Context, offset, limit int) ([]model.AcademicField, int64, error)
	Update(ctx context.Context, field *model.AcademicField) error
	Delete(ctx context.Context, id uint) error
}

type academicFieldRepo struct {
	db *gorm.DB
}

// NewAcademicFieldRepo 创建 AcademicFieldRepository 实例
func NewAcademicFieldRepo(db *gorm.DB) AcademicFieldRepository {
	return &academicFieldRepo{db: db}
}

func (r *academicFieldRepo) Create(ctx context.Context, field *model.AcademicField) error {
	return r.db.WithContext(ctx).Create(field).Error
}

func (r *academicFieldRepo) GetByID(ctx context.Context, id uint) (*model.AcademicField, error) {
	var field model.AcademicField
	err := r.db.WithContext(ctx).
		Preload("FieldOfStudy.FacultyGroup.Faculty").
		First(&field, id).Error
	if err != nil {
		return nil, err
	}
	return &field, nil
}

func (r *academicFieldRepo) List(ctx context.Context, offset, limit int) ([]model.AcademicField, int64, error) {
	var fields []model.AcademicField
	var total int64

	db := r.db.WithContext(ctx).Model(&model.AcademicField{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("FieldOfStudy.FacultyGroup.Faculty").Order("id").Offset(offset).Limit(limit).Find(&fields).Error
	return fields, total, err
}

func (r *academicFieldRepo) Update(ctx context.Context, field *model.AcademicField) error {
	return r.db.WithContext(ctx).Save(field).Error
}

func (r *academicFieldRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.AcademicField{}, id).Error
}
