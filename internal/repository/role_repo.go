package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Mahdi-Salimi/university-management-system/internal/model"
)

// ── 角色实体数据访问接口 ──
// 学院范围查询沿各角色的组织链连接，供分级授权的 faculty 档位使用

// StudentRepository 学生数据访问接口
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id uint) (*model.Student, error)
	GetByAccountID(ctx context.Context, accountID uint) (*model.Student, error)
	List(ctx context.Context, offset, limit int) ([]model.Student, int64, error)
	ListByFaculty(ctx context.Context, facultyID uint, offset, limit int) ([]model.Student, int64, error)
	ListByProfessor(ctx context.Context, professorID uint) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id uint) error

	// ExistsActiveWithNationalID 是否已有在读学生占用该国民身份号（排除给定学生）
	ExistsActiveWithNationalID(ctx context.Context, nationalID string, excludeStudentID uint) (bool, error)
}

// studentRepo StudentRepository 的 GORM 实现
type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

// studentPreloads 学生完整组织链的预加载
func studentPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Account").
		Preload("EntrySemester").
		Preload("AcademicField.FieldOfStudy.FacultyGroup").
		Preload("Professor")
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	if err := studentPreloads(r.db.WithContext(ctx)).First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) GetByAccountID(ctx context.Context, accountID uint) (*model.Student, error) {
	var student model.Student
	err := studentPreloads(r.db.WithContext(ctx)).
		Where("account_id = ?", accountID).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context, offset, limit int) ([]model.Student, int64, error) {
	var students []model.Student
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Student{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := studentPreloads(db).Order("id").Offset(offset).Limit(limit).Find(&students).Error
	return students, total, err
}

func (r *studentRepo) ListByFaculty(ctx context.Context, facultyID uint, offset, limit int) ([]model.Student, int64, error) {
	var students []model.Student
	var total int64

	// 培养方案 → 专业方向 → 学院组 → 学院
	db := r.db.WithContext(ctx).Model(&model.Student{}).
		Joins("JOIN academic_fields ON academic_fields.id = students.academic_field_id").
		Joins("JOIN fields_of_study ON fields_of_study.id = academic_fields.field_of_study_id").
		Joins("JOIN faculty_groups ON faculty_groups.id = fields_of_study.faculty_group_id").
		Where("faculty_groups.faculty_id = ?", facultyID)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := studentPreloads(db).Order("students.id").Offset(offset).Limit(limit).Find(&students).Error
	return students, total, err
}

func (r *studentRepo) ListByProfessor(ctx context.Context, professorID uint) ([]model.Student, error) {
	var students []model.Student
	err := studentPreloads(r.db.WithContext(ctx)).
		Where("professor_id = ?", professorID).
		Find(&students).Error
	return students, err
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Student{}, id).Error
}

func (r *studentRepo) ExistsActiveWithNationalID(ctx context.Context, nationalID string, excludeStudentID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Student{}).
		Joins("JOIN accounts ON accounts.id = students.account_id").
		Where("accounts.national_id = ?", nationalID).
		Where("students.status = ?", model.StudentStatusStudying).
		Where("students.id <> ?", excludeStudentID).
		Count(&count).Error
	return count > 0, err
}

// ProfessorRepository 教授数据访问接口
type ProfessorRepository interface {
	Create(ctx context.Context, professor *model.Professor) error
	GetByID(ctx context.Context, id uint) (*model.Professor, error)
	GetByAccountID(ctx context.Context, accountID uint) (*model.Professor, error)
	List(ctx context.Context, offset, limit int) ([]model.Professor, int64, error)
	ListByFaculty(ctx context.Context, facultyID uint, offset, limit int) ([]model.Professor, int64, error)
	Update(ctx context.Context, professor *model.Professor) error
	Delete(ctx context.Context, id uint) error
}

// professorRepo ProfessorRepository 的 GORM 实现
type professorRepo struct {
	db *gorm.DB
}

// NewProfessorRepo 创建 ProfessorRepository 实例
func NewProfessorRepo(db *gorm.DB) ProfessorRepository {
	return &professorRepo{db: db}
}

func professorPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Account").
		Preload("FacultyGroup.Faculty")
}

func (r *professorRepo) Create(ctx context.Context, professor *model.Professor) error {
	return r.db.WithContext(ctx).Create(professor).Error
}

func (r *professorRepo) GetByID(ctx context.Context, id uint) (*model.Professor, error) {
	var professor model.Professor
	if err := professorPreloads(r.db.WithContext(ctx)).First(&professor, id).Error; err != nil {
		return nil, err
	}
	return &professor, nil
}

func (r *professorRepo) GetByAccountID(ctx context.Context, accountID uint) (*model.Professor, error) {
	var professor model.Professor
	err := professorPreloads(r.db.WithContext(ctx)).
		Where("account_id = ?", accountID).
		First(&professor).Error
	if err != nil {
		return nil, err
	}
	return &professor, nil
}

func (r *professorRepo) List(ctx context.Context, offset, limit int) ([]model.Professor, int64, error) {
	var professors []model.Professor
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Professor{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := professorPreloads(db).Order("id").Offset(offset).Limit(limit).Find(&professors).Error
	return professors, total, err
}

func (r *professorRepo) ListByFaculty(ctx context.Context, facultyID uint, offset, limit int) ([]model.Professor, int64, error) {
	var professors []model.Professor
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Professor{}).
		Joins("JOIN faculty_groups ON faculty_groups.id = professors.faculty_group_id").
		Where("faculty_groups.faculty_id = ?", facultyID)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := professorPreloads(db).Order("professors.id").Offset(offset).Limit(limit).Find(&professors).Error
	return professors, total, err
}

func (r *professorRepo) Update(ctx context.Context, professor *model.Professor) error {
	return r.db.WithContext(ctx).Save(professor).Error
}

func (r *professorRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Professor{}, id).Error
}

// AssistantRepository 教务助理数据访问接口
type AssistantRepository interface {
	Create(ctx context.Context, assistant *model.Assistant) error
	GetByID(ctx context.Context, id uint) (*model.Assistant, error)
	GetByAccountID(ctx context.Context, accountID uint) (*model.Assistant, error)
	List(ctx context.Context, offset, limit int) ([]model.Assistant, int64, error)
	ListByFaculty(ctx context.Context, facultyID uint, offset, limit int) ([]model.Assistant, int64, error)
	Update(ctx context.Context, assistant *model.Assistant) error
	Delete(ctx context.Context, id uint) error
}

// assistantRepo AssistantRepository 的 GORM 实现
type assistantRepo struct {
	db *gorm.DB
}

// NewAssistantRepo 创建 AssistantRepository 实例
func NewAssistantRepo(db *gorm.DB) AssistantRepository {
	return &assistantRepo{db: db}
}

func (r *assistantRepo) Create(ctx context.Context, assistant *model.Assistant) error {
	return r.db.WithContext(ctx).Create(assistant).Error
}

func (r *assistantRepo) GetByID(ctx context.Context, id uint) (*model.Assistant, error) {
	var assistant model.Assistant
	err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Faculty").
		First(&assistant, id).Error
	if err != nil {
		return nil, err
	}
	return &assistant, nil
}

func (r *assistantRepo) GetByAccountID(ctx context.Context, accountID uint) (*model.Assistant, error) {
	var assistant model.Assistant
	err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Faculty").
		Where("account_id = ?", accountID).
		First(&assistant).Error
	if err != nil {
		return nil, err
	}
	return &assistant, nil
}

func (r *assistantRepo) List(ctx context.Context, offset, limit int) ([]model.Assistant, int64, error) {
	var assistants []model.Assistant
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Assistant{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Account").Preload("Faculty").
		Order("id").Offset(offset).Limit(limit).
		Find(&assistants).Error
	return assistants, total, err
}

func (r *assistantRepo) ListByFaculty(ctx context.Context, facultyID uint, offset, limit int) ([]model.Assistant, int64, error) {
	var assistants []model.Assistant
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Assistant{}).
		Where("faculty_id = ?", facultyID)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Account").Preload("Faculty").
		Order("id").Offset(offset).Limit(limit).
		Find(&assistants).Error
	return assistants, total, err
}

func (r *assistantRepo) Update(ctx context.Context, assistant *model.Assistant) error {
	return r.db.WithContext(ctx).Save(assistant).Error
}

func (r *assistantRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Assistant{}, id).Error
}
