package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Mahdi-Salimi/university-management-system/internal/model"
)

// CourseRepository 课程数据访问接口
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id uint) (*model.Course, error)
	GetByCode(ctx context.Context, code string) (*model.Course, error)
	List(ctx context.Context, offset, limit int) ([]model.Course, int64, error)
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id uint) error

	// ReplacePrerequisites 以给定集合整体替换先修关系
	ReplacePrerequisites(ctx context.Context, course *model.Course, prerequisites []model.Course) error
	ReplaceCorequisites(ctx context.Context, course *model.Course, corequisites []model.Course) error

	// PrerequisiteEdges 全量先修邻接表（courseID → 先修课程 ID 列表），供成环检测使用
	PrerequisiteEdges(ctx context.Context) (map[uint][]uint, error)
	CorequisiteEdges(ctx context.Context) (map[uint][]uint, error)
}

// courseRepo CourseRepository 的 GORM 实现
type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Preload("Faculty").
		Preload("Prerequisites").
		Preload("Corequisites").
		First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) GetByCode(ctx context.Context, code string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) List(ctx context.Context, offset, limit int) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Course{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Faculty").
		Preload("Prerequisites").
		Preload("Corequisites").
		Order("id").Offset(offset).Limit(limit).
		Find(&courses).Error
	return courses, total, err
}

func (r *courseRepo) Update(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).
		Omit("Prerequisites", "Corequisites").
		Save(course).Error
}

func (r *courseRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Select("Prerequisites", "Corequisites").Delete(&model.Course{BaseModel: model.BaseModel{ID: id}}).Error
}

func (r *courseRepo) ReplacePrerequisites(ctx context.Context, course *model.Course, prerequisites []model.Course) error {
	return r.db.WithContext(ctx).Model(course).Association("Prerequisites").Replace(prerequisites)
}

func (r *courseRepo) ReplaceCorequisites(ctx context.Context, course *model.Course, corequisites []model.Course) error {
	return r.db.WithContext(ctx).Model(course).Association("Corequisites").Replace(corequisites)
}

// joinEdge 关系连接表的一行
type joinEdge struct {
	CourseID uint
	OtherID  uint
}

func (r *courseRepo) edges(ctx context.Context, table, otherColumn string) (map[uint][]uint, error) {
	var rows []joinEdge
	err := r.db.WithContext(ctx).
		Table(table).
		Select("course_id AS course_id, " + otherColumn + " AS other_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	edges := make(map[uint][]uint, len(rows))
	for _, row := range rows {
		edges[row.CourseID] = append(edges[row.CourseID], row.OtherID)
	}
	return edges, nil
}

func (r *courseRepo) PrerequisiteEdges(ctx context.Context) (map[uint][]uint, error) {
	return r.edges(ctx, "course_prerequisites", "prerequisite_id")
}

func (r *courseRepo) CorequisiteEdges(ctx context.Context) (map[uint][]uint, error) {
	return r.edges(ctx, "course_corequisites", "corequisite_id")
}

// CourseTypeRepository 课程分类数据访问接口
type CourseTypeRepository interface {
	Create(ctx context.Context, courseType *model.CourseType) error
	GetByID(ctx context.Context, id uint) (*model.CourseType, error)
	List(ctx context.Context, offset, limit int) ([]model.CourseType, int64, error)
	Update(ctx context.Context, courseType *model.CourseType) error
	Delete(ctx context.Context, id uint) error
}

type courseTypeRepo struct {
	db *gorm.DB
}

// NewCourseTypeRepo 创建 CourseTypeRepository 实例
func NewCourseTypeRepo(db *gorm.DB) CourseTypeRepository {
	return &courseTypeRepo{db: db}
}

func (r *courseTypeRepo) Create(ctx context.Context, courseType *model.CourseType) error {
	return r.db.WithContext(ctx).Create(courseType).Error
}

func (r *courseTypeRepo) GetByID(ctx context.Context, id uint) (*model.CourseType, error) {
	var courseType model.CourseType
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("AcademicField").
		First(&courseType, id).Error
	if err != nil {
		return nil, err
	}
	return &courseType, nil
}

func (r *courseTypeRepo) List(ctx context.Context, offset, limit int) ([]model.CourseType, int64, error) {
	var courseTypes []model.CourseType
	var total int64

	db := r.db.WithContext(ctx).Model(&model.CourseType{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Course").Preload("AcademicField").
		Order("id").Offset(offset).Limit(limit).
		Find(&courseTypes).Error
	return courseTypes, total, err
}

func (r *courseTypeRepo) Update(ctx context.Context, courseType *model.CourseType) error {
	return r.db.WithContext(ctx).Save(courseType).Error
}

func (r *courseTypeRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.CourseType{}, id).Error
}
