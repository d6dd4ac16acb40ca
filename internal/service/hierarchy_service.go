package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Mahdi-Salimi/university-management-system/internal/dto"
	"github.com/Mahdi-Salimi/university-management-system/internal/model"
	"github.com/Mahdi-Salimi/university-management-system/internal/repository"
)

// ── 组织层级模块业务错误 ──

var (
	ErrFacultyNotFound       = errors.New("学院不存在")
	ErrFacultyGroupNotFound  = errors.New("学院组不存在")
	ErrFieldOfStudyNotFound  = errors.New("专业方向不存在")
	ErrAcademicFieldNotFound = errors.New("培养方案不存在")
	ErrFacultyNameTaken      = errors.New("学院名称已存在")
)

// HierarchyService 组织层级业务接口：学院 → 学院组 → 专业方向 → 培养方案
type HierarchyService interface {
	CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*dto.FacultyResponse, error)
	GetFaculty(ctx context.Context, id uint) (*dto.FacultyResponse, error)
	ListFaculties(ctx context.Context, page *dto.PaginationRequest) ([]dto.FacultyResponse, int64, error)
	UpdateFaculty(ctx context.Context, id uint, req *dto.UpdateFacultyRequest) (*dto.FacultyResponse, error)
	DeleteFaculty(ctx context.Context, id uint) error

	CreateFacultyGroup(ctx context.Context, req *dto.CreateFacultyGroupRequest) (*dto.FacultyGroupResponse, error)
	GetFacultyGroup(ctx context.Context, id uint) (*dto.FacultyGroupResponse, error)
	ListFacultyGroups(ctx context.Context, page *dto.PaginationRequest) ([]dto.FacultyGroupResponse, int64, error)
	UpdateFacultyGroup(ctx context.Context, id uint, req *dto.UpdateFacultyGroupRequest) (*dto.FacultyGroupResponse, error)
	DeleteFacultyGroup(ctx context.Context, id uint) error

	CreateFieldOfStudy(ctx context.Context, req *dto.CreateFieldOfStudyRequest) (*dto.FieldOfStudyResponse, error)
	GetFieldOfStudy(ctx context.Context, id uint) (*dto.FieldOfStudyResponse, error)
	ListFieldsOfStudy(ctx context.Context, page *dto.PaginationRequest) ([]dto.FieldOfStudyResponse, int64, error)
	UpdateFieldOfStudy(ctx context.Context, id uint, req *dto.UpdateFieldOfStudyRequest) (*dto.FieldOfStudyResponse, error)
	DeleteFieldOfStudy(ctx context.Context, id uint) error

	CreateAcademicField(ctx context.Context, req *dto.CreateAcademicFieldRequest) (*dto.AcademicFieldResponse, error)
	GetAcademicField(ctx context.Context, id uint) (*dto.AcademicFieldResponse, error)
	ListAcademicFields(ctx context.Context, page *dto.PaginationRequest) ([]dto.AcademicFieldResponse, int64, error)
	UpdateAcademicField(ctx context.Context, id uint, req *dto.UpdateAcademicFieldRequest) (*dto.AcademicFieldResponse, error)
	DeleteAcademicField(ctx context.Context, id uint) error
}

type hierarchyService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHierarchyService 创建 HierarchyService 实例
func NewHierarchyService(repo *repository.Repository, logger *zap.Logger) HierarchyService {
	return &hierarchyService{repo: repo, logger: logger}
}

// ────────────────────── 学院 ──────────────────────

func (s *hierarchyService) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*dto.FacultyResponse, error) {
	if _, err := s.repo.Faculty.GetByName(ctx, req.Name); err == nil {
		return nil, ErrFacultyNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	faculty := &model.Faculty{Name: req.Name}
	if err := s.repo.Faculty.Create(ctx, faculty); err != nil {
		s.logger.Error("创建学院失败", zap.Error(err))
		return nil, err
	}
	return toFacultyResponse(faculty), nil
}

func (s *hierarchyService) GetFaculty(ctx context.Context, id uint) (*dto.FacultyResponse, error) {
	faculty, err := s.repo.Faculty.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacultyNotFound
		}
		return nil, err
	}
	return toFacultyResponse(faculty), nil
}

func (s *hierarchyService) ListFaculties(ctx context.Context, page *dto.PaginationRequest) ([]dto.FacultyResponse, int64, error) {
	faculties, total, err := s.repo.Faculty.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("列出学院失败", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.FacultyResponse, 0, len(faculties))
	for i := range faculties {
		result = append(result, *toFacultyResponse(&faculties[i]))
	}
	return result, total, nil
}

func (s *hierarchyService) UpdateFaculty(ctx context.Context, id uint, req *dto.UpdateFacultyRequest) (*dto.FacultyResponse, error) {
	faculty, err := s.repo.Faculty.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacultyNotFound
		}
		return nil, err
	}
	if req.Name != nil && *req.Name != faculty.Name {
		if _, err := s.repo.Faculty.GetByName(ctx, *req.Name); err == nil {
			return nil, ErrFacultyNameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		faculty.Name = *req.Name
	}
	if err := s.repo.Faculty.Update(ctx, faculty); err != nil {
		s.logger.Error("更新学院失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toFacultyResponse(faculty), nil
}

// DeleteFaculty 删除学院。下游引用（学院组、课程、教务助理）外键置空，
// 由数据库 ON DELETE SET NULL 完成
func (s *hierarchyService) DeleteFaculty(ctx context.Context, id uint) error {
	if _, err := s.repo.Faculty.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFacultyNotFound
		}
		return err
	}
	if err := s.repo.Faculty.Delete(ctx, id); err != nil {
		s.logger.Error("删除学院失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 学院组 ──────────────────────

func (s *hierarchyService) CreateFacultyGroup(ctx context.Context, req *dto.CreateFacultyGroupRequest) (*dto.FacultyGroupResponse, error) {
	if req.FacultyID != nil {
		if _, err := s.repo.Faculty.GetByID(ctx, *req.FacultyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFacultyNotFound
			}
			return nil, err
		}
	}
	group := &model.FacultyGroup{Name: req.Name, FacultyID: req.FacultyID}
	if err := s.repo.FacultyGroup.Create(ctx, group); err != nil {
		s.logger.Error("创建学院组失败", zap.Error(err))
		return nil, err
	}
	return s.GetFacultyGroup(ctx, group.ID)
}

func (s *hierarchyService) GetFacultyGroup(ctx context.Context, id uint) (*dto.FacultyGroupResponse, error) {
	group, err := s.repo.FacultyGroup.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacultyGroupNotFound
		}
		return nil, err
	}
	return toFacultyGroupResponse(group), nil
}

func (s *hierarchyService) ListFacultyGroups(ctx context.Context, page *dto.PaginationRequest) ([]dto.FacultyGroupResponse, int64, error) {
	groups, total, err := s.repo.FacultyGroup.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("列出学院组失败", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.FacultyGroupResponse, 0, len(groups))
	for i := range groups {
		result = append(result, *toFacultyGroupResponse(&groups[i]))
	}
	return result, total, nil
}

func (s *hierarchyService) UpdateFacultyGroup(ctx context.Context, id uint, req *dto.UpdateFacultyGroupRequest) (*dto.FacultyGroupResponse, error) {
	group, err := s.repo.FacultyGroup.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacultyGroupNotFound
		}
		return nil, err
	}
	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.FacultyID != nil {
		if _, err := s.repo.Faculty.GetByID(ctx, *req.FacultyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFacultyNotFound
			}
			return nil, err
		}
		group.FacultyID = req.FacultyID
	}
	if err := s.repo.FacultyGroup.Update(ctx, group); err != nil {
		s.logger.Error("更新学院组失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetFacultyGroup(ctx, group.ID)
}

func (s *hierarchyService) DeleteFacultyGroup(ctx context.Context, id uint) error {
	if _, err := s.repo.FacultyGroup.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFacultyGroupNotFound
		}
		return err
	}
	if err := s.repo.FacultyGroup.Delete(ctx, id); err != nil {
		s.logger.Error("删除学院组失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 专业方向 ──────────────────────

func (s *hierarchyService) CreateFieldOfStudy(ctx context.Context, req *dto.CreateFieldOfStudyRequest) (*dto.FieldOfStudyResponse, error) {
	if req.FacultyGroupID != nil {
		if _, err := s.repo.FacultyGroup.GetByID(ctx, *req.FacultyGroupID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFacultyGroupNotFound
			}
			return nil, err
		}
	}
	field := &model.FieldOfStudy{Name: req.Name, FacultyGroupID: req.FacultyGroupID}
	if err := s.repo.FieldOfStudy.Create(ctx, field); err != nil {
		s.logger.Error("创建专业方向失败", zap.Error(err))
		return nil, err
	}
	return s.GetFieldOfStudy(ctx, field.ID)
}

func (s *hierarchyService) GetFieldOfStudy(ctx context.Context, id uint) (*dto.FieldOfStudyResponse, error) {
	field, err := s.repo.FieldOfStudy.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFieldOfStudyNotFound
		}
		return nil, err
	}
	return toFieldOfStudyResponse(field), nil
}

func (s *hierarchyService) ListFieldsOfStudy(ctx context.Context, page *dto.PaginationRequest) ([]dto.FieldOfStudyResponse, int64, error) {
	fields, total, err := s.repo.FieldOfStudy.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("列出专业方向失败", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.FieldOfStudyResponse, 0, len(fields))
	for i := range fields {
		result = append(result, *toFieldOfStudyResponse(&fields[i]))
	}
	return result, total, nil
}

func (s *hierarchyService) UpdateFieldOfStudy(ctx context.Context, id uint, req *dto.UpdateFieldOfStudyRequest) (*dto.FieldOfStudyResponse, error) {
	field, err := s.repo.FieldOfStudy.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFieldOfStudyNotFound
		}
		return nil, err
	}
	if req.Name != nil {
		field.Name = *req.Name
	}
	if req.FacultyGroupID != nil {
		if _, err := s.repo.FacultyGroup.GetByID(ctx, *req.FacultyGroupID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFacultyGroupNotFound
			}
			return nil, err
		}
		field.FacultyGroupID = req.FacultyGroupID
	}
	if err := s.repo.FieldOfStudy.Update(ctx, field); err != nil {
		s.logger.Error("更新专业方向失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetFieldOfStudy(ctx, field.ID)
}

func (s *hierarchyService) DeleteFieldOfStudy(ctx context.Context, id uint) error {
	if _, err := s.repo.FieldOfStudy.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFieldOfStudyNotFound
		}
		return err
	}
	if err := s.repo.FieldOfStudy.Delete(ctx, id); err != nil {
		s.logger.Error("删除专业方向失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 培养方案 ──────────────────────

func (s *hierarchyService) CreateAcademicField(ctx context.Context, req *dto.CreateAcademicFieldRequest) (*dto.AcademicFieldResponse, error) {
	if _, err := s.repo.FieldOfStudy.GetByID(ctx, req.FieldOfStudyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFieldOfStudyNotFound
		}
		return nil, err
	}
	field := &model.AcademicField{
		AcademicLevel:  model.AcademicLevel(req.AcademicLevel),
		FieldOfStudyID: req.FieldOfStudyID,
		RequiredUnits:  req.RequiredUnits,
	}
	if err := s.repo.AcademicField.Create(ctx, field); err != nil {
		s.logger.Error("创建培养方案失败", zap.Error(err))
		return nil, err
	}
	return s.GetAcademicField(ctx, field.ID)
}

func (s *hierarchyService) GetAcademicField(ctx context.Context, id uint) (*dto.AcademicFieldResponse, error) {
	field, err := s.repo.AcademicField.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAcademicFieldNotFound
		}
		return nil, err
	}
	return toAcademicFieldResponse(field), nil
}

func (s *hierarchyService) ListAcademicFields(ctx context.Context, page *dto.PaginationRequest) ([]dto.AcademicFieldResponse, int64, error) {
	fields, total, err := s.repo.AcademicField.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("列出培养方案失败", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.AcademicFieldResponse, 0, len(fields))
	for i := range fields {
		result = append(result, *toAcademicFieldResponse(&fields[i]))
	}
	return result, total, nil
}

func (s *hierarchyService) UpdateAcademicField(ctx context.Context, id uint, req *dto.UpdateAcademicFieldRequest) (*dto.AcademicFieldResponse, error) {
	field, err := s.repo.AcademicField.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAcademicFieldNotFound
		}
		return nil, err
	}
	if req.AcademicLevel != nil {
		field.AcademicLevel = model.AcademicLevel(*req.AcademicLevel)
	}
	if req.FieldOfStudyID != nil {
		if _, err := s.repo.FieldOfStudy.GetByID(ctx, *req.FieldOfStudyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFieldOfStudyNotFound
			}
			return nil, err
		}
		field.FieldOfStudyID = *req.FieldOfStudyID
	}
	if req.RequiredUnits != nil {
		field.RequiredUnits = *req.RequiredUnits
	}
	if err := s.repo.AcademicField.Update(ctx, field); err != nil {
		s.logger.Error("更新培养方案失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetAcademicField(ctx, field.ID)
}

func (s *hierarchyService) DeleteAcademicField(ctx context.Context, id uint) error {
	if _, err := s.repo.AcademicField.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAcademicFieldNotFound
		}
		return err
	}
	if err := s.repo.AcademicField.Delete(ctx, id); err != nil {
		s.logger.Error("删除培养方案失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 响应映射 ──────────────────────

func toFacultyResponse(m *model.Faculty) *dto.FacultyResponse {
	if m == nil {
		return nil
	}
	return &dto.FacultyResponse{ID: m.ID, Name: m.Name}
}

func toFacultyGroupResponse(m *model.FacultyGroup) *dto.FacultyGroupResponse {
	if m == nil {
		return nil
	}
	return &dto.FacultyGroupResponse{
		ID:      m.ID,
		Name:    m.Name,
		Faculty: toFacultyResponse(m.Faculty),
	}
}

func toFieldOfStudyResponse(m *model.FieldOfStudy) *dto.FieldOfStudyResponse {
	if m == nil {
		return nil
	}
	return &dto.FieldOfStudyResponse{
		ID:           m.ID,
		Name:         m.Name,
		FacultyGroup: toFacultyGroupResponse(m.FacultyGroup),
	}
}

func toAcademicFieldResponse(m *model.AcademicField) *dto.AcademicFieldResponse {
	if m == nil {
		return nil
	}
	return &dto.AcademicFieldResponse{
		ID:            m.ID,
		AcademicLevel: string(m.AcademicLevel),
		FieldOfStudy:  toFieldOfStudyResponse(m.FieldOfStudy),
		RequiredUnits: m.RequiredUnits,
	}
}
