package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Mahdi-Salimi/university-management-system/internal/dto"
	"github.com/Mahdi-Salimi/university-management-system/internal/model"
	"github.com/Mahdi-Salimi/university-management-system/internal/repository"
)

// ── 学期模块业务错误 ──

var (
	ErrSemesterNotFound  = errors.New("学期不存在")
	ErrSemesterTime      = errors.New("时间格式无效，需要 RFC 3339")
	ErrNoCurrentSemester = errors.New("当前不在任何学期内")
	ErrAmbiguousSemester = errors.New("当前时间落在多个学期内")
)

// SemesterWindowError 学期时间窗口校验失败，携带全部违反项
type SemesterWindowError struct {
	Violations []model.WindowViolation
}

func (e *SemesterWindowError) Error() string { return "学期时间窗口约束不满足" }

// SemesterService 学期业务接口
type SemesterService interface {
	Create(ctx context.Context, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.SemesterResponse, error)
	GetCurrent(ctx context.Context) (*dto.SemesterResponse, error)
	List(ctx context.Context, page *dto.PaginationRequest) ([]dto.SemesterResponse, int64, error)
	Update(ctx context.Context, id uint, req *dto.UpdateSemesterRequest) (*dto.SemesterResponse, error)
	Delete(ctx context.Context, id uint) error
}

type semesterService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewSemesterService 创建 SemesterService 实例
func NewSemesterService(repo *repository.Repository, logger *zap.Logger) SemesterService {
	return &semesterService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── Create ──────────────────────

func (s *semesterService) Create(ctx context.Context, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error) {
	semester := &model.Semester{
		AcademicYear:     req.AcademicYear,
		AcademicSemester: model.AcademicSemester(req.AcademicSemester),
	}

	fields := []struct {
		dst *time.Time
		src string
	}{
		{&semester.StartCourseRegistration, req.StartCourseRegistration},
		{&semester.EndCourseRegistration, req.EndCourseRegistration},
		{&semester.StartClassDate, req.StartClassDate},
		{&semester.EndClassDate, req.EndClassDate},
		{&semester.StartCourseModification, req.StartCourseModification},
		{&semester.EndCourseModification, req.EndCourseModification},
		{&semester.EndEmergencyModification, req.EndEmergencyModification},
		{&semester.StartExamDate, req.StartExamDate},
		{&semester.EndSemesterDate, req.EndSemesterDate},
	}
	for _, f := range fields {
		t, err := time.Parse(time.RFC3339, f.src)
		if err != nil {
			return nil, ErrSemesterTime
		}
		*f.dst = t
	}

	if violations := semester.ValidateWindows(); len(violations) > 0 {
		return nil, &SemesterWindowError{Violations: violations}
	}

	if err := s.repo.Semester.Create(ctx, semester); err != nil {
		s.logger.Error("创建学期失败", zap.Error(err))
		return nil, err
	}

	return toSemesterResponse(semester), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *semesterService) GetByID(ctx context.Context, id uint) (*dto.SemesterResponse, error) {
	semester, err := s.repo.Semester.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		s.logger.Error("查询学期失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toSemesterResponse(semester), nil
}

// ────────────────────── GetCurrent ──────────────────────

// GetCurrent 当前学期：唯一一个满足 选课开始 ≤ now ≤ 学期结束 的学期。
// 没有命中或命中多个都是明确的业务错误，不做任何猜测。
func (s *semesterService) GetCurrent(ctx context.Context) (*dto.SemesterResponse, error) {
	semesters, err := s.repo.Semester.ListContaining(ctx, s.now())
	if err != nil {
		s.logger.Error("查询当前学期失败", zap.Error(err))
		return nil, err
	}
	switch len(semesters) {
	case 0:
		return nil, ErrNoCurrentSemester
	case 1:
		return toSemesterResponse(&semesters[0]), nil
	default:
		return nil, ErrAmbiguousSemester
	}
}

// ────────────────────── List ──────────────────────

func (s *semesterService) List(ctx context.Context, page *dto.PaginationRequest) ([]dto.SemesterResponse, int64, error) {
	semesters, total, err := s.repo.Semester.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("列出学期失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.SemesterResponse, 0, len(semesters))
	for i := range semesters {
		result = append(result, *toSemesterResponse(&semesters[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *semesterService) Update(ctx context.Context, id uint, req *dto.UpdateSemesterRequest) (*dto.SemesterResponse, error) {
	semester, err := s.repo.Semester.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}

	if req.AcademicYear != nil {
		semester.AcademicYear = *req.AcademicYear
	}
	if req.AcademicSemester != nil {
		semester.AcademicSemester = model.AcademicSemester(*req.AcademicSemester)
	}

	patches := []struct {
		dst *time.Time
		src *string
	}{
		{&semester.StartCourseRegistration, req.StartCourseRegistration},
		{&semester.EndCourseRegistration, req.EndCourseRegistration},
		{&semester.StartClassDate, req.StartClassDate},
		{&semester.EndClassDate, req.EndClassDate},
		{&semester.StartCourseModification, req.StartCourseModification},
		{&semester.EndCourseModification, req.EndCourseModification},
		{&semester.EndEmergencyModification, req.EndEmergencyModification},
		{&semester.StartExamDate, req.StartExamDate},
		{&semester.EndSemesterDate, req.EndSemesterDate},
	}
	for _, p := range patches {
		if p.src == nil {
			continue
		}
		t, err := time.Parse(time.RFC3339, *p.src)
		if err != nil {
			return nil, ErrSemesterTime
		}
		*p.dst = t
	}

	// 对更新后的完整学期重新校验
	if violations := semester.ValidateWindows(); len(violations) > 0 {
		return nil, &SemesterWindowError{Violations: violations}
	}

	if err := s.repo.Semester.Update(ctx, semester); err != nil {
		s.logger.Error("更新学期失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toSemesterResponse(semester), nil
}

// ────────────────────── Delete ──────────────────────

func (s *semesterService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Semester.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSemesterNotFound
		}
		return err
	}
	if err := s.repo.Semester.Delete(ctx, id); err != nil {
		s.logger.Error("删除学期失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 响应映射 ──────────────────────

func toSemesterResponse(m *model.Semester) *dto.SemesterResponse {
	return &dto.SemesterResponse{
		ID:                       m.ID,
		AcademicYear:             m.AcademicYear,
		AcademicSemester:         string(m.AcademicSemester),
		SemesterCode:             m.SemesterCode(),
		StartCourseRegistration:  m.StartCourseRegistration.Format(time.RFC3339),
		EndCourseRegistration:    m.EndCourseRegistration.Format(time.RFC3339),
		StartClassDate:           m.StartClassDate.Format(time.RFC3339),
		EndClassDate:             m.EndClassDate.Format(time.RFC3339),
		StartCourseModification:  m.StartCourseModification.Format(time.RFC3339),
		EndCourseModification:    m.EndCourseModification.Format(time.RFC3339),
		EndEmergencyModification: m.EndEmergencyModification.Format(time.RFC3339),
		StartExamDate:            m.StartExamDate.Format(time.RFC3339),
		EndSemesterDate:          m.EndSemesterDate.Format(time.RFC3339),
	}
}
