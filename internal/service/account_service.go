package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Mahdi-Salimi/university-management-system/internal/authz"
	"github.com/Mahdi-Salimi/university-management-system/internal/dto"
	"github.com/Mahdi-Salimi/university-management-system/internal/model"
	"github.com/Mahdi-Salimi/university-management-system/internal/repository"
	"github.com/Mahdi-Salimi/university-management-system/internal/validation"
)

// ── 账户 / 角色模块业务错误 ──

var (
	ErrStudentNotFound    = errors.New("学生不存在")
	ErrProfessorNotFound  = errors.New("教授不存在")
	ErrAssistantNotFound  = errors.New("教务助理不存在")
	ErrUsernameTaken      = errors.New("用户名已被占用")
	ErrNationalIDTaken    = errors.New("该国民身份号已被在读学生占用")
	ErrUnknownCapability  = errors.New("未知的能力标识")
	ErrPermissionDenied   = errors.New("没有执行该操作的权限")
	ErrBirthdateInvalid   = errors.New("出生日期格式无效，需要 2006-01-02")
)

// AccountService 账户与角色业务接口。
// 角色读写按调用者授权档位收窄范围：越权访问一律以“不存在”掩蔽。
// 角色 id 为 0 表示调用者本人（路由层的 "me"）。
type AccountService interface {
	CreateStudent(ctx context.Context, caller *Caller, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetStudent(ctx context.Context, caller *Caller, id uint) (*dto.StudentResponse, error)
	ListStudents(ctx context.Context, caller *Caller, page *dto.PaginationRequest) ([]dto.StudentResponse, int64, error)
	UpdateStudent(ctx context.Context, caller *Caller, id uint, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	DeleteStudent(ctx context.Context, caller *Caller, id uint) error

	CreateProfessor(ctx context.Context, caller *Caller, req *dto.CreateProfessorRequest) (*dto.ProfessorResponse, error)
	GetProfessor(ctx context.Context, caller *Caller, id uint) (*dto.ProfessorResponse, error)
	ListProfessors(ctx context.Context, caller *Caller, page *dto.PaginationRequest) ([]dto.ProfessorResponse, int64, error)
	UpdateProfessor(ctx context.Context, caller *Caller, id uint, req *dto.UpdateProfessorRequest) (*dto.ProfessorResponse, error)
	DeleteProfessor(ctx context.Context, caller *Caller, id uint) error

	CreateAssistant(ctx context.Context, caller *Caller, req *dto.CreateAssistantRequest) (*dto.AssistantResponse, error)
	GetAssistant(ctx context.Context, caller *Caller, id uint) (*dto.AssistantResponse, error)
	ListAssistants(ctx context.Context, caller *Caller, page *dto.PaginationRequest) ([]dto.AssistantResponse, int64, error)
	UpdateAssistant(ctx context.Context, caller *Caller, id uint, req *dto.UpdateAssistantRequest) (*dto.AssistantResponse, error)
	DeleteAssistant(ctx context.Context, caller *Caller, id uint) error

	ListCapabilities(ctx context.Context, accountID uint) ([]string, error)
	GrantCapabilities(ctx context.Context, accountID uint, capabilities []string) error
	RevokeCapability(ctx context.Context, accountID uint, capability string) error
}

type accountService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAccountService 创建 AccountService 实例
func NewAccountService(repo *repository.Repository, logger *zap.Logger) AccountService {
	return &accountService{repo: repo, logger: logger}
}

// ────────────────────── 学生 ──────────────────────

func (s *accountService) CreateStudent(ctx context.Context, caller *Caller, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if !caller.CanCreate(authz.ResourceStudent) {
		return nil, ErrPermissionDenied
	}

	account, err := s.buildAccount(ctx, &req.Account)
	if err != nil {
		return nil, err
	}

	// 在读学生的国民身份号唯一
	taken, err := s.repo.Student.ExistsActiveWithNationalID(ctx, account.NationalID, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNationalIDTaken
	}

	student := &model.Student{
		EntrySemesterID: req.EntrySemesterID,
		AcademicFieldID: req.AcademicFieldID,
		ProfessorID:     req.ProfessorID,
		MilitaryService: model.MilitaryApplicable,
		Status:          model.StudentStatusStudying,
	}
	if req.MilitaryService != "" {
		student.MilitaryService = model.MilitaryService(req.MilitaryService)
	}
	if req.Status != "" {
		student.Status = model.StudentStatus(req.Status)
	}

	// 账户与角色必须同生共死
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	txRepo := s.repo.WithTx(tx)
	if err := txRepo.Account.Create(ctx, account); err != nil {
		tx.Rollback()
		s.logger.Error("创建学生账户失败", zap.Error(err))
		return nil, err
	}
	student.AccountID = account.ID
	if err := txRepo.Student.Create(ctx, student); err != nil {
		tx.Rollback()
		s.logger.Error("创建学生失败", zap.Error(err))
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetStudent(ctx, caller, student.ID)
}

func (s *accountService) GetStudent(ctx context.Context, caller *Caller, id uint) (*dto.StudentResponse, error) {
	student, err := s.scopedStudent(ctx, caller, id, authz.ActionView)
	if err != nil {
		return nil, err
	}
	return toStudentResponse(student), nil
}

func (s *accountService) ListStudents(ctx context.Context, caller *Caller, page *dto.PaginationRequest) ([]dto.StudentResponse, int64, error) {
	tier := caller.ResolveTier(authz.ResourceStudent, authz.ActionView)
	var (
		students []model.Student
		total    int64
		err      error
	)
	switch tier {
	case authz.TierAll:
		students, total, err = s.repo.Student.List(ctx, page.GetOffset(), page.GetPageSize())
	case authz.TierFaculty:
		scope, scopeErr := resolveCallerScope(ctx, s.repo, caller, authz.ResourceStudent)
		if scopeErr != nil {
			return nil, 0, scopeErr
		}
		if scope.FacultyID == nil {
			return []dto.StudentResponse{}, 0, nil
		}
		students, total, err = s.repo.Student.ListByFaculty(ctx, *scope.FacultyID, page.GetOffset(), page.GetPageSize())
	case authz.TierSelf:
		// 本人档位的列表是单元素
		own, selfErr := s.repo.Student.GetByAccountID(ctx, caller.AccountID)
		if selfErr != nil {
			if errors.Is(selfErr, gorm.ErrRecordNotFound) {
				return []dto.StudentResponse{}, 0, nil
			}
			return nil, 0, selfErr
		}
		students, total = []model.Student{*own}, 1
	default:
		return []dto.StudentResponse{}, 0, nil
	}
	if err != nil {
		s.logger.Error("列出学生失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, *toStudentResponse(&students[i]))
	}
	return result, total, nil
}

func (s *accountService) UpdateStudent(ctx context.Context, caller *Caller, id uint, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.scopedStudent(ctx, caller, id, authz.ActionChange)
	if err != nil {
		return nil, err
	}

	if req.Account != nil {
		oldNationalID := ""
		if student.Account != nil {
			oldNationalID = student.Account.NationalID
		}
		if err := s.patchAccount(ctx, student.Account, req.Account); err != nil {
			return nil, err
		}
		// 在读学生换身份号要重查占用
		if student.Account != nil && student.Account.NationalID != oldNationalID && student.Status.Active() {
			taken, err := s.repo.Student.ExistsActiveWithNationalID(ctx, student.Account.NationalID, student.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrNationalIDTaken
			}
		}
	}
	if req.EntrySemesterID != nil {
		student.EntrySemesterID = req.EntrySemesterID
	}
	if req.AcademicFieldID != nil {
		student.AcademicFieldID = req.AcademicFieldID
	}
	if req.ProfessorID != nil {
		student.ProfessorID = req.ProfessorID
	}
	if req.MilitaryService != nil {
		student.MilitaryService = model.MilitaryService(*req.MilitaryService)
	}
	if req.AllowedHalfYears != nil {
		student.AllowedHalfYears = *req.AllowedHalfYears
	}
	if req.Status != nil {
		newStatus := model.StudentStatus(*req.Status)
		// 转回在读要重查身份号占用
		if newStatus.Active() && !student.Status.Active() {
			taken, err := s.repo.Student.ExistsActiveWithNationalID(ctx, student.Account.NationalID, student.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrNationalIDTaken
			}
		}
		student.Status = newStatus
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	txRepo := s.repo.WithTx(tx)
	if student.Account != nil {
		if err := txRepo.Account.Update(ctx, student.Account); err != nil {
			tx.Rollback()
			s.logger.Error("更新学生账户失败", zap.Uint("id", id), zap.Error(err))
			return nil, err
		}
	}
	if err := txRepo.Student.Update(ctx, student); err != nil {
		tx.Rollback()
		s.logger.Error("更新学生失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetStudent(ctx, caller, student.ID)
}

func (s *accountService) DeleteStudent(ctx context.Context, caller *Caller, id uint) error {
	student, err := s.scopedStudent(ctx, caller, id, authz.ActionDelete)
	if err != nil {
		return err
	}
	return s.deleteRoleWithAccount(ctx, student.AccountID, func(r *repository.Repository) error {
		return r.Student.Delete(ctx, student.ID)
	})
}

// scopedStudent 按档位加载学生，越权以不存在掩蔽。id 为 0 解析为本人
func (s *accountService) scopedStudent(ctx context.Context, caller *Caller, id uint, action authz.Action) (*model.Student, error) {
	tier := caller.ResolveTier(authz.ResourceStudent, action)
	if tier == authz.TierNone {
		return nil, ErrStudentNotFound
	}

	var (
		student *model.Student
		err     error
	)
	if id == 0 {
		student, err = s.repo.Student.GetByAccountID(ctx, caller.AccountID)
	} else {
		student, err = s.repo.Student.GetByID(ctx, id)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	switch tier {
	case authz.TierAll:
		return student, nil
	case authz.TierFaculty:
		scope, err := resolveCallerScope(ctx, s.repo, caller, authz.ResourceStudent)
		if err != nil {
			return nil, err
		}
		target := student.ResolveFacultyID()
		if scope.FacultyID != nil && target != nil && *scope.FacultyID == *target {
			return student, nil
		}
	case authz.TierSelf:
		if student.AccountID == caller.AccountID {
			return student, nil
		}
	}
	return nil, ErrStudentNotFound
}

// ────────────────────── 教授 ──────────────────────

func (s *accountService) CreateProfessor(ctx context.Context, caller *Caller, req *dto.CreateProfessorRequest) (*dto.ProfessorResponse, error) {
	if !caller.CanCreate(authz.ResourceProfessor) {
		return nil, ErrPermissionDenied
	}

	account, err := s.buildAccount(ctx, &req.Account)
	if err != nil {
		return nil, err
	}

	professor := &model.Professor{
		FacultyGroupID: req.FacultyGroupID,
		Rank:           model.RankAssistant,
		Expertise:      req.Expertise,
	}
	if req.Rank != "" {
		professor.Rank = model.ProfessorRank(req.Rank)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	txRepo := s.repo.WithTx(tx)
	if err := txRepo.Account.Create(ctx, account); err != nil {
		tx.Rollback()
		s.logger.Error("创建教授账户失败", zap.Error(err))
		return nil, err
	}
	professor.AccountID = account.ID
	if err := txRepo.Professor.Create(ctx, professor); err != nil {
		tx.Rollback()
		s.logger.Error("创建教授失败", zap.Error(err))
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetProfessor(ctx, caller, professor.ID)
}

func (s *accountService) GetProfessor(ctx context.Context, caller *Caller, id uint) (*dto.ProfessorResponse, error) {
	professor, err := s.scopedProfessor(ctx, caller, id, authz.ActionView)
	if err != nil {
		return nil, err
	}
	return toProfessorResponse(professor), nil
}

func (s *accountService) ListProfessors(ctx context.Context, caller *Caller, page *dto.PaginationRequest) ([]dto.ProfessorResponse, int64, error) {
	tier := caller.ResolveTier(authz.ResourceProfessor, authz.ActionView)
	var (
		professors []model.Professor
		total      int64
		err        error
	)
	switch tier {
	case authz.TierAll:
		professors, total, err = s.repo.Professor.List(ctx, page.GetOffset(), page.GetPageSize())
	case authz.TierFaculty:
		scope, scopeErr := resolveCallerScope(ctx, s.repo, caller, authz.ResourceProfessor)
		if scopeErr != nil {
			return nil, 0, scopeErr
		}
		if scope.FacultyID == nil {
			return []dto.ProfessorResponse{}, 0, nil
		}
		professors, total, err = s.repo.Professor.ListByFaculty(ctx, *scope.FacultyID, page.GetOffset(), page.GetPageSize())
	case authz.TierSelf:
		own, selfErr := s.repo.Professor.GetByAccountID(ctx, caller.AccountID)
		if selfErr != nil {
			if errors.Is(selfErr, gorm.ErrRecordNotFound) {
				return []dto.ProfessorResponse{}, 0, nil
			}
			return nil, 0, selfErr
		}
		professors, total = []model.Professor{*own}, 1
	default:
		return []dto.ProfessorResponse{}, 0, nil
	}
	if err != nil {
		s.logger.Error("列出教授失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.ProfessorResponse, 0, len(professors))
	for i := range professors {
		result = append(result, *toProfessorResponse(&professors[i]))
	}
	return result, total, nil
}

func (s *accountService) UpdateProfessor(ctx context.Context, caller *Caller, id uint, req *dto.UpdateProfessorRequest) (*dto.ProfessorResponse, error) {
	professor, err := s.scopedProfessor(ctx, caller, id, authz.ActionChange)
	if err != nil {
		return nil, err
	}

	if req.Account != nil {
		if err := s.patchAccount(ctx, professor.Account, req.Account); err != nil {
			return nil, err
		}
	}
	if req.FacultyGroupID != nil {
		professor.FacultyGroupID = req.FacultyGroupID
	}
	if req.Rank != nil {
		professor.Rank = model.ProfessorRank(*req.Rank)
	}
	if req.Expertise != nil {
		professor.Expertise = req.Expertise
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	txRepo := s.repo.WithTx(tx)
	if professor.Account != nil {
		if err := txRepo.Account.Update(ctx, professor.Account); err != nil {
			tx.Rollback()
			s.logger.Error("更新教授账户失败", zap.Uint("id", id), zap.Error(err))
			return nil, err
		}
	}
	if err := txRepo.Professor.Update(ctx, professor); err != nil {
		tx.Rollback()
		s.logger.Error("更新教授失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetProfessor(ctx, caller, professor.ID)
}

func (s *accountService) DeleteProfessor(ctx context.Context, caller *Caller, id uint) error {
	professor, err := s.scopedProfessor(ctx, caller, id, authz.ActionDelete)
	if err != nil {
		return err
	}
	return s.deleteRoleWithAccount(ctx, professor.AccountID, func(r *repository.Repository) error {
		return r.Professor.Delete(ctx, professor.ID)
	})
}

func (s *accountService) scopedProfessor(ctx context.Context, caller *Caller, id uint, action authz.Action) (*model.Professor, error) {
	tier := caller.ResolveTier(authz.ResourceProfessor, action)
	if tier == authz.TierNone {
		return nil, ErrProfessorNotFound
	}

	var (
		professor *model.Professor
		err       error
	)
	if id == 0 {
		professor, err = s.repo.Professor.GetByAccountID(ctx, caller.AccountID)
	} else {
		professor, err = s.repo.Professor.GetByID(ctx, id)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessorNotFound
		}
		return nil, err
	}

	switch tier {
	case authz.TierAll:
		return professor, nil
	case authz.TierFaculty:
		scope, err := resolveCallerScope(ctx, s.repo, caller, authz.ResourceProfessor)
		if err != nil {
			return nil, err
		}
		target := professor.ResolveFacultyID()
		if scope.FacultyID != nil && target != nil && *scope.FacultyID == *target {
			return professor, nil
		}
	case authz.TierSelf:
		if professor.AccountID == caller.AccountID {
			return professor, nil
		}
	}
	return nil, ErrProfessorNotFound
}

// ────────────────────── 教务助理 ──────────────────────

func (s *accountService) CreateAssistant(ctx context.Context, caller *Caller, req *dto.CreateAssistantRequest) (*dto.AssistantResponse, error) {
	if !caller.CanCreate(authz.ResourceAssistant) {
		return nil, ErrPermissionDenied
	}

	account, err := s.buildAccount(ctx, &req.Account)
	if err != nil {
		return nil, err
	}

	assistant := &model.Assistant{FacultyID: req.FacultyID}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	txRepo := s.repo.WithTx(tx)
	if err := txRepo.Account.Create(ctx, account); err != nil {
		tx.Rollback()
		s.logger.Error("创建教务助理账户失败", zap.Error(err))
		return nil, err
	}
	assistant.AccountID = account.ID
	if err := txRepo.Assistant.Create(ctx, assistant); err != nil {
		tx.Rollback()
		s.logger.Error("创建教务助理失败", zap.Error(err))
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetAssistant(ctx, caller, assistant.ID)
}

func (s *accountService) GetAssistant(ctx context.Context, caller *Caller, id uint) (*dto.AssistantResponse, error) {
	assistant, err := s.scopedAssistant(ctx, caller, id, authz.ActionView)
	if err != nil {
		return nil, err
	}
	return toAssistantResponse(assistant), nil
}

func (s *accountService) ListAssistants(ctx context.Context, caller *Caller, page *dto.PaginationRequest) ([]dto.AssistantResponse, int64, error) {
	tier := caller.ResolveTier(authz.ResourceAssistant, authz.ActionView)
	var (
		assistants []model.Assistant
		total      int64
		err        error
	)
	switch tier {
	case authz.TierAll:
		assistants, total, err = s.repo.Assistant.List(ctx, page.GetOffset(), page.GetPageSize())
	case authz.TierFaculty:
		scope, scopeErr := resolveCallerScope(ctx, s.repo, caller, authz.ResourceAssistant)
		if scopeErr != nil {
			return nil, 0, scopeErr
		}
		if scope.FacultyID == nil {
			return []dto.AssistantResponse{}, 0, nil
		}
		assistants, total, err = s.repo.Assistant.ListByFaculty(ctx, *scope.FacultyID, page.GetOffset(), page.GetPageSize())
	case authz.TierSelf:
		own, selfErr := s.repo.Assistant.GetByAccountID(ctx, caller.AccountID)
		if selfErr != nil {
			if errors.Is(selfErr, gorm.ErrRecordNotFound) {
				return []dto.AssistantResponse{}, 0, nil
			}
			return nil, 0, selfErr
		}
		assistants, total = []model.Assistant{*own}, 1
	default:
		return []dto.AssistantResponse{}, 0, nil
	}
	if err != nil {
		s.logger.Error("列出教务助理失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.AssistantResponse, 0, len(assistants))
	for i := range assistants {
		result = append(result, *toAssistantResponse(&assistants[i]))
	}
	return result, total, nil
}

func (s *accountService) UpdateAssistant(ctx context.Context, caller *Caller, id uint, req *dto.UpdateAssistantRequest) (*dto.AssistantResponse, error) {
	assistant, err := s.scopedAssistant(ctx, caller, id, authz.ActionChange)
	if err != nil {
		return nil, err
	}

	if req.Account != nil {
		if err := s.patchAccount(ctx, assistant.Account, req.Account); err != nil {
			return nil, err
		}
	}
	if req.FacultyID != nil {
		assistant.FacultyID = req.FacultyID
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	txRepo := s.repo.WithTx(tx)
	if assistant.Account != nil {
		if err := txRepo.Account.Update(ctx, assistant.Account); err != nil {
			tx.Rollback()
			s.logger.Error("更新教务助理账户失败", zap.Uint("id", id), zap.Error(err))
			return nil, err
		}
	}
	if err := txRepo.Assistant.Update(ctx, assistant); err != nil {
		tx.Rollback()
		s.logger.Error("更新教务助理失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetAssistant(ctx, caller, assistant.ID)
}

func (s *accountService) DeleteAssistant(ctx context.Context, caller *Caller, id uint) error {
	assistant, err := s.scopedAssistant(ctx, caller, id, authz.ActionDelete)
	if err != nil {
		return err
	}
	return s.deleteRoleWithAccount(ctx, assistant.AccountID, func(r *repository.Repository) error {
		return r.Assistant.Delete(ctx, assistant.ID)
	})
}

func (s *accountService) scopedAssistant(ctx context.Context, caller *Caller, id uint, action authz.Action) (*model.Assistant, error) {
	tier := caller.ResolveTier(authz.ResourceAssistant, action)
	if tier == authz.TierNone {
		return nil, ErrAssistantNotFound
	}

	var (
		assistant *model.Assistant
		err       error
	)
	if id == 0 {
		assistant, err = s.repo.Assistant.GetByAccountID(ctx, caller.AccountID)
	} else {
		assistant, err = s.repo.Assistant.GetByID(ctx, id)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssistantNotFound
		}
		return nil, err
	}

	switch tier {
	case authz.TierAll:
		return assistant, nil
	case authz.TierFaculty:
		scope, err := resolveCallerScope(ctx, s.repo, caller, authz.ResourceAssistant)
		if err != nil {
			return nil, err
		}
		target := assistant.ResolveFacultyID()
		if scope.FacultyID != nil && target != nil && *scope.FacultyID == *target {
			return assistant, nil
		}
	case authz.TierSelf:
		if assistant.AccountID == caller.AccountID {
			return assistant, nil
		}
	}
	return nil, ErrAssistantNotFound
}

// ────────────────────── 能力授权 ──────────────────────

func (s *accountService) ListCapabilities(ctx context.Context, accountID uint) ([]string, error) {
	if _, err := s.repo.Account.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return s.repo.Account.Capabilities(ctx, accountID)
}

func (s *accountService) GrantCapabilities(ctx context.Context, accountID uint, capabilities []string) error {
	if _, err := s.repo.Account.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	for _, c := range capabilities {
		if !authz.Known(c) {
			return ErrUnknownCapability
		}
	}
	if err := s.repo.Account.GrantCapabilities(ctx, accountID, capabilities); err != nil {
		s.logger.Error("授予能力失败", zap.Uint("account_id", accountID), zap.Error(err))
		return err
	}
	return nil
}

func (s *accountService) RevokeCapability(ctx context.Context, accountID uint, capability string) error {
	if err := s.repo.Account.RevokeCapability(ctx, accountID, capability); err != nil {
		s.logger.Error("回收能力失败", zap.Uint("account_id", accountID), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 内部辅助 ──────────────────────

// buildAccount 校验账户负载并构造账户，初始口令为国民身份号
func (s *accountService) buildAccount(ctx context.Context, payload *dto.AccountPayload) (*model.Account, error) {
	if err := validation.NationalID(payload.NationalID); err != nil {
		return nil, err
	}
	if payload.Phone != nil {
		if err := validation.Phone(*payload.Phone); err != nil {
			return nil, err
		}
	}
	if _, err := s.repo.Account.GetByUsername(ctx, payload.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.NationalID), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Username:     payload.Username,
		PasswordHash: string(hash),
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Email:        payload.Email,
		NationalID:   payload.NationalID,
		Gender:       model.Gender(payload.Gender),
		Phone:        payload.Phone,
		IsActive:     true,
	}
	if payload.Birthdate != nil {
		birthdate, err := time.Parse("2006-01-02", *payload.Birthdate)
		if err != nil {
			return nil, ErrBirthdateInvalid
		}
		account.Birthdate = &birthdate
	}
	return account, nil
}

// patchAccount 应用账户级增量更新
func (s *accountService) patchAccount(ctx context.Context, account *model.Account, patch *dto.AccountPatch) error {
	if account == nil {
		return ErrAccountNotFound
	}
	if patch.Username != nil && *patch.Username != account.Username {
		if _, err := s.repo.Account.GetByUsername(ctx, *patch.Username); err == nil {
			return ErrUsernameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		account.Username = *patch.Username
	}
	if patch.NationalID != nil {
		if err := validation.NationalID(*patch.NationalID); err != nil {
			return err
		}
		account.NationalID = *patch.NationalID
	}
	if patch.Phone != nil {
		if err := validation.Phone(*patch.Phone); err != nil {
			return err
		}
		account.Phone = patch.Phone
	}
	if patch.FirstName != nil {
		account.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		account.LastName = *patch.LastName
	}
	if patch.Email != nil {
		account.Email = *patch.Email
	}
	if patch.Gender != nil {
		account.Gender = model.Gender(*patch.Gender)
	}
	if patch.Birthdate != nil {
		birthdate, err := time.Parse("2006-01-02", *patch.Birthdate)
		if err != nil {
			return ErrBirthdateInvalid
		}
		account.Birthdate = &birthdate
	}
	if patch.IsActive != nil {
		account.IsActive = *patch.IsActive
	}
	return nil
}

// deleteRoleWithAccount 角色记录与账户在同一事务内联动删除
func (s *accountService) deleteRoleWithAccount(ctx context.Context, accountID uint, deleteRole func(*repository.Repository) error) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	txRepo := s.repo.WithTx(tx)
	if err := deleteRole(txRepo); err != nil {
		tx.Rollback()
		s.logger.Error("删除角色失败", zap.Uint("account_id", accountID), zap.Error(err))
		return err
	}
	if err := txRepo.Account.Delete(ctx, accountID); err != nil {
		tx.Rollback()
		s.logger.Error("删除账户失败", zap.Uint("account_id", accountID), zap.Error(err))
		return err
	}
	return tx.Commit().Error
}

// ────────────────────── 响应映射 ──────────────────────

func toAccountResponse(m *model.Account) dto.AccountResponse {
	if m == nil {
		return dto.AccountResponse{}
	}
	resp := dto.AccountResponse{
		ID:         m.ID,
		Username:   m.Username,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Email:      m.Email,
		NationalID: m.NationalID,
		Gender:     string(m.Gender),
		Phone:      m.Phone,
		ImagePath:  m.ImagePath,
		IsActive:   m.IsActive,
		IsStaff:    m.IsStaff,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
	if m.Birthdate != nil {
		birthdate := m.Birthdate.Format("2006-01-02")
		resp.Birthdate = &birthdate
	}
	return resp
}

func toStudentResponse(m *model.Student) *dto.StudentResponse {
	if m == nil {
		return nil
	}
	resp := &dto.StudentResponse{
		ID:               m.ID,
		Account:          toAccountResponse(m.Account),
		EntrySemesterID:  m.EntrySemesterID,
		AcademicField:    toAcademicFieldResponse(m.AcademicField),
		ProfessorID:      m.ProfessorID,
		MilitaryService:  string(m.MilitaryService),
		Status:           string(m.Status),
		AllowedHalfYears: m.AllowedHalfYears,
	}
	if m.GPA.Valid {
		gpa := m.GPA.Decimal.StringFixed(2)
		resp.GPA = &gpa
	}
	return resp
}

func toProfessorResponse(m *model.Professor) *dto.ProfessorResponse {
	if m == nil {
		return nil
	}
	return &dto.ProfessorResponse{
		ID:           m.ID,
		Account:      toAccountResponse(m.Account),
		FacultyGroup: toFacultyGroupResponse(m.FacultyGroup),
		Rank:         string(m.Rank),
		Expertise:    m.Expertise,
	}
}

func toAssistantResponse(m *model.Assistant) *dto.AssistantResponse {
	if m == nil {
		return nil
	}
	return &dto.AssistantResponse{
		ID:      m.ID,
		Account: toAccountResponse(m.Account),
		Faculty: toFacultyResponse(m.Faculty),
	}
}
