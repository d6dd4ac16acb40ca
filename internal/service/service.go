package service

import (
	"go.uber.org/zap"

	"github.com/Mahdi-Salimi/university-management-system/config"
	"github.com/Mahdi-Salimi/university-management-system/internal/repository"
	"github.com/Mahdi-Salimi/university-management-system/pkg/jwt"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth       AuthService
	Hierarchy  HierarchyService
	Catalog    CatalogService
	Semester   SemesterService
	Enrollment EnrollmentService
	Account    AccountService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	tokens TokenStore,
	otps OTPStore,
	mailer Mailer,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, tokens, otps, mailer, logger),
		Hierarchy:  NewHierarchyService(repo, logger),
		Catalog:    NewCatalogService(repo, logger),
		Semester:   NewSemesterService(repo, logger),
		Enrollment: NewEnrollmentService(repo, logger),
		Account:    NewAccountService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
