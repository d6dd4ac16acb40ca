package handler

import (
	"github.com/Mahdi-Salimi/university-management-system/internal/service"
)

// Handler 所有 HTTP Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	Hierarchy  *HierarchyHandler
	Catalog    *CatalogHandler
	Semester   *SemesterHandler
	Enrollment *EnrollmentHandler
	Account    *AccountHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Hierarchy:  NewHierarchyHandler(svc.Hierarchy),
		Catalog:    NewCatalogHandler(svc.Catalog),
		Semester:   NewSemesterHandler(svc.Semester),
		Enrollment: NewEnrollmentHandler(svc.Enrollment, svc.Account),
		Account:    NewAccountHandler(svc.Account),
		Export:     NewExportHandler(svc.Export, svc.Account),
	}
}
