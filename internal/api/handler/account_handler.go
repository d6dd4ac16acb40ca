package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Mahdi-Salimi/university-management-system/internal/dto"
	"github.com/Mahdi-Salimi/university-management-system/internal/service"
	"github.com/Mahdi-Salimi/university-management-system/internal/validation"
	"github.com/Mahdi-Salimi/university-management-system/pkg/response"
)

// AccountHandler 账户与角色模块 HTTP 处理器
// 角色资源路径参数支持 "me"，指向调用者本人的角色记录；
// 越权访问由 Service 层掩蔽为不存在
type AccountHandler struct {
	svc service.AccountService
}

// NewAccountHandler 创建 AccountHandler
func NewAccountHandler(svc service.AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// ── 学生 ──

// CreateStudent 创建学生（账户与角色同事务）
// POST /api/v1/students
func (h *AccountHandler) CreateStudent(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	student, err := h.svc.CreateStudent(c.Request.Context(), caller, &req)
	if err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.Created(c, student)
}

// GetStudent 查询学生详情
// GET /api/v1/students/:id（支持 me）
func (h *AccountHandler) GetStudent(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	id, ok := parseIDOrMe(c, "id")
	if !ok {
		return
	}

	student, err := h.svc.GetStudent(c.Request.Context(), caller, id)
	if err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.OK(c, student)
}

// ListStudents 按调用者作用域分页查询学生列表
// GET /api/v1/students
func (h *AccountHandler) ListStudents(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	page, ok := bindPagination(c)
	if !ok {
		return
	}

	students, total, err := h.svc.ListStudents(c.Request.Context(), caller, page)
	if err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.OKPage(c, students, total, page.GetPage(), page.GetPageSize())
}

// UpdateStudent 更新学生
// PUT /api/v1/students/:id（支持 me）
func (h *AccountHandler) UpdateStudent(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	id, ok := parseIDOrMe(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	student, err := h.svc.UpdateStudent(c.Request.Context(), caller, id, &req)
	if err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.OK(c, student)
}

// DeleteStudent 删除学生（连同账户）
// DELETE /api/v1/students/:id
func (h *AccountHandler) DeleteStudent(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteStudent(c.Request.Context(), caller, id); err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// ── 教授 ──

// CreateProfessor 创建教授（账户与角色同事务）
// POST /api/v1/professors
func (h *AccountHandler) CreateProfessor(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	var req dto.CreateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	professor, err := h.svc.CreateProfessor(c.Request.Context(), caller, &req)
	if err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.Created(c, professor)
}

// GetProfessor 查询教授详情
// GET /api/v1/professors/:id（支持 me）
func (h *AccountHandler) GetProfessor(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	id, ok := parseIDOrMe(c, "id")
	if !ok {
		return
	}

	professor, err := h.svc.GetProfessor(c.Request.Context(), caller, id)
	if err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.OK(c, professor)
}

// ListProfessors 按调用者作用域分页查询教授列表
// GET /api/v1/professors
func (h *AccountHandler) ListProfessors(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	page, ok := bindPagination(c)
	if !ok {
		return
	}

	professors, total, err := h.svc.ListProfessors(c.Request.Context(), caller, page)
	if err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.OKPage(c, professors, total, page.GetPage(), page.GetPageSize())
}

// UpdateProfessor 更新教授
// PUT /api/v1/professors/:id（支持 me）
func (h *AccountHandler) UpdateProfessor(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	id, ok := parseIDOrMe(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	professor, err := h.svc.UpdateProfessor(c.Request.Context(), caller, id, &req)
	if err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.OK(c, professor)
}

// DeleteProfessor 删除教授（连同账户）
// DELETE /api/v1/professors/:id
func (h *AccountHandler) DeleteProfessor(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteProfessor(c.Request.Context(), caller, id); err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// ── 教务助理 ──

// CreateAssistant 创建教务助理（账户与角色同事务）
// POST /api/v1/assistants
func (h *AccountHandler) CreateAssistant(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	var req dto.CreateAssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	assistant, err := h.svc.CreateAssistant(c.Request.Context(), caller, &req)
	if err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.Created(c, assistant)
}

// GetAssistant 查询教务助理详情
// GET /api/v1/assistants/:id（支持 me）
func (h *AccountHandler) GetAssistant(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	id, ok := parseIDOrMe(c, "id")
	if !ok {
		return
	}

	assistant, err := h.svc.GetAssistant(c.Request.Context(), caller, id)
	if err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.OK(c, assistant)
}

// ListAssistants 按调用者作用域分页查询教务助理列表
// GET /api/v1/assistants
func (h *AccountHandler) ListAssistants(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	page, ok := bindPagination(c)
	if !ok {
		return
	}

	assistants, total, err := h.svc.ListAssistants(c.Request.Context(), caller, page)
	if err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.OKPage(c, assistants, total, page.GetPage(), page.GetPageSize())
}

// UpdateAssistant 更新教务助理
// PUT /api/v1/assistants/:id（支持 me）
func (h *AccountHandler) UpdateAssistant(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	id, ok := parseIDOrMe(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	assistant, err := h.svc.UpdateAssistant(c.Request.Context(), caller, id, &req)
	if err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.OK(c, assistant)
}

// DeleteAssistant 删除教务助理（连同账户）
// DELETE /api/v1/assistants/:id
func (h *AccountHandler) DeleteAssistant(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteAssistant(c.Request.Context(), caller, id); err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// ── 能力授权 ──

// ListCapabilities 查询账户能力集
// GET /api/v1/accounts/:id/capabilities
func (h *AccountHandler) ListCapabilities(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	capabilities, err := h.svc.ListCapabilities(c.Request.Context(), id)
	if err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.OK(c, gin.H{"capabilities": capabilities})
}

// GrantCapabilities 批量授予能力
// POST /api/v1/accounts/:id/capabilities
func (h *AccountHandler) GrantCapabilities(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.GrantCapabilitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.svc.GrantCapabilities(c.Request.Context(), id, req.Capabilities); err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "授权成功"})
}

// RevokeCapability 撤销单条能力
// DELETE /api/v1/accounts/:id/capabilities/:capability
func (h *AccountHandler) RevokeCapability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	capability := c.Param("capability")
	if capability == "" {
		response.BadRequest(c, 10001, "路径参数 capability 无效")
		return
	}

	if err := h.svc.RevokeCapability(c.Request.Context(), id, capability); err != nil {
		h.handleAccountError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "撤销成功"})
}

// handleAccountError 账户与角色模块错误码映射
func (h *AccountHandler) handleAccountError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 12001, err.Error())
	case errors.Is(err, service.ErrProfessorNotFound):
		response.NotFound(c, 12002, err.Error())
	case errors.Is(err, service.ErrAssistantNotFound):
		response.NotFound(c, 12003, err.Error())
	case errors.Is(err, service.ErrAccountNotFound):
		response.NotFound(c, 11003, err.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		response.BadRequest(c, 12004, err.Error())
	case errors.Is(err, service.ErrNationalIDTaken):
		response.BadRequest(c, 12005, err.Error())
	case errors.Is(err, service.ErrUnknownCapability):
		response.BadRequest(c, 12006, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		response.Forbidden(c, 10003, err.Error())
	case errors.Is(err, service.ErrBirthdateInvalid),
		errors.Is(err, validation.ErrNationalIDFormat),
		errors.Is(err, validation.ErrNationalIDChecksum),
		errors.Is(err, validation.ErrPhoneFormat):
		response.BadRequest(c, 12007, err.Error())
	case errors.Is(err, service.ErrFacultyNotFound):
		response.NotFound(c, 13001, err.Error())
	case errors.Is(err, service.ErrFacultyGroupNotFound):
		response.NotFound(c, 13002, err.Error())
	case errors.Is(err, service.ErrAcademicFieldNotFound):
		response.NotFound(c, 13004, err.Error())
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, 14001, err.Error())
	default:
		response.InternalError(c)
	}
}
