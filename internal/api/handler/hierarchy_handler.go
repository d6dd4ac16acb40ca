package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Mahdi-Salimi/university-management-system/internal/dto"
	"github.com/Mahdi-Salimi/university-management-system/internal/service"
	"github.com/Mahdi-Salimi/university-management-system/pkg/response"
)

// HierarchyHandler 组织层级模块 HTTP 处理器
// 覆盖学院、学院分组、学科方向、培养方案四级结构
type HierarchyHandler struct {
	svc service.HierarchyService
}

// NewHierarchyHandler 创建 HierarchyHandler
func NewHierarchyHandler(svc service.HierarchyService) *HierarchyHandler {
	return &HierarchyHandler{svc: svc}
}

// ── 学院 ──

// CreateFaculty 创建学院
// POST /api/v1/faculties
func (h *HierarchyHandler) CreateFaculty(c *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	faculty, err := h.svc.CreateFaculty(c.Request.Context(), &req)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.Created(c, faculty)
}

// GetFaculty 查询学院详情
// GET /api/v1/faculties/:id
func (h *HierarchyHandler) GetFaculty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	faculty, err := h.svc.GetFaculty(c.Request.Context(), id)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, faculty)
}

// ListFaculties 分页查询学院列表
// GET /api/v1/faculties
func (h *HierarchyHandler) ListFaculties(c *gin.Context) {
	page, ok := bindPagination(c)
	if !ok {
		return
	}

	faculties, total, err := h.svc.ListFaculties(c.Request.Context(), page)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OKPage(c, faculties, total, page.GetPage(), page.GetPageSize())
}

// UpdateFaculty 更新学院
// PUT /api/v1/faculties/:id
func (h *HierarchyHandler) UpdateFaculty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	faculty, err := h.svc.UpdateFaculty(c.Request.Context(), id, &req)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, faculty)
}

// DeleteFaculty 删除学院
// DELETE /api/v1/faculties/:id
func (h *HierarchyHandler) DeleteFaculty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteFaculty(c.Request.Context(), id); err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// ── 学院分组 ──

// CreateFacultyGroup 创建学院分组
// POST /api/v1/faculty-groups
func (h *HierarchyHandler) CreateFacultyGroup(c *gin.Context) {
	var req dto.CreateFacultyGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	group, err := h.svc.CreateFacultyGroup(c.Request.Context(), &req)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.Created(c, group)
}

// GetFacultyGroup 查询学院分组详情
// GET /api/v1/faculty-groups/:id
func (h *HierarchyHandler) GetFacultyGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	group, err := h.svc.GetFacultyGroup(c.Request.Context(), id)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, group)
}

// ListFacultyGroups 分页查询学院分组列表
// GET /api/v1/faculty-groups
func (h *HierarchyHandler) ListFacultyGroups(c *gin.Context) {
	page, ok := bindPagination(c)
	if !ok {
		return
	}

	groups, total, err := h.svc.ListFacultyGroups(c.Request.Context(), page)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OKPage(c, groups, total, page.GetPage(), page.GetPageSize())
}

// UpdateFacultyGroup 更新学院分组
// PUT /api/v1/faculty-groups/:id
func (h *HierarchyHandler) UpdateFacultyGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateFacultyGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	group, err := h.svc.UpdateFacultyGroup(c.Request.Context(), id, &req)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, group)
}

// DeleteFacultyGroup 删除学院分组
// DELETE /api/v1/faculty-groups/:id
func (h *HierarchyHandler) DeleteFacultyGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteFacultyGroup(c.Request.Context(), id); err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// ── 学科方向 ──

// CreateFieldOfStudy 创建学科方向
// POST /api/v1/fields-of-study
func (h *HierarchyHandler) CreateFieldOfStudy(c *gin.Context) {
	var req dto.CreateFieldOfStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	field, err := h.svc.CreateFieldOfStudy(c.Request.Context(), &req)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.Created(c, field)
}

// GetFieldOfStudy 查询学科方向详情
// GET /api/v1/fields-of-study/:id
func (h *HierarchyHandler) GetFieldOfStudy(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	field, err := h.svc.GetFieldOfStudy(c.Request.Context(), id)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, field)
}

// ListFieldsOfStudy 分页查询学科方向列表
// GET /api/v1/fields-of-study
func (h *HierarchyHandler) ListFieldsOfStudy(c *gin.Context) {
	page, ok := bindPagination(c)
	if !ok {
		return
	}

	fields, total, err := h.svc.ListFieldsOfStudy(c.Request.Context(), page)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OKPage(c, fields, total, page.GetPage(), page.GetPageSize())
}

// UpdateFieldOfStudy 更新学科方向
// PUT /api/v1/fields-of-study/:id
func (h *HierarchyHandler) UpdateFieldOfStudy(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateFieldOfStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	field, err := h.svc.UpdateFieldOfStudy(c.Request.Context(), id, &req)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, field)
}

// DeleteFieldOfStudy 删除学科方向
// DELETE /api/v1/fields-of-study/:id
func (h *HierarchyHandler) DeleteFieldOfStudy(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteFieldOfStudy(c.Request.Context(), id); err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// ── 培养方案 ──

// CreateAcademicField 创建培养方案
// POST /api/v1/academic-fields
func (h *HierarchyHandler) CreateAcademicField(c *gin.Context) {
	var req dto.CreateAcademicFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	field, err := h.svc.CreateAcademicField(c.Request.Context(), &req)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.Created(c, field)
}

// GetAcademicField 查询培养方案详情
// GET /api/v1/academic-fields/:id
func (h *HierarchyHandler) GetAcademicField(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	field, err := h.svc.GetAcademicField(c.Request.Context(), id)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, field)
}

// ListAcademicFields 分页查询培养方案列表
// GET /api/v1/academic-fields
func (h *HierarchyHandler) ListAcademicFields(c *gin.Context) {
	page, ok := bindPagination(c)
	if !ok {
		return
	}

	fields, total, err := h.svc.ListAcademicFields(c.Request.Context(), page)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OKPage(c, fields, total, page.GetPage(), page.GetPageSize())
}

// UpdateAcademicField 更新培养方案
// PUT /api/v1/academic-fields/:id
func (h *HierarchyHandler) UpdateAcademicField(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAcademicFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	field, err := h.svc.UpdateAcademicField(c.Request.Context(), id, &req)
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, field)
}

// DeleteAcademicField 删除培养方案
// DELETE /api/v1/academic-fields/:id
func (h *HierarchyHandler) DeleteAcademicField(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteAcademicField(c.Request.Context(), id); err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// handleHierarchyError 组织层级模块错误码映射
func (h *HierarchyHandler) handleHierarchyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFacultyNotFound):
		response.NotFound(c, 13001, err.Error())
	case errors.Is(err, service.ErrFacultyGroupNotFound):
		response.NotFound(c, 13002, err.Error())
	case errors.Is(err, service.ErrFieldOfStudyNotFound):
		response.NotFound(c, 13003, err.Error())
	case errors.Is(err, service.ErrAcademicFieldNotFound):
		response.NotFound(c, 13004, err.Error())
	case errors.Is(err, service.ErrFacultyNameTaken):
		response.BadRequest(c, 13005, err.Error())
	default:
		response.InternalError(c)
	}
}
