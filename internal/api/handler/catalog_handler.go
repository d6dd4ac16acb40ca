package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Mahdi-Salimi/university-management-system/internal/dto"
	"github.com/Mahdi-Salimi/university-management-system/internal/service"
	"github.com/Mahdi-Salimi/university-management-system/pkg/response"
)

// CatalogHandler 课程目录模块 HTTP 处理器
// 覆盖课程、课程分类、开课实例与上课时段
type CatalogHandler struct {
	svc service.CatalogService
}

// NewCatalogHandler 创建 CatalogHandler
func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ── 课程 ──

// CreateCourse 创建课程
// POST /api/v1/courses
func (h *CatalogHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	course, err := h.svc.CreateCourse(c.Request.Context(), &req)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.Created(c, course)
}

// GetCourse 查询课程详情
// GET /api/v1/courses/:id
func (h *CatalogHandler) GetCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	course, err := h.svc.GetCourse(c.Request.Context(), id)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, course)
}

// ListCourses 分页查询课程列表
// GET /api/v1/courses
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	page, ok := bindPagination(c)
	if !ok {
		return
	}

	courses, total, err := h.svc.ListCourses(c.Request.Context(), page)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OKPage(c, courses, total, page.GetPage(), page.GetPageSize())
}

// UpdateCourse 更新课程
// PUT /api/v1/courses/:id
func (h *CatalogHandler) UpdateCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	course, err := h.svc.UpdateCourse(c.Request.Context(), id, &req)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, course)
}

// DeleteCourse 删除课程
// DELETE /api/v1/courses/:id
func (h *CatalogHandler) DeleteCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteCourse(c.Request.Context(), id); err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// GetPrerequisites 查询课程先修列表
// GET /api/v1/courses/:id/prerequisites
func (h *CatalogHandler) GetPrerequisites(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	course, err := h.svc.GetCourse(c.Request.Context(), id)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, gin.H{"ids": course.PrerequisiteIDs})
}

// ReplacePrerequisites 整体替换课程先修列表
// PUT /api/v1/courses/:id/prerequisites
func (h *CatalogHandler) ReplacePrerequisites(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ReplaceCourseDependenciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	course, err := h.svc.UpdateCourse(c.Request.Context(), id, &dto.UpdateCourseRequest{PrerequisiteIDs: &req.IDs})
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, course)
}

// GetCorequisites 查询课程共修列表
// GET /api/v1/courses/:id/corequisites
func (h *CatalogHandler) GetCorequisites(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	course, err := h.svc.GetCourse(c.Request.Context(), id)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, gin.H{"ids": course.CorequisiteIDs})
}

// ReplaceCorequisites 整体替换课程共修列表
// PUT /api/v1/courses/:id/corequisites
func (h *CatalogHandler) ReplaceCorequisites(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ReplaceCourseDependenciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	course, err := h.svc.UpdateCourse(c.Request.Context(), id, &dto.UpdateCourseRequest{CorequisiteIDs: &req.IDs})
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, course)
}

// ── 课程分类 ──

// CreateCourseType 创建课程分类
// POST /api/v1/course-types
func (h *CatalogHandler) CreateCourseType(c *gin.Context) {
	var req dto.CreateCourseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	courseType, err := h.svc.CreateCourseType(c.Request.Context(), &req)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.Created(c, courseType)
}

// GetCourseType 查询课程分类详情
// GET /api/v1/course-types/:id
func (h *CatalogHandler) GetCourseType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	courseType, err := h.svc.GetCourseType(c.Request.Context(), id)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, courseType)
}

// ListCourseTypes 分页查询课程分类列表
// GET /api/v1/course-types
func (h *CatalogHandler) ListCourseTypes(c *gin.Context) {
	page, ok := bindPagination(c)
	if !ok {
		return
	}

	courseTypes, total, err := h.svc.ListCourseTypes(c.Request.Context(), page)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OKPage(c, courseTypes, total, page.GetPage(), page.GetPageSize())
}

// UpdateCourseType 更新课程分类
// PUT /api/v1/course-types/:id
func (h *CatalogHandler) UpdateCourseType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	courseType, err := h.svc.UpdateCourseType(c.Request.Context(), id, &req)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, courseType)
}

// DeleteCourseType 删除课程分类
// DELETE /api/v1/course-types/:id
func (h *CatalogHandler) DeleteCourseType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteCourseType(c.Request.Context(), id); err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// ── 开课实例 ──

// CreateSemesterCourse 创建开课实例
// POST /api/v1/semester-courses
func (h *CatalogHandler) CreateSemesterCourse(c *gin.Context) {
	var req dto.CreateSemesterCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	sc, err := h.svc.CreateSemesterCourse(c.Request.Context(), &req)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.Created(c, sc)
}

// GetSemesterCourse 查询开课实例详情
// GET /api/v1/semester-courses/:id
func (h *CatalogHandler) GetSemesterCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sc, err := h.svc.GetSemesterCourse(c.Request.Context(), id)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, sc)
}

// ListSemesterCourses 分页查询开课实例列表
// GET /api/v1/semester-courses
func (h *CatalogHandler) ListSemesterCourses(c *gin.Context) {
	page, ok := bindPagination(c)
	if !ok {
		return
	}

	scs, total, err := h.svc.ListSemesterCourses(c.Request.Context(), page)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OKPage(c, scs, total, page.GetPage(), page.GetPageSize())
}

// UpdateSemesterCourse 更新开课实例
// PUT /api/v1/semester-courses/:id
func (h *CatalogHandler) UpdateSemesterCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSemesterCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	sc, err := h.svc.UpdateSemesterCourse(c.Request.Context(), id, &req)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, sc)
}

// DeleteSemesterCourse 删除开课实例
// DELETE /api/v1/semester-courses/:id
func (h *CatalogHandler) DeleteSemesterCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteSemesterCourse(c.Request.Context(), id); err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// ── 上课时段 ──

// CreateClassSession 创建上课时段
// POST /api/v1/class-sessions
func (h *CatalogHandler) CreateClassSession(c *gin.Context) {
	var req dto.CreateClassSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	session, err := h.svc.CreateClassSession(c.Request.Context(), &req)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.Created(c, session)
}

// GetClassSession 查询上课时段详情
// GET /api/v1/class-sessions/:id
func (h *CatalogHandler) GetClassSession(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	session, err := h.svc.GetClassSession(c.Request.Context(), id)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, session)
}

// ListClassSessions 分页查询上课时段列表
// GET /api/v1/class-sessions
func (h *CatalogHandler) ListClassSessions(c *gin.Context) {
	page, ok := bindPagination(c)
	if !ok {
		return
	}

	sessions, total, err := h.svc.ListClassSessions(c.Request.Context(), page)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OKPage(c, sessions, total, page.GetPage(), page.GetPageSize())
}

// UpdateClassSession 更新上课时段
// PUT /api/v1/class-sessions/:id
func (h *CatalogHandler) UpdateClassSession(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateClassSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	session, err := h.svc.UpdateClassSession(c.Request.Context(), id, &req)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, session)
}

// DeleteClassSession 删除上课时段
// DELETE /api/v1/class-sessions/:id
func (h *CatalogHandler) DeleteClassSession(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteClassSession(c.Request.Context(), id); err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// handleCatalogError 课程目录模块错误码映射
func (h *CatalogHandler) handleCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 15001, err.Error())
	case errors.Is(err, service.ErrCourseCodeTaken):
		response.BadRequest(c, 15002, err.Error())
	case errors.Is(err, service.ErrDependencyCycle):
		response.BadRequest(c, 15003, err.Error())
	case errors.Is(err, service.ErrCourseTypeNotFound):
		response.NotFound(c, 15004, err.Error())
	case errors.Is(err, service.ErrSemesterCourseNotFound):
		response.NotFound(c, 15005, err.Error())
	case errors.Is(err, service.ErrClassSessionNotFound):
		response.NotFound(c, 15006, err.Error())
	case errors.Is(err, service.ErrExamTimeInvalid):
		response.BadRequest(c, 15007, err.Error())
	case errors.Is(err, service.ErrExamTimePast):
		response.BadRequest(c, 15008, err.Error())
	case errors.Is(err, service.ErrExamBeforeModification):
		response.BadRequest(c, 15009, err.Error())
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, 14001, err.Error())
	case errors.Is(err, service.ErrProfessorNotFound):
		response.NotFound(c, 12002, err.Error())
	case errors.Is(err, service.ErrAcademicFieldNotFound):
		response.NotFound(c, 13004, err.Error())
	default:
		response.InternalError(c)
	}
}
