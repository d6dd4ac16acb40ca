package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahdi-Salimi/university-management-system/internal/dto"
	"github.com/Mahdi-Salimi/university-management-system/internal/service"
	"github.com/Mahdi-Salimi/university-management-system/pkg/response"
)

// SemesterHandler 学期模块 HTTP 处理器
type SemesterHandler struct {
	svc service.SemesterService
}

// NewSemesterHandler 创建 SemesterHandler
func NewSemesterHandler(svc service.SemesterService) *SemesterHandler {
	return &SemesterHandler{svc: svc}
}

// CreateSemester 创建学期
// POST /api/v1/semesters
func (h *SemesterHandler) CreateSemester(c *gin.Context) {
	var req dto.CreateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	semester, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.Created(c, semester)
}

// GetSemester 查询学期详情
// GET /api/v1/semesters/:id
func (h *SemesterHandler) GetSemester(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	semester, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.OK(c, semester)
}

// GetCurrentSemester 查询当前学期
// GET /api/v1/semesters/current
func (h *SemesterHandler) GetCurrentSemester(c *gin.Context) {
	semester, err := h.svc.GetCurrent(c.Request.Context())
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.OK(c, semester)
}

// ListSemesters 分页查询学期列表
// GET /api/v1/semesters
func (h *SemesterHandler) ListSemesters(c *gin.Context) {
	page, ok := bindPagination(c)
	if !ok {
		return
	}

	semesters, total, err := h.svc.List(c.Request.Context(), page)
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.OKPage(c, semesters, total, page.GetPage(), page.GetPageSize())
}

// UpdateSemester 更新学期
// PUT /api/v1/semesters/:id
func (h *SemesterHandler) UpdateSemester(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	semester, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.OK(c, semester)
}

// DeleteSemester 删除学期
// DELETE /api/v1/semesters/:id
func (h *SemesterHandler) DeleteSemester(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// handleSemesterError 学期模块错误码映射
func (h *SemesterHandler) handleSemesterError(c *gin.Context, err error) {
	var windowErr *service.SemesterWindowError
	if errors.As(err, &windowErr) {
		response.ErrorWithDetails(c, http.StatusBadRequest, 14002, windowErr.Error(), windowErr.Violations)
		return
	}

	switch {
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, 14001, err.Error())
	case errors.Is(err, service.ErrSemesterTime):
		response.BadRequest(c, 14003, err.Error())
	case errors.Is(err, service.ErrNoCurrentSemester):
		response.NotFound(c, 14004, err.Error())
	case errors.Is(err, service.ErrAmbiguousSemester):
		response.Error(c, http.StatusConflict, 14005, err.Error())
	default:
		response.InternalError(c)
	}
}
