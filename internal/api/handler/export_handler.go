package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahdi-Salimi/university-management-system/internal/service"
	"github.com/Mahdi-Salimi/university-management-system/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
// 先经 AccountService 按调用者作用域裁决学生可见性，再生成文件
type ExportHandler struct {
	svc      service.ExportService
	accounts service.AccountService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(svc service.ExportService, accounts service.AccountService) *ExportHandler {
	return &ExportHandler{svc: svc, accounts: accounts}
}

// ExportTranscript 导出学生成绩单 Excel
// GET /api/v1/export/transcript/:studentID
func (h *ExportHandler) ExportTranscript(c *gin.Context) {
	studentID, ok := h.resolveStudent(c)
	if !ok {
		return
	}

	buf, filename, err := h.svc.TranscriptXLSX(c.Request.Context(), studentID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

// ExportSchedule 导出学生某学期周课表 iCalendar
// GET /api/v1/export/schedule/:studentID?semester_id=
func (h *ExportHandler) ExportSchedule(c *gin.Context) {
	studentID, ok := h.resolveStudent(c)
	if !ok {
		return
	}

	semesterID, ok := parseSemesterQuery(c)
	if !ok {
		return
	}

	buf, filename, err := h.svc.ScheduleICS(c.Request.Context(), studentID, semesterID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentTypeICS, buf.Bytes())
}

// resolveStudent 解析学生路径参数（支持 "me"）并按调用者作用域裁决
func (h *ExportHandler) resolveStudent(c *gin.Context) (uint, bool) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return 0, false
	}

	id, ok := parseIDOrMe(c, "studentID")
	if !ok {
		return 0, false
	}

	student, err := h.accounts.GetStudent(c.Request.Context(), caller, id)
	if err != nil {
		h.handleExportError(c, err)
		return 0, false
	}

	return student.ID, true
}

// handleExportError 导出模块错误码映射
func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 12001, err.Error())
	case errors.Is(err, service.ErrExportNoAttempts):
		response.NotFound(c, 17001, err.Error())
	case errors.Is(err, service.ErrExportNoSessions):
		response.NotFound(c, 17002, err.Error())
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
