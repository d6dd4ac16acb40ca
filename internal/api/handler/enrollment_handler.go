package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mahdi-Salimi/university-management-system/internal/dto"
	"github.com/Mahdi-Salimi/university-management-system/internal/service"
	"github.com/Mahdi-Salimi/university-management-system/internal/validation"
	"github.com/Mahdi-Salimi/university-management-system/pkg/response"
)

// EnrollmentHandler 选课与学业模块 HTTP 处理器
// 学生维度的扩展查询（GPA、课表、剩余学期）先经 AccountService
// 按调用者作用域裁决，再以裁决后的数字主键进入业务层
type EnrollmentHandler struct {
	svc      service.EnrollmentService
	accounts service.AccountService
}

// NewEnrollmentHandler 创建 EnrollmentHandler
func NewEnrollmentHandler(svc service.EnrollmentService, accounts service.AccountService) *EnrollmentHandler {
	return &EnrollmentHandler{svc: svc, accounts: accounts}
}

// ── 选课记录 ──

// CreateStudentCourse 创建选课记录
// POST /api/v1/student-courses
func (h *EnrollmentHandler) CreateStudentCourse(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	var req dto.CreateStudentCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	attempt, err := h.svc.CreateAttempt(c.Request.Context(), caller, &req)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.Created(c, attempt)
}

// GetStudentCourse 查询选课记录详情
// GET /api/v1/student-courses/:id
func (h *EnrollmentHandler) GetStudentCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	attempt, err := h.svc.GetAttempt(c.Request.Context(), id)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, attempt)
}

// ListStudentCourses 分页查询选课记录列表
// GET /api/v1/student-courses
func (h *EnrollmentHandler) ListStudentCourses(c *gin.Context) {
	page, ok := bindPagination(c)
	if !ok {
		return
	}

	attempts, total, err := h.svc.ListAttempts(c.Request.Context(), page)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OKPage(c, attempts, total, page.GetPage(), page.GetPageSize())
}

// UpdateStudentCourse 更新选课记录（含成绩录入）
// PUT /api/v1/student-courses/:id
func (h *EnrollmentHandler) UpdateStudentCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	attempt, err := h.svc.UpdateAttempt(c.Request.Context(), id, &req)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, attempt)
}

// DeleteStudentCourse 删除选课记录
// DELETE /api/v1/student-courses/:id
func (h *EnrollmentHandler) DeleteStudentCourse(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteAttempt(c.Request.Context(), caller, id); err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// ── 学生学期台账 ──

// CreateStudentSemester 创建学生学期台账
// POST /api/v1/student-semesters
func (h *EnrollmentHandler) CreateStudentSemester(c *gin.Context) {
	var req dto.CreateStudentSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	record, err := h.svc.CreateStudentSemester(c.Request.Context(), &req)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.Created(c, record)
}

// GetStudentSemester 查询学生学期台账详情
// GET /api/v1/student-semesters/:id
func (h *EnrollmentHandler) GetStudentSemester(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.svc.GetStudentSemester(c.Request.Context(), id)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, record)
}

// ListStudentSemesters 分页查询学生学期台账列表
// GET /api/v1/student-semesters
func (h *EnrollmentHandler) ListStudentSemesters(c *gin.Context) {
	page, ok := bindPagination(c)
	if !ok {
		return
	}

	records, total, err := h.svc.ListStudentSemesters(c.Request.Context(), page)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OKPage(c, records, total, page.GetPage(), page.GetPageSize())
}

// UpdateStudentSemester 更新学生学期台账
// PUT /api/v1/student-semesters/:id
func (h *EnrollmentHandler) UpdateStudentSemester(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	record, err := h.svc.UpdateStudentSemester(c.Request.Context(), id, &req)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, record)
}

// DeleteStudentSemester 删除学生学期台账
// DELETE /api/v1/student-semesters/:id
func (h *EnrollmentHandler) DeleteStudentSemester(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteStudentSemester(c.Request.Context(), id); err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// ── 学生扩展查询 ──

// GetStudentGPA 查询学生绩点；带 semester_id 查学期绩点，否则查总绩点
// GET /api/v1/students/:id/gpa
func (h *EnrollmentHandler) GetStudentGPA(c *gin.Context) {
	studentID, ok := h.resolveStudent(c)
	if !ok {
		return
	}

	if raw := c.Query("semester_id"); raw != "" {
		semesterID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || semesterID == 0 {
			response.BadRequest(c, 10001, "查询参数 semester_id 无效")
			return
		}

		gpa, err := h.svc.SemesterGPA(c.Request.Context(), studentID, uint(semesterID))
		if err != nil {
			h.handleEnrollmentError(c, err)
			return
		}
		response.OK(c, gpa)
		return
	}

	gpa, err := h.svc.TotalGPA(c.Request.Context(), studentID)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, gpa)
}

// GetStudentRemainingHalfYears 查询学生剩余可用学期数
// GET /api/v1/students/:id/remaining-half-years
func (h *EnrollmentHandler) GetStudentRemainingHalfYears(c *gin.Context) {
	studentID, ok := h.resolveStudent(c)
	if !ok {
		return
	}

	result, err := h.svc.HalfYears(c.Request.Context(), studentID)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, result)
}

// GetStudentWeeklySchedule 查询学生某学期周课表
// GET /api/v1/students/:id/weekly-schedule?semester_id=
func (h *EnrollmentHandler) GetStudentWeeklySchedule(c *gin.Context) {
	studentID, ok := h.resolveStudent(c)
	if !ok {
		return
	}

	semesterID, ok := parseSemesterQuery(c)
	if !ok {
		return
	}

	entries, err := h.svc.StudentWeeklySchedule(c.Request.Context(), studentID, semesterID)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, entries)
}

// GetStudentExamSchedule 查询学生某学期考试安排
// GET /api/v1/students/:id/exam-schedule?semester_id=
func (h *EnrollmentHandler) GetStudentExamSchedule(c *gin.Context) {
	studentID, ok := h.resolveStudent(c)
	if !ok {
		return
	}

	semesterID, ok := parseSemesterQuery(c)
	if !ok {
		return
	}

	entries, err := h.svc.StudentExamSchedule(c.Request.Context(), studentID, semesterID)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, entries)
}

// GetProfessorWeeklySchedule 查询教授某学期授课课表
// GET /api/v1/professors/:id/weekly-schedule?semester_id=
func (h *EnrollmentHandler) GetProfessorWeeklySchedule(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	id, ok := parseIDOrMe(c, "id")
	if !ok {
		return
	}

	professor, err := h.accounts.GetProfessor(c.Request.Context(), caller, id)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	semesterID, ok := parseSemesterQuery(c)
	if !ok {
		return
	}

	entries, err := h.svc.ProfessorWeeklySchedule(c.Request.Context(), professor.ID, semesterID)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, entries)
}

// resolveStudent 解析路径中的学生 ID（支持 "me"）并按调用者作用域裁决，
// 返回裁决后的学生数字主键
func (h *EnrollmentHandler) resolveStudent(c *gin.Context) (uint, bool) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return 0, false
	}

	id, ok := parseIDOrMe(c, "id")
	if !ok {
		return 0, false
	}

	student, err := h.accounts.GetStudent(c.Request.Context(), caller, id)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return 0, false
	}

	return student.ID, true
}

// parseSemesterQuery 解析必填的 semester_id 查询参数
func parseSemesterQuery(c *gin.Context) (uint, bool) {
	raw := c.Query("semester_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, 10001, "查询参数 semester_id 无效")
		return 0, false
	}
	return uint(id), true
}

// handleEnrollmentError 选课与学业模块错误码映射
func (h *EnrollmentHandler) handleEnrollmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAttemptNotFound):
		response.NotFound(c, 16001, err.Error())
	case errors.Is(err, service.ErrDuplicateAttempt):
		response.BadRequest(c, 16002, err.Error())
	case errors.Is(err, service.ErrModificationClosed):
		response.BadRequest(c, 16003, err.Error())
	case errors.Is(err, service.ErrGradeInvalid),
		errors.Is(err, validation.ErrGradeOutOfRange):
		response.BadRequest(c, 16004, err.Error())
	case errors.Is(err, service.ErrStudentSemesterNotFound):
		response.NotFound(c, 16005, err.Error())
	case errors.Is(err, service.ErrStudentSemesterExists):
		response.BadRequest(c, 16006, err.Error())
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 12001, err.Error())
	case errors.Is(err, service.ErrProfessorNotFound):
		response.NotFound(c, 12002, err.Error())
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, 14001, err.Error())
	case errors.Is(err, service.ErrSemesterCourseNotFound):
		response.NotFound(c, 15005, err.Error())
	default:
		response.InternalError(c)
	}
}
