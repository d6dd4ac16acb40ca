package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/Mahdi-Salimi/university-management-system/internal/dto"
	"github.com/Mahdi-Salimi/university-management-system/internal/model"
	"github.com/Mahdi-Salimi/university-management-system/internal/service"
	"github.com/Mahdi-Salimi/university-management-system/pkg/jwt"
	"github.com/Mahdi-Salimi/university-management-system/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult   *dto.TokenResponse
	loginErr      error
	refreshResult *dto.TokenResponse
	refreshErr    error
	logoutErr     error
	meResult      *dto.AccountResponse
	meErr         error
	requestErr    error
	verifyErr     error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Refresh(_ context.Context, _ *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ *jwt.Claims, _ *dto.LogoutRequest) error {
	return m.logoutErr
}
func (m *mockAuthService) Me(_ context.Context, _ uint) (*dto.AccountResponse, error) {
	return m.meResult, m.meErr
}
func (m *mockAuthService) RequestPasswordChange(_ context.Context, _ *dto.ChangePasswordRequest) error {
	return m.requestErr
}
func (m *mockAuthService) VerifyPasswordChange(_ context.Context, _ *dto.VerifyChangePasswordRequest) error {
	return m.verifyErr
}

// ── Mock SemesterService ──

type mockSemesterService struct {
	createResult  *dto.SemesterResponse
	createErr     error
	getResult     *dto.SemesterResponse
	getErr        error
	currentResult *dto.SemesterResponse
	currentErr    error
	listResult    []dto.SemesterResponse
	listTotal     int64
	listErr       error
	updateResult  *dto.SemesterResponse
	updateErr     error
	deleteErr     error
}

func (m *mockSemesterService) Create(_ context.Context, _ *dto.CreateSemesterRequest) (*dto.SemesterResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockSemesterService) GetByID(_ context.Context, _ uint) (*dto.SemesterResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockSemesterService) GetCurrent(_ context.Context) (*dto.SemesterResponse, error) {
	return m.currentResult, m.currentErr
}
func (m *mockSemesterService) List(_ context.Context, _ *dto.PaginationRequest) ([]dto.SemesterResponse, int64, error) {
	return m.listResult, m.listTotal, m.listErr
}
func (m *mockSemesterService) Update(_ context.Context, _ uint, _ *dto.UpdateSemesterRequest) (*dto.SemesterResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockSemesterService) Delete(_ context.Context, _ uint) error {
	return m.deleteErr
}

// ── Mock AccountService（仅 GetStudent 可配置，其余桩实现）──

type mockAccountService struct {
	getStudentResult *dto.StudentResponse
	getStudentErr    error
	getProfResult    *dto.ProfessorResponse
	getProfErr       error
}

func (m *mockAccountService) CreateStudent(_ context.Context, _ *service.Caller, _ *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	return nil, nil
}
func (m *mockAccountService) GetStudent(_ context.Context, _ *service.Caller, _ uint) (*dto.StudentResponse, error) {
	return m.getStudentResult, m.getStudentErr
}
func (m *mockAccountService) ListStudents(_ context.Context, _ *service.Caller, _ *dto.PaginationRequest) ([]dto.StudentResponse, int64, error) {
	return nil, 0, nil
}
func (m *mockAccountService) UpdateStudent(_ context.Context, _ *service.Caller, _ uint, _ *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	return nil, nil
}
func (m *mockAccountService) DeleteStudent(_ context.Context, _ *service.Caller, _ uint) error {
	return nil
}
func (m *mockAccountService) CreateProfessor(_ context.Context, _ *service.Caller, _ *dto.CreateProfessorRequest) (*dto.ProfessorResponse, error) {
	return nil, nil
}
func (m *mockAccountService) GetProfessor(_ context.Context, _ *service.Caller, _ uint) (*dto.ProfessorResponse, error) {
	return m.getProfResult, m.getProfErr
}
func (m *mockAccountService) ListProfessors(_ context.Context, _ *service.Caller, _ *dto.PaginationRequest) ([]dto.ProfessorResponse, int64, error) {
	return nil, 0, nil
}
func (m *mockAccountService) UpdateProfessor(_ context.Context, _ *service.Caller, _ uint, _ *dto.UpdateProfessorRequest) (*dto.ProfessorResponse, error) {
	return nil, nil
}
func (m *mockAccountService) DeleteProfessor(_ context.Context, _ *service.Caller, _ uint) error {
	return nil
}
func (m *mockAccountService) CreateAssistant(_ context.Context, _ *service.Caller, _ *dto.CreateAssistantRequest) (*dto.AssistantResponse, error) {
	return nil, nil
}
func (m *mockAccountService) GetAssistant(_ context.Context, _ *service.Caller, _ uint) (*dto.AssistantResponse, error) {
	return nil, nil
}
func (m *mockAccountService) ListAssistants(_ context.Context, _ *service.Caller, _ *dto.PaginationRequest) ([]dto.AssistantResponse, int64, error) {
	return nil, 0, nil
}
func (m *mockAccountService) UpdateAssistant(_ context.Context, _ *service.Caller, _ uint, _ *dto.UpdateAssistantRequest) (*dto.AssistantResponse, error) {
	return nil, nil
}
func (m *mockAccountService) DeleteAssistant(_ context.Context, _ *service.Caller, _ uint) error {
	return nil
}
func (m *mockAccountService) ListCapabilities(_ context.Context, _ uint) ([]string, error) {
	return nil, nil
}
func (m *mockAccountService) GrantCapabilities(_ context.Context, _ uint, _ []string) error {
	return nil
}
func (m *mockAccountService) RevokeCapability(_ context.Context, _ uint, _ string) error {
	return nil
}

// ── Mock EnrollmentService（仅绩点查询可配置，其余桩实现）──

type mockEnrollmentService struct {
	semesterGPAResult *dto.GPAResponse
	semesterGPAErr    error
	totalGPAResult    *dto.GPAResponse
	totalGPAErr       error
}

func (m *mockEnrollmentService) CreateAttempt(_ context.Context, _ *service.Caller, _ *dto.CreateStudentCourseRequest) (*dto.StudentCourseResponse, error) {
	return nil, nil
}
func (m *mockEnrollmentService) GetAttempt(_ context.Context, _ uint) (*dto.StudentCourseResponse, error) {
	return nil, nil
}
func (m *mockEnrollmentService) ListAttempts(_ context.Context, _ *dto.PaginationRequest) ([]dto.StudentCourseResponse, int64, error) {
	return nil, 0, nil
}
func (m *mockEnrollmentService) ListAttemptsByStudent(_ context.Context, _ uint) ([]dto.StudentCourseResponse, error) {
	return nil, nil
}
func (m *mockEnrollmentService) UpdateAttempt(_ context.Context, _ uint, _ *dto.UpdateStudentCourseRequest) (*dto.StudentCourseResponse, error) {
	return nil, nil
}
func (m *mockEnrollmentService) DeleteAttempt(_ context.Context, _ *service.Caller, _ uint) error {
	return nil
}
func (m *mockEnrollmentService) CreateStudentSemester(_ context.Context, _ *dto.CreateStudentSemesterRequest) (*dto.StudentSemesterResponse, error) {
	return nil, nil
}
func (m *mockEnrollmentService) GetStudentSemester(_ context.Context, _ uint) (*dto.StudentSemesterResponse, error) {
	return nil, nil
}
func (m *mockEnrollmentService) ListStudentSemesters(_ context.Context, _ *dto.PaginationRequest) ([]dto.StudentSemesterResponse, int64, error) {
	return nil, 0, nil
}
func (m *mockEnrollmentService) UpdateStudentSemester(_ context.Context, _ uint, _ *dto.UpdateStudentSemesterRequest) (*dto.StudentSemesterResponse, error) {
	return nil, nil
}
func (m *mockEnrollmentService) DeleteStudentSemester(_ context.Context, _ uint) error {
	return nil
}
func (m *mockEnrollmentService) SemesterGPA(_ context.Context, _, _ uint) (*dto.GPAResponse, error) {
	return m.semesterGPAResult, m.semesterGPAErr
}
func (m *mockEnrollmentService) TotalGPA(_ context.Context, _ uint) (*dto.GPAResponse, error) {
	return m.totalGPAResult, m.totalGPAErr
}
func (m *mockEnrollmentService) HalfYears(_ context.Context, _ uint) (*dto.HalfYearsResponse, error) {
	return nil, nil
}
func (m *mockEnrollmentService) StudentWeeklySchedule(_ context.Context, _, _ uint) ([]dto.ScheduleEntryResponse, error) {
	return nil, nil
}
func (m *mockEnrollmentService) ProfessorWeeklySchedule(_ context.Context, _, _ uint) ([]dto.ScheduleEntryResponse, error) {
	return nil, nil
}
func (m *mockEnrollmentService) StudentExamSchedule(_ context.Context, _, _ uint) ([]dto.ExamEntryResponse, error) {
	return nil, nil
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) TranscriptXLSX(_ context.Context, _ uint) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ScheduleICS(_ context.Context, _, _ uint) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func setAuth(c *gin.Context) {
	c.Set("caller", &service.Caller{AccountID: 1, Username: "tester", IsStaff: true})
	c.Set("claims", &jwt.Claims{
		AccountID: 1,
		Username:  "tester",
		TokenType: "access",
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        "test-jti",
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(15 * time.Minute)),
		},
	})
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "test-access-token",
			RefreshToken: "test-refresh-token",
			ExpiresIn:    900,
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "alice",
		Password: "open-sesame",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 10001 {
		t.Errorf("expected error code 10001, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "alice",
		Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_Me_Success(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{
		meResult: &dto.AccountResponse{ID: 1, Username: "tester"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/me", nil)

	r := gin.New()
	r.GET("/auth/me", func(c *gin.Context) {
		setAuth(c)
		h.Me(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/me", nil)

	r := gin.New()
	r.GET("/auth/me", h.Me)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 10002 {
		t.Errorf("expected error code 10002, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// SemesterHandler Tests
// ═══════════════════════════════════════════════════════════

func validCreateSemesterBody() dto.CreateSemesterRequest {
	return dto.CreateSemesterRequest{
		AcademicYear:             2026,
		AcademicSemester:         "A",
		StartCourseRegistration:  "2026-09-01T08:00:00Z",
		EndCourseRegistration:    "2026-09-07T18:00:00Z",
		StartClassDate:           "2026-09-10T08:00:00Z",
		EndClassDate:             "2026-12-25T18:00:00Z",
		StartCourseModification:  "2026-09-12T08:00:00Z",
		EndCourseModification:    "2026-09-20T18:00:00Z",
		EndEmergencyModification: "2026-10-20T18:00:00Z",
		StartExamDate:            "2027-01-02T08:00:00Z",
		EndSemesterDate:          "2027-01-20T18:00:00Z",
	}
}

func TestSemesterHandler_Create_WindowViolations(t *testing.T) {
	mock := &mockSemesterService{
		createErr: &service.SemesterWindowError{
			Violations: []model.WindowViolation{
				{Field: "end_course_registration", Message: "选课结束时间不能早于选课开始时间"},
			},
		},
	}
	h := NewSemesterHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/semesters", jsonBody(validCreateSemesterBody()))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/semesters", h.CreateSemester)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 14002 {
		t.Errorf("expected error code 14002, got %d", resp.Code)
	}
	if resp.Details == nil {
		t.Error("expected violation details in response")
	}
}

func TestSemesterHandler_GetCurrent_None(t *testing.T) {
	h := NewSemesterHandler(&mockSemesterService{currentErr: service.ErrNoCurrentSemester})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/semesters/current", nil)

	r := gin.New()
	r.GET("/semesters/current", h.GetCurrentSemester)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 14004 {
		t.Errorf("expected error code 14004, got %d", resp.Code)
	}
}

func TestSemesterHandler_GetCurrent_Ambiguous(t *testing.T) {
	h := NewSemesterHandler(&mockSemesterService{currentErr: service.ErrAmbiguousSemester})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/semesters/current", nil)

	r := gin.New()
	r.GET("/semesters/current", h.GetCurrentSemester)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 14005 {
		t.Errorf("expected error code 14005, got %d", resp.Code)
	}
}

func TestSemesterHandler_Get_BadID(t *testing.T) {
	h := NewSemesterHandler(&mockSemesterService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/semesters/abc", nil)

	r := gin.New()
	r.GET("/semesters/:id", h.GetSemester)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// EnrollmentHandler Tests
// ═══════════════════════════════════════════════════════════

func TestEnrollmentHandler_GetStudentGPA_Total(t *testing.T) {
	enrollment := &mockEnrollmentService{
		totalGPAResult: &dto.GPAResponse{StudentID: 7, GPA: "17.94", TotalUnits: 4},
	}
	accounts := &mockAccountService{getStudentResult: &dto.StudentResponse{ID: 7}}
	h := NewEnrollmentHandler(enrollment, accounts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/students/7/gpa", nil)

	r := gin.New()
	r.GET("/students/:id/gpa", func(c *gin.Context) {
		setAuth(c)
		h.GetStudentGPA(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestEnrollmentHandler_GetStudentGPA_SemesterQuery(t *testing.T) {
	semesterID := uint(3)
	enrollment := &mockEnrollmentService{
		semesterGPAResult: &dto.GPAResponse{StudentID: 7, SemesterID: &semesterID, GPA: "17.25", TotalUnits: 3},
	}
	accounts := &mockAccountService{getStudentResult: &dto.StudentResponse{ID: 7}}
	h := NewEnrollmentHandler(enrollment, accounts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/students/me/gpa?semester_id=3", nil)

	r := gin.New()
	r.GET("/students/:id/gpa", func(c *gin.Context) {
		setAuth(c)
		h.GetStudentGPA(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestEnrollmentHandler_GetStudentGPA_InvalidSemesterQuery(t *testing.T) {
	accounts := &mockAccountService{getStudentResult: &dto.StudentResponse{ID: 7}}
	h := NewEnrollmentHandler(&mockEnrollmentService{}, accounts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/students/7/gpa?semester_id=abc", nil)

	r := gin.New()
	r.GET("/students/:id/gpa", func(c *gin.Context) {
		setAuth(c)
		h.GetStudentGPA(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestEnrollmentHandler_GetStudentGPA_MaskedStudent(t *testing.T) {
	accounts := &mockAccountService{getStudentErr: service.ErrStudentNotFound}
	h := NewEnrollmentHandler(&mockEnrollmentService{}, accounts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/students/7/gpa", nil)

	r := gin.New()
	r.GET("/students/:id/gpa", func(c *gin.Context) {
		setAuth(c)
		h.GetStudentGPA(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 12001 {
		t.Errorf("expected error code 12001, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ExportTranscript_Success(t *testing.T) {
	export := &mockExportService{
		buf:      bytes.NewBufferString("xlsx-bytes"),
		filename: "transcript_7.xlsx",
	}
	accounts := &mockAccountService{getStudentResult: &dto.StudentResponse{ID: 7}}
	h := NewExportHandler(export, accounts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/transcript/7", nil)

	r := gin.New()
	r.GET("/export/transcript/:studentID", func(c *gin.Context) {
		setAuth(c)
		h.ExportTranscript(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != contentTypeXLSX {
		t.Errorf("expected xlsx content type, got %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="transcript_7.xlsx"` {
		t.Errorf("unexpected content disposition: %s", cd)
	}
}

func TestExportHandler_ExportSchedule_MissingSemester(t *testing.T) {
	accounts := &mockAccountService{getStudentResult: &dto.StudentResponse{ID: 7}}
	h := NewExportHandler(&mockExportService{}, accounts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/schedule/7", nil)

	r := gin.New()
	r.GET("/export/schedule/:studentID", func(c *gin.Context) {
		setAuth(c)
		h.ExportSchedule(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestExportHandler_ExportTranscript_NoAttempts(t *testing.T) {
	export := &mockExportService{err: service.ErrExportNoAttempts}
	accounts := &mockAccountService{getStudentResult: &dto.StudentResponse{ID: 7}}
	h := NewExportHandler(export, accounts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/transcript/7", nil)

	r := gin.New()
	r.GET("/export/transcript/:studentID", func(c *gin.Context) {
		setAuth(c)
		h.ExportTranscript(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 17001 {
		t.Errorf("expected error code 17001, got %d", resp.Code)
	}
}
