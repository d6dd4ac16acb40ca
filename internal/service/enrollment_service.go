package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Mahdi-Salimi/university-management-system/internal/dto"
	"github.com/Mahdi-Salimi/university-management-system/internal/model"
	"github.com/Mahdi-Salimi/university-management-system/internal/repository"
	"github.com/Mahdi-Salimi/university-management-system/internal/validation"
)

// ── 选课模块业务错误 ──

var (
	ErrAttemptNotFound         = errors.New("选课记录不存在")
	ErrDuplicateAttempt        = errors.New("该学生已有此开课的选课记录")
	ErrModificationClosed      = errors.New("改选窗口已关闭")
	ErrGradeInvalid            = errors.New("成绩格式无效")
	ErrStudentSemesterNotFound = errors.New("学期成绩记录不存在")
	ErrStudentSemesterExists   = errors.New("该学生在此学期已有成绩记录")
)

// EnrollmentService 选课与成绩业务接口
type EnrollmentService interface {
	CreateAttempt(ctx context.Context, caller *Caller, req *dto.CreateStudentCourseRequest) (*dto.StudentCourseResponse, error)
	GetAttempt(ctx context.Context, id uint) (*dto.StudentCourseResponse, error)
	ListAttempts(ctx context.Context, page *dto.PaginationRequest) ([]dto.StudentCourseResponse, int64, error)
	ListAttemptsByStudent(ctx context.Context, studentID uint) ([]dto.StudentCourseResponse, error)
	UpdateAttempt(ctx context.Context, id uint, req *dto.UpdateStudentCourseRequest) (*dto.StudentCourseResponse, error)
	DeleteAttempt(ctx context.Context, caller *Caller, id uint) error

	CreateStudentSemester(ctx context.Context, req *dto.CreateStudentSemesterRequest) (*dto.StudentSemesterResponse, error)
	GetStudentSemester(ctx context.Context, id uint) (*dto.StudentSemesterResponse, error)
	ListStudentSemesters(ctx context.Context, page *dto.PaginationRequest) ([]dto.StudentSemesterResponse, int64, error)
	UpdateStudentSemester(ctx context.Context, id uint, req *dto.UpdateStudentSemesterRequest) (*dto.StudentSemesterResponse, error)
	DeleteStudentSemester(ctx context.Context, id uint) error

	SemesterGPA(ctx context.Context, studentID, semesterID uint) (*dto.GPAResponse, error)
	TotalGPA(ctx context.Context, studentID uint) (*dto.GPAResponse, error)
	HalfYears(ctx context.Context, studentID uint) (*dto.HalfYearsResponse, error)

	StudentWeeklySchedule(ctx context.Context, studentID, semesterID uint) ([]dto.ScheduleEntryResponse, error)
	ProfessorWeeklySchedule(ctx context.Context, professorID, semesterID uint) ([]dto.ScheduleEntryResponse, error)
	StudentExamSchedule(ctx context.Context, studentID, semesterID uint) ([]dto.ExamEntryResponse, error)
}

type enrollmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewEnrollmentService 创建 EnrollmentService 实例
func NewEnrollmentService(repo *repository.Repository, logger *zap.Logger) EnrollmentService {
	return &enrollmentService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── 选课记录 ──────────────────────

func (s *enrollmentService) CreateAttempt(ctx context.Context, caller *Caller, req *dto.CreateStudentCourseRequest) (*dto.StudentCourseResponse, error) {
	if _, err := s.repo.Student.GetByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	sc, err := s.repo.SemesterCourse.GetByID(ctx, req.SemesterCourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterCourseNotFound
		}
		return nil, err
	}

	// 非管理调用者受改选窗口约束
	if !caller.IsStaff && sc.Semester != nil && sc.Semester.ModificationClosed(s.now()) {
		return nil, ErrModificationClosed
	}

	existing, err := s.repo.StudentCourse.ListByStudent(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].SemesterCourseID == req.SemesterCourseID {
			return nil, ErrDuplicateAttempt
		}
	}

	attempt := &model.StudentCourse{
		StudentID:        req.StudentID,
		SemesterCourseID: req.SemesterCourseID,
		CourseStatus:     model.AttemptStudying,
	}
	if req.CourseStatus != "" {
		attempt.CourseStatus = model.AttemptStatus(req.CourseStatus)
	}
	if req.StudentGrade != nil {
		grade, err := parseGrade(*req.StudentGrade)
		if err != nil {
			return nil, err
		}
		attempt.StudentGrade = decimal.NewNullDecimal(grade)
	}

	if err := s.repo.StudentCourse.Create(ctx, attempt); err != nil {
		s.logger.Error("创建选课记录失败", zap.Error(err))
		return nil, err
	}

	if err := s.recomputeGPA(ctx, attempt.StudentID, sc.SemesterID); err != nil {
		s.logger.Warn("绩点重算失败", zap.Uint("student_id", attempt.StudentID), zap.Error(err))
	}

	return s.GetAttempt(ctx, attempt.ID)
}

func (s *enrollmentService) GetAttempt(ctx context.Context, id uint) (*dto.StudentCourseResponse, error) {
	attempt, err := s.repo.StudentCourse.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, err
	}
	return toStudentCourseResponse(attempt), nil
}

func (s *enrollmentService) ListAttempts(ctx context.Context, page *dto.PaginationRequest) ([]dto.StudentCourseResponse, int64, error) {
	attempts, total, err := s.repo.StudentCourse.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("列出选课记录失败", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.StudentCourseResponse, 0, len(attempts))
	for i := range attempts {
		result = append(result, *toStudentCourseResponse(&attempts[i]))
	}
	return result, total, nil
}

func (s *enrollmentService) ListAttemptsByStudent(ctx context.Context, studentID uint) ([]dto.StudentCourseResponse, error) {
	attempts, err := s.repo.StudentCourse.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询学生选课记录失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, err
	}
	result := make([]dto.StudentCourseResponse, 0, len(attempts))
	for i := range attempts {
		result = append(result, *toStudentCourseResponse(&attempts[i]))
	}
	return result, nil
}

// UpdateAttempt 录入成绩 / 变更状态。成绩录入不受改选窗口约束
func (s *enrollmentService) UpdateAttempt(ctx context.Context, id uint, req *dto.UpdateStudentCourseRequest) (*dto.StudentCourseResponse, error) {
	attempt, err := s.repo.StudentCourse.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, err
	}

	if req.CourseStatus != nil {
		attempt.CourseStatus = model.AttemptStatus(*req.CourseStatus)
	}
	if req.StudentGrade != nil {
		grade, err := parseGrade(*req.StudentGrade)
		if err != nil {
			return nil, err
		}
		attempt.StudentGrade = decimal.NewNullDecimal(grade)
	}

	if err := s.repo.StudentCourse.Update(ctx, attempt); err != nil {
		s.logger.Error("更新选课记录失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if attempt.SemesterCourse != nil {
		if err := s.recomputeGPA(ctx, attempt.StudentID, attempt.SemesterCourse.SemesterID); err != nil {
			s.logger.Warn("绩点重算失败", zap.Uint("student_id", attempt.StudentID), zap.Error(err))
		}
	}

	return toStudentCourseResponse(attempt), nil
}

func (s *enrollmentService) DeleteAttempt(ctx context.Context, caller *Caller, id uint) error {
	attempt, err := s.repo.StudentCourse.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttemptNotFound
		}
		return err
	}
	if !caller.IsStaff && attempt.SemesterCourse != nil && attempt.SemesterCourse.Semester != nil &&
		attempt.SemesterCourse.Semester.ModificationClosed(s.now()) {
		return ErrModificationClosed
	}

	if err := s.repo.StudentCourse.Delete(ctx, id); err != nil {
		s.logger.Error("删除选课记录失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if attempt.SemesterCourse != nil {
		if err := s.recomputeGPA(ctx, attempt.StudentID, attempt.SemesterCourse.SemesterID); err != nil {
			s.logger.Warn("绩点重算失败", zap.Uint("student_id", attempt.StudentID), zap.Error(err))
		}
	}
	return nil
}

// ────────────────────── 学期成绩 ──────────────────────

func (s *enrollmentService) CreateStudentSemester(ctx context.Context, req *dto.CreateStudentSemesterRequest) (*dto.StudentSemesterResponse, error) {
	if _, err := s.repo.Student.GetByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Semester.GetByID(ctx, req.SemesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}
	if _, err := s.repo.StudentSemester.GetByStudentAndSemester(ctx, req.StudentID, req.SemesterID); err == nil {
		return nil, ErrStudentSemesterExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	record := &model.StudentSemester{
		StudentID:      req.StudentID,
		SemesterID:     req.SemesterID,
		SemesterStatus: model.SemesterOngoing,
	}
	if req.SemesterStatus != "" {
		record.SemesterStatus = model.StudentSemesterStatus(req.SemesterStatus)
	}

	attempts, err := s.repo.StudentCourse.ListByStudentAndSemester(ctx, req.StudentID, req.SemesterID)
	if err != nil {
		return nil, err
	}
	record.GPA = model.CalculateGPA(attempts)

	if err := s.repo.StudentSemester.Create(ctx, record); err != nil {
		s.logger.Error("创建学期成绩失败", zap.Error(err))
		return nil, err
	}
	return s.GetStudentSemester(ctx, record.ID)
}

func (s *enrollmentService) GetStudentSemester(ctx context.Context, id uint) (*dto.StudentSemesterResponse, error) {
	record, err := s.repo.StudentSemester.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentSemesterNotFound
		}
		return nil, err
	}
	return toStudentSemesterResponse(record), nil
}

func (s *enrollmentService) ListStudentSemesters(ctx context.Context, page *dto.PaginationRequest) ([]dto.StudentSemesterResponse, int64, error) {
	records, total, err := s.repo.StudentSemester.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("列出学期成绩失败", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.StudentSemesterResponse, 0, len(records))
	for i := range records {
		result = append(result, *toStudentSemesterResponse(&records[i]))
	}
	return result, total, nil
}

func (s *enrollmentService) UpdateStudentSemester(ctx context.Context, id uint, req *dto.UpdateStudentSemesterRequest) (*dto.StudentSemesterResponse, error) {
	record, err := s.repo.StudentSemester.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentSemesterNotFound
		}
		return nil, err
	}
	if req.SemesterStatus != nil {
		record.SemesterStatus = model.StudentSemesterStatus(*req.SemesterStatus)
	}

	// 状态变更的同时刷新绩点
	attempts, err := s.repo.StudentCourse.ListByStudentAndSemester(ctx, record.StudentID, record.SemesterID)
	if err != nil {
		return nil, err
	}
	record.GPA = model.CalculateGPA(attempts)

	if err := s.repo.StudentSemester.Update(ctx, record); err != nil {
		s.logger.Error("更新学期成绩失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toStudentSemesterResponse(record), nil
}

func (s *enrollmentService) DeleteStudentSemester(ctx context.Context, id uint) error {
	if _, err := s.repo.StudentSemester.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentSemesterNotFound
		}
		return err
	}
	if err := s.repo.StudentSemester.Delete(ctx, id); err != nil {
		s.logger.Error("删除学期成绩失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 绩点 / 学期数 ──────────────────────

func (s *enrollmentService) SemesterGPA(ctx context.Context, studentID, semesterID uint) (*dto.GPAResponse, error) {
	if _, err := s.repo.Student.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	attempts, err := s.repo.StudentCourse.ListByStudentAndSemester(ctx, studentID, semesterID)
	if err != nil {
		return nil, err
	}
	return gpaResponse(studentID, &semesterID, attempts), nil
}

func (s *enrollmentService) TotalGPA(ctx context.Context, studentID uint) (*dto.GPAResponse, error) {
	if _, err := s.repo.Student.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	attempts, err := s.repo.StudentCourse.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return gpaResponse(studentID, nil, attempts), nil
}

// HalfYears 已用学期数只统计非夏季学期的已完结记录
func (s *enrollmentService) HalfYears(ctx context.Context, studentID uint) (*dto.HalfYearsResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	records, err := s.repo.StudentSemester.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	used := 0
	for i := range records {
		r := &records[i]
		if !r.SemesterStatus.CountsAsUsedHalfYear() {
			continue
		}
		if r.Semester != nil && r.Semester.AcademicSemester == model.SemesterSummer {
			continue
		}
		used++
	}

	return &dto.HalfYearsResponse{
		StudentID:          studentID,
		AllowedHalfYears:   student.AllowedHalfYears,
		UsedHalfYears:      used,
		RemainingHalfYears: student.AllowedHalfYears - used,
	}, nil
}

// ────────────────────── 课表 / 考试安排 ──────────────────────

func (s *enrollmentService) StudentWeeklySchedule(ctx context.Context, studentID, semesterID uint) ([]dto.ScheduleEntryResponse, error) {
	sessions, err := s.repo.ClassSession.ListForStudent(ctx, studentID, semesterID)
	if err != nil {
		s.logger.Error("查询学生课表失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, err
	}
	return toScheduleEntries(sessions), nil
}

func (s *enrollmentService) ProfessorWeeklySchedule(ctx context.Context, professorID, semesterID uint) ([]dto.ScheduleEntryResponse, error) {
	sessions, err := s.repo.ClassSession.ListForProfessor(ctx, professorID, semesterID)
	if err != nil {
		s.logger.Error("查询教授课表失败", zap.Uint("professor_id", professorID), zap.Error(err))
		return nil, err
	}
	return toScheduleEntries(sessions), nil
}

func (s *enrollmentService) StudentExamSchedule(ctx context.Context, studentID, semesterID uint) ([]dto.ExamEntryResponse, error) {
	attempts, err := s.repo.StudentCourse.ListByStudentAndSemester(ctx, studentID, semesterID)
	if err != nil {
		s.logger.Error("查询考试安排失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, err
	}

	entries := make([]dto.ExamEntryResponse, 0, len(attempts))
	for i := range attempts {
		sc := attempts[i].SemesterCourse
		if sc == nil || sc.Course == nil {
			continue
		}
		entries = append(entries, dto.ExamEntryResponse{
			CourseName:   sc.Course.Name,
			CourseCode:   sc.Course.Code,
			ExamDateTime: sc.ExamDateTime.Format(time.RFC3339),
			ExamPlace:    sc.ExamPlace,
		})
	}
	return entries, nil
}

// ────────────────────── 内部辅助 ──────────────────────

// recomputeGPA 选课记录变动后刷新学期成绩行与学生总绩点
func (s *enrollmentService) recomputeGPA(ctx context.Context, studentID, semesterID uint) error {
	attempts, err := s.repo.StudentCourse.ListByStudentAndSemester(ctx, studentID, semesterID)
	if err != nil {
		return err
	}
	record, err := s.repo.StudentSemester.GetByStudentAndSemester(ctx, studentID, semesterID)
	if err == nil {
		record.GPA = model.CalculateGPA(attempts)
		if err := s.repo.StudentSemester.Update(ctx, record); err != nil {
			return err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	all, err := s.repo.StudentCourse.ListByStudent(ctx, studentID)
	if err != nil {
		return err
	}
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		return err
	}
	student.GPA = decimal.NewNullDecimal(model.CalculateGPA(all))
	return s.repo.Student.Update(ctx, student)
}

func parseGrade(input string) (decimal.Decimal, error) {
	grade, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, ErrGradeInvalid
	}
	if err := validation.Grade(grade); err != nil {
		return decimal.Zero, err
	}
	return grade, nil
}

func gpaResponse(studentID uint, semesterID *uint, attempts []model.StudentCourse) *dto.GPAResponse {
	totalUnits := 0
	for i := range attempts {
		a := &attempts[i]
		if !a.CourseStatus.CountsForGPA() || !a.StudentGrade.Valid {
			continue
		}
		if a.SemesterCourse == nil || a.SemesterCourse.Course == nil {
			continue
		}
		totalUnits += a.SemesterCourse.Course.CourseUnit
	}
	return &dto.GPAResponse{
		StudentID:  studentID,
		SemesterID: semesterID,
		GPA:        model.CalculateGPA(attempts).StringFixed(2),
		TotalUnits: float64(totalUnits),
	}
}

func toScheduleEntries(sessions []model.ClassSession) []dto.ScheduleEntryResponse {
	entries := make([]dto.ScheduleEntryResponse, 0, len(sessions))
	for i := range sessions {
		sc := sessions[i].SemesterCourse
		if sc == nil || sc.Course == nil {
			continue
		}
		entry := dto.ScheduleEntryResponse{
			CourseName: sc.Course.Name,
			CourseCode: sc.Course.Code,
			DayOfWeek:  string(sessions[i].DayOfWeek),
			TimeBlock:  string(sessions[i].TimeBlock),
		}
		if sc.Semester != nil {
			entry.SemesterCode = sc.Semester.SemesterCode()
		}
		entries = append(entries, entry)
	}
	return entries
}

// ────────────────────── 响应映射 ──────────────────────

func toStudentCourseResponse(m *model.StudentCourse) *dto.StudentCourseResponse {
	if m == nil {
		return nil
	}
	resp := &dto.StudentCourseResponse{
		ID:           m.ID,
		StudentID:    m.StudentID,
		CourseStatus: string(m.CourseStatus),
	}
	if m.SemesterCourse != nil {
		resp.SemesterCourse = toSemesterCourseResponse(m.SemesterCourse, nil)
	}
	if m.StudentGrade.Valid {
		grade := m.StudentGrade.Decimal.StringFixed(2)
		resp.StudentGrade = &grade
	}
	return resp
}

func toStudentSemesterResponse(m *model.StudentSemester) *dto.StudentSemesterResponse {
	if m == nil {
		return nil
	}
	resp := &dto.StudentSemesterResponse{
		ID:             m.ID,
		StudentID:      m.StudentID,
		GPA:            m.GPA.StringFixed(2),
		SemesterStatus: string(m.SemesterStatus),
	}
	if m.Semester != nil {
		resp.Semester = toSemesterResponse(m.Semester)
	}
	return resp
}
