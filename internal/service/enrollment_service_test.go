package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Mahdi-Salimi/university-management-system/internal/dto"
	"github.com/Mahdi-Salimi/university-management-system/internal/model"
)

// ── 测试辅助 ──

func setupTestEnrollmentService() (*enrollmentService, *mocks) {
	m := newMocks()
	svc := NewEnrollmentService(m.repo(), zap.NewNop()).(*enrollmentService)
	return svc, m
}

func staffCaller() *Caller {
	return &Caller{AccountID: 1, Username: "admin", IsStaff: true}
}

func studentCaller() *Caller {
	return &Caller{AccountID: 2, Username: "student"}
}

// seedEnrollmentFixture 一名学生 + 一个学期 + 一门 3 学分课程的开课
func seedEnrollmentFixture(m *mocks, modDeadline time.Time) (*model.Student, *model.Semester, *model.SemesterCourse) {
	ctx := context.Background()

	student := &model.Student{AccountID: 2, Status: model.StudentStatusStudying, AllowedHalfYears: 8}
	_ = m.student.Create(ctx, student)

	semester := &model.Semester{
		AcademicYear:          2026,
		AcademicSemester:      model.SemesterAutumn,
		EndCourseModification: modDeadline,
	}
	_ = m.semester.Create(ctx, semester)

	course := &model.Course{Name: "数据结构", Code: "CS201", CourseUnit: 3, UnitType: model.UnitTheory}
	_ = m.course.Create(ctx, course)

	sc := &model.SemesterCourse{
		CourseID:       course.ID,
		SemesterID:     semester.ID,
		CourseCapacity: 30,
		Course:         course,
		Semester:       semester,
	}
	_ = m.semesterCourse.Create(ctx, sc)

	return student, semester, sc
}

func grade(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

// ── CreateAttempt 测试 ──

func TestEnrollmentService_CreateAttempt_Success(t *testing.T) {
	svc, m := setupTestEnrollmentService()
	student, _, sc := seedEnrollmentFixture(m, time.Now().Add(24*time.Hour))

	result, err := svc.CreateAttempt(context.Background(), studentCaller(), &dto.CreateStudentCourseRequest{
		StudentID:        student.ID,
		SemesterCourseID: sc.ID,
	})
	if err != nil {
		t.Fatalf("CreateAttempt 应成功: %v", err)
	}
	if result.CourseStatus != string(model.AttemptStudying) {
		t.Errorf("期望默认状态 S，实际=%s", result.CourseStatus)
	}
}

func TestEnrollmentService_CreateAttempt_ClosedWindowForNonStaff(t *testing.T) {
	svc, m := setupTestEnrollmentService()
	student, _, sc := seedEnrollmentFixture(m, time.Now().Add(-24*time.Hour))

	_, err := svc.CreateAttempt(context.Background(), studentCaller(), &dto.CreateStudentCourseRequest{
		StudentID:        student.ID,
		SemesterCourseID: sc.ID,
	})
	if !errors.Is(err, ErrModificationClosed) {
		t.Errorf("期望 ErrModificationClosed，实际: %v", err)
	}
}

func TestEnrollmentService_CreateAttempt_StaffBypassesWindow(t *testing.T) {
	svc, m := setupTestEnrollmentService()
	student, _, sc := seedEnrollmentFixture(m, time.Now().Add(-24*time.Hour))

	if _, err := svc.CreateAttempt(context.Background(), staffCaller(), &dto.CreateStudentCourseRequest{
		StudentID:        student.ID,
		SemesterCourseID: sc.ID,
	}); err != nil {
		t.Errorf("管理调用者应不受改选窗口约束: %v", err)
	}
}

func TestEnrollmentService_CreateAttempt_Duplicate(t *testing.T) {
	svc, m := setupTestEnrollmentService()
	student, _, sc := seedEnrollmentFixture(m, time.Now().Add(24*time.Hour))

	req := &dto.CreateStudentCourseRequest{StudentID: student.ID, SemesterCourseID: sc.ID}
	if _, err := svc.CreateAttempt(context.Background(), studentCaller(), req); err != nil {
		t.Fatalf("首次选课应成功: %v", err)
	}
	if _, err := svc.CreateAttempt(context.Background(), studentCaller(), req); !errors.Is(err, ErrDuplicateAttempt) {
		t.Errorf("期望 ErrDuplicateAttempt，实际: %v", err)
	}
}

func TestEnrollmentService_CreateAttempt_BadGrade(t *testing.T) {
	svc, m := setupTestEnrollmentService()
	student, _, sc := seedEnrollmentFixture(m, time.Now().Add(24*time.Hour))

	bad := "not-a-number"
	_, err := svc.CreateAttempt(context.Background(), staffCaller(), &dto.CreateStudentCourseRequest{
		StudentID:        student.ID,
		SemesterCourseID: sc.ID,
		StudentGrade:     &bad,
	})
	if !errors.Is(err, ErrGradeInvalid) {
		t.Errorf("期望 ErrGradeInvalid，实际: %v", err)
	}
}

// ── UpdateAttempt / 绩点重算 测试 ──

func TestEnrollmentService_UpdateAttempt_RefreshesGPA(t *testing.T) {
	svc, m := setupTestEnrollmentService()
	student, semester, sc := seedEnrollmentFixture(m, time.Now().Add(24*time.Hour))

	attempt := &model.StudentCourse{
		StudentID:        student.ID,
		SemesterCourseID: sc.ID,
		CourseStatus:     model.AttemptStudying,
		SemesterCourse:   sc,
	}
	_ = m.studentCourse.Create(context.Background(), attempt)

	record := &model.StudentSemester{StudentID: student.ID, SemesterID: semester.ID, SemesterStatus: model.SemesterOngoing}
	_ = m.studentSemester.Create(context.Background(), record)

	status := string(model.AttemptPassed)
	gradeStr := "17.25"
	result, err := svc.UpdateAttempt(context.Background(), attempt.ID, &dto.UpdateStudentCourseRequest{
		CourseStatus: &status,
		StudentGrade: &gradeStr,
	})
	if err != nil {
		t.Fatalf("UpdateAttempt 应成功: %v", err)
	}
	if result.StudentGrade == nil || *result.StudentGrade != "17.25" {
		t.Errorf("期望成绩 17.25，实际=%v", result.StudentGrade)
	}
	if record.GPA.StringFixed(2) != "17.25" {
		t.Errorf("学期成绩行应被刷新，期望 17.25，实际=%s", record.GPA.StringFixed(2))
	}
	if !student.GPA.Valid || student.GPA.Decimal.StringFixed(2) != "17.25" {
		t.Errorf("学生总绩点应被刷新，实际=%v", student.GPA)
	}
}

// ── DeleteAttempt 测试 ──

func TestEnrollmentService_DeleteAttempt_ClosedWindowForNonStaff(t *testing.T) {
	svc, m := setupTestEnrollmentService()
	student, _, sc := seedEnrollmentFixture(m, time.Now().Add(-24*time.Hour))

	attempt := &model.StudentCourse{StudentID: student.ID, SemesterCourseID: sc.ID, SemesterCourse: sc}
	_ = m.studentCourse.Create(context.Background(), attempt)

	if err := svc.DeleteAttempt(context.Background(), studentCaller(), attempt.ID); !errors.Is(err, ErrModificationClosed) {
		t.Errorf("期望 ErrModificationClosed，实际: %v", err)
	}
	if err := svc.DeleteAttempt(context.Background(), staffCaller(), attempt.ID); err != nil {
		t.Errorf("管理调用者应可删除: %v", err)
	}
}

// ── 绩点查询 测试 ──

func TestEnrollmentService_SemesterGPA_Weighted(t *testing.T) {
	svc, m := setupTestEnrollmentService()
	student, semester, sc3 := seedEnrollmentFixture(m, time.Now().Add(24*time.Hour))

	course1 := &model.Course{Name: "离散数学", Code: "CS102", CourseUnit: 1}
	_ = m.course.Create(context.Background(), course1)
	sc1 := &model.SemesterCourse{CourseID: course1.ID, SemesterID: semester.ID, Course: course1, Semester: semester}
	_ = m.semesterCourse.Create(context.Background(), sc1)

	// (17.25×3 + 20×1) / 4 = 17.94
	_ = m.studentCourse.Create(context.Background(), &model.StudentCourse{
		StudentID: student.ID, SemesterCourseID: sc3.ID,
		CourseStatus: model.AttemptPassed, StudentGrade: grade("17.25"), SemesterCourse: sc3,
	})
	_ = m.studentCourse.Create(context.Background(), &model.StudentCourse{
		StudentID: student.ID, SemesterCourseID: sc1.ID,
		CourseStatus: model.AttemptPassed, StudentGrade: grade("20"), SemesterCourse: sc1,
	})

	result, err := svc.SemesterGPA(context.Background(), student.ID, semester.ID)
	if err != nil {
		t.Fatalf("SemesterGPA 应成功: %v", err)
	}
	if result.GPA != "17.94" {
		t.Errorf("期望绩点 17.94，实际=%s", result.GPA)
	}
	if result.TotalUnits != 4 {
		t.Errorf("期望计入学分 4，实际=%v", result.TotalUnits)
	}
}

func TestEnrollmentService_TotalGPA_NoAttempts(t *testing.T) {
	svc, m := setupTestEnrollmentService()
	student, _, _ := seedEnrollmentFixture(m, time.Now().Add(24*time.Hour))

	result, err := svc.TotalGPA(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("TotalGPA 应成功: %v", err)
	}
	if result.GPA != "0.00" {
		t.Errorf("无选课记录时期望绩点 0.00，实际=%s", result.GPA)
	}
	if result.SemesterID != nil {
		t.Error("总绩点响应不应携带学期 ID")
	}
}

// ── HalfYears 测试 ──

func TestEnrollmentService_HalfYears_ExcludesSummerAndOngoing(t *testing.T) {
	svc, m := setupTestEnrollmentService()
	student, autumn, _ := seedEnrollmentFixture(m, time.Now().Add(24*time.Hour))

	summer := &model.Semester{AcademicYear: 2026, AcademicSemester: model.SemesterSummer}
	_ = m.semester.Create(context.Background(), summer)
	winter := &model.Semester{AcademicYear: 2026, AcademicSemester: model.SemesterWinter}
	_ = m.semester.Create(context.Background(), winter)

	// 秋季已通过：计入；夏季已通过：不计入；冬季进行中：不计入
	_ = m.studentSemester.Create(context.Background(), &model.StudentSemester{
		StudentID: student.ID, SemesterID: autumn.ID, SemesterStatus: model.SemesterPassed, Semester: autumn,
	})
	_ = m.studentSemester.Create(context.Background(), &model.StudentSemester{
		StudentID: student.ID, SemesterID: summer.ID, SemesterStatus: model.SemesterPassed, Semester: summer,
	})
	_ = m.studentSemester.Create(context.Background(), &model.StudentSemester{
		StudentID: student.ID, SemesterID: winter.ID, SemesterStatus: model.SemesterOngoing, Semester: winter,
	})

	result, err := svc.HalfYears(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("HalfYears 应成功: %v", err)
	}
	if result.UsedHalfYears != 1 {
		t.Errorf("期望已用学期数 1，实际=%d", result.UsedHalfYears)
	}
	if result.RemainingHalfYears != 7 {
		t.Errorf("期望剩余学期数 7，实际=%d", result.RemainingHalfYears)
	}
}

// ── 学期成绩台账 测试 ──

func TestEnrollmentService_CreateStudentSemester_DuplicateRejected(t *testing.T) {
	svc, m := setupTestEnrollmentService()
	student, semester, _ := seedEnrollmentFixture(m, time.Now().Add(24*time.Hour))

	req := &dto.CreateStudentSemesterRequest{StudentID: student.ID, SemesterID: semester.ID}
	if _, err := svc.CreateStudentSemester(context.Background(), req); err != nil {
		t.Fatalf("首次创建应成功: %v", err)
	}
	if _, err := svc.CreateStudentSemester(context.Background(), req); !errors.Is(err, ErrStudentSemesterExists) {
		t.Errorf("期望 ErrStudentSemesterExists，实际: %v", err)
	}
}

// ── 课表 测试 ──

func TestEnrollmentService_StudentWeeklySchedule_OnlyStudyingAttempts(t *testing.T) {
	svc, m := setupTestEnrollmentService()
	student, semester, sc := seedEnrollmentFixture(m, time.Now().Add(24*time.Hour))
	ctx := context.Background()

	_ = m.classSession.Create(ctx, &model.ClassSession{
		SemesterCourseID: sc.ID,
		DayOfWeek:        model.Monday,
		TimeBlock:        model.Block9To11,
		SemesterCourse:   sc,
	})

	// 同学期另一门已修完的课不进课表
	passed := &model.Course{Name: "程序设计基础", Code: "CS101", CourseUnit: 3, UnitType: model.UnitTheory}
	_ = m.course.Create(ctx, passed)
	passedSC := &model.SemesterCourse{
		CourseID: passed.ID, SemesterID: semester.ID, CourseCapacity: 30,
		Course: passed, Semester: semester,
	}
	_ = m.semesterCourse.Create(ctx, passedSC)
	_ = m.classSession.Create(ctx, &model.ClassSession{
		SemesterCourseID: passedSC.ID,
		DayOfWeek:        model.Wednesday,
		TimeBlock:        model.Block13To15,
		SemesterCourse:   passedSC,
	})

	_ = m.studentCourse.Create(ctx, &model.StudentCourse{
		StudentID: student.ID, SemesterCourseID: sc.ID,
		CourseStatus: model.AttemptStudying, SemesterCourse: sc,
	})
	_ = m.studentCourse.Create(ctx, &model.StudentCourse{
		StudentID: student.ID, SemesterCourseID: passedSC.ID,
		CourseStatus: model.AttemptPassed, SemesterCourse: passedSC,
	})

	entries, err := svc.StudentWeeklySchedule(ctx, student.ID, semester.ID)
	if err != nil {
		t.Fatalf("StudentWeeklySchedule 应成功: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("期望仅 1 条在读课表项，实际=%d", len(entries))
	}
	if entries[0].CourseCode != "CS201" {
		t.Errorf("期望课表只含在读课程 CS201，实际: %+v", entries[0])
	}
}

func TestEnrollmentService_ProfessorWeeklySchedule(t *testing.T) {
	svc, m := setupTestEnrollmentService()
	_, semester, sc := seedEnrollmentFixture(m, time.Now().Add(24*time.Hour))

	profID := uint(7)
	sc.ProfessorID = &profID
	_ = m.semesterCourse.Update(context.Background(), sc)

	_ = m.classSession.Create(context.Background(), &model.ClassSession{
		SemesterCourseID: sc.ID,
		DayOfWeek:        model.Monday,
		TimeBlock:        model.Block9To11,
		SemesterCourse:   sc,
	})

	entries, err := svc.ProfessorWeeklySchedule(context.Background(), profID, semester.ID)
	if err != nil {
		t.Fatalf("ProfessorWeeklySchedule 应成功: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("期望 1 条课表项，实际=%d", len(entries))
	}
	if entries[0].CourseCode != "CS201" || entries[0].DayOfWeek != string(model.Monday) {
		t.Errorf("课表项内容不符: %+v", entries[0])
	}
}
