package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Mahdi-Salimi/university-management-system/internal/model"
	"github.com/Mahdi-Salimi/university-management-system/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoAttempts   = errors.New("该学生暂无选课记录")
	ErrExportNoSessions   = errors.New("该学期暂无周课时")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 成绩单导出为 Excel (.xlsx)，课表导出为 iCalendar (.ics)
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - 范围裁决（本人 / 学院 / 全量）由 Handler 先经 AccountService 完成
type ExportService interface {
	// TranscriptXLSX 导出学生成绩单为 Excel
	TranscriptXLSX(ctx context.Context, studentID uint) (*bytes.Buffer, string, error)
	// ScheduleICS 导出学生某学期周课表为 iCalendar
	ScheduleICS(ctx context.Context, studentID, semesterID uint) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// TranscriptXLSX — 导出成绩单为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet，按学期代码分节
//   - 列：学期 | 课程代码 | 课程名称 | 学分 | 状态 | 成绩
//   - 每个学期后跟一行学期绩点，末尾一行总绩点

func (s *exportService) TranscriptXLSX(ctx context.Context, studentID uint) (*bytes.Buffer, string, error) {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, "", err
	}

	attempts, err := s.repo.StudentCourse.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询选课记录失败", zap.Error(err))
		return nil, "", err
	}
	if len(attempts) == 0 {
		return nil, "", ErrExportNoAttempts
	}

	// 按学期代码分组
	bySemester := make(map[string][]model.StudentCourse)
	for i := range attempts {
		sc := attempts[i].SemesterCourse
		code := "未知学期"
		if sc != nil && sc.Semester != nil {
			code = sc.Semester.SemesterCode()
		}
		bySemester[code] = append(bySemester[code], attempts[i])
	}
	codes := make([]string, 0, len(bySemester))
	for code := range bySemester {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "成绩单"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "F", 10)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	name := ""
	if student.Account != nil {
		name = student.Account.FullName()
	}
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — 成绩单", name))
	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	headers := []string{"学期", "课程代码", "课程名称", "学分", "状态", "成绩"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, fmt.Sprintf("%s2", col), h)
	}

	row := 3
	for _, code := range codes {
		group := bySemester[code]
		for i := range group {
			a := &group[i]
			courseName, courseCode, units := "", "", 0
			if a.SemesterCourse != nil && a.SemesterCourse.Course != nil {
				courseName = a.SemesterCourse.Course.Name
				courseCode = a.SemesterCourse.Course.Code
				units = a.SemesterCourse.Course.CourseUnit
			}
			grade := "-"
			if a.StudentGrade.Valid {
				grade = a.StudentGrade.Decimal.StringFixed(2)
			}

			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), code)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), courseCode)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), courseName)
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), units)
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), string(a.CourseStatus))
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), grade)
			row++
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s 学期绩点", code))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), model.CalculateGPA(group).StringFixed(2))
		row++
	}
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "总绩点")
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), model.CalculateGPA(attempts).StringFixed(2))

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("transcript_%d.xlsx", studentID)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ScheduleICS — 导出周课表为 iCalendar
// ═══════════════════════════════════════════════════════════
//
// 每个周课时生成一个每周重复的 VEVENT：
//   - DTSTART 为开学后该星期的首次上课，时长两小时
//   - RRULE 以学期上课结束日为 UNTIL

func (s *exportService) ScheduleICS(ctx context.Context, studentID, semesterID uint) (*bytes.Buffer, string, error) {
	semester, err := s.repo.Semester.GetByID(ctx, semesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrSemesterNotFound
		}
		return nil, "", err
	}

	sessions, err := s.repo.ClassSession.ListForStudent(ctx, studentID, semesterID)
	if err != nil {
		s.logger.Error("查询周课时失败", zap.Error(err))
		return nil, "", err
	}
	if len(sessions) == 0 {
		return nil, "", ErrExportNoSessions
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for i := range sessions {
		session := &sessions[i]
		sc := session.SemesterCourse
		if sc == nil || sc.Course == nil {
			continue
		}

		start := firstOccurrence(semester.StartClassDate, session.DayOfWeek, session.TimeBlock.StartHour())
		uid := fmt.Sprintf("session-%d-%d@university-management-system", session.ID, studentID)

		event := cal.AddEvent(uid)
		event.SetDtStampTime(time.Now())
		event.SetStartAt(start)
		event.SetEndAt(start.Add(2 * time.Hour))
		event.SetSummary(fmt.Sprintf("%s (%s)", sc.Course.Name, sc.Course.Code))
		event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;UNTIL=%s", semester.EndClassDate.UTC().Format("20060102T150405Z")))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("schedule_%d_%s.ics", studentID, semester.SemesterCode())
	return buf, filename, nil
}

// firstOccurrence 开学日起某星期的首次上课时刻
func firstOccurrence(classStart time.Time, day model.Weekday, startHour int) time.Time {
	target := weekdayOf(day)
	date := time.Date(classStart.Year(), classStart.Month(), classStart.Day(), startHour, 0, 0, 0, classStart.Location())
	for date.Weekday() != target {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

func weekdayOf(day model.Weekday) time.Weekday {
	switch day {
	case model.Monday:
		return time.Monday
	case model.Tuesday:
		return time.Tuesday
	case model.Wednesday:
		return time.Wednesday
	case model.Thursday:
		return time.Thursday
	case model.Friday:
		return time.Friday
	case model.Saturday:
		return time.Saturday
	default:
		return time.Sunday
	}
}
