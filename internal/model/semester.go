package model

import (
	"fmt"
	"time"
)

// Semester 学期表 — 对应 semesters
// 九个时间戳刻画选课 / 上课 / 改选 / 考试各阶段的窗口
type Semester struct {
	BaseModel
	AcademicYear     int              `gorm:"not null"                          json:"academic_year"`
	AcademicSemester AcademicSemester `gorm:"type:char(1);not null;default:'A'" json:"academic_semester"`

	StartCourseRegistration  time.Time `gorm:"not null" json:"start_course_registration"`
	EndCourseRegistration    time.Time `gorm:"not null" json:"end_course_registration"`
	StartClassDate           time.Time `gorm:"not null" json:"start_class_date"`
	EndClassDate             time.Time `gorm:"not null" json:"end_class_date"`
	StartCourseModification  time.Time `gorm:"not null" json:"start_course_modification"`
	EndCourseModification    time.Time `gorm:"not null" json:"end_course_modification"`
	EndEmergencyModification time.Time `gorm:"not null" json:"end_emergency_modification"`
	StartExamDate            time.Time `gorm:"not null" json:"start_exam_date"`
	EndSemesterDate          time.Time `gorm:"not null" json:"end_semester_date"`
}

// TableName 指定表名
func (Semester) TableName() string { return "semesters" }

// SemesterCode 学期代码：年份后两位 + 季别编码，如 "23A"
func (s *Semester) SemesterCode() string {
	return fmt.Sprintf("%02d%s", s.AcademicYear%100, s.AcademicSemester)
}

// WindowViolation 一条被违反的时间窗口约束（按字段归属）
type WindowViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateWindows 校验学期各阶段时间窗口的全部排序约束。
// 一次返回所有违反项而非遇错即停，便于调用方整体报告。
func (s *Semester) ValidateWindows() []WindowViolation {
	var violations []WindowViolation
	add := func(field, message string) {
		violations = append(violations, WindowViolation{Field: field, Message: message})
	}

	// 选课窗口自身有序
	if s.EndCourseRegistration.Before(s.StartCourseRegistration) {
		add("end_course_registration", "选课结束时间不能早于选课开始时间")
	}
	// 选课窗口 ⊆ 学期总窗口
	if s.EndSemesterDate.Before(s.EndCourseRegistration) {
		add("end_course_registration", "选课窗口必须落在学期总窗口内")
	}
	// 上课窗口有序
	if s.EndClassDate.Before(s.StartClassDate) {
		add("end_class_date", "上课结束时间不能早于上课开始时间")
	}
	// 改选窗口有序
	if s.EndCourseModification.Before(s.StartCourseModification) {
		add("end_course_modification", "改选结束时间不能早于改选开始时间")
	}
	// 紧急改选截止 ∈ [改选结束, 考试开始]
	if s.EndEmergencyModification.Before(s.EndCourseModification) {
		add("end_emergency_modification", "紧急改选截止不能早于改选结束时间")
	}
	if s.StartExamDate.Before(s.EndEmergencyModification) {
		add("end_emergency_modification", "紧急改选截止不能晚于考试开始时间")
	}
	// 学期结束不早于考试开始
	if s.EndSemesterDate.Before(s.StartExamDate) {
		add("end_semester_date", "学期结束时间不能早于考试开始时间")
	}

	return violations
}

// ContainsNow 当前学期判定：选课开始 ≤ now ≤ 学期结束
func (s *Semester) ContainsNow(now time.Time) bool {
	return !now.Before(s.StartCourseRegistration) && !now.After(s.EndSemesterDate)
}

// ModificationClosed 改选窗口是否已截止
func (s *Semester) ModificationClosed(now time.Time) bool {
	return s.EndCourseModification.Before(now)
}
