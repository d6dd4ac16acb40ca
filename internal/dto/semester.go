package dto

// ── 学期模块 DTO ──

// CreateSemesterRequest 创建学期请求
// 九个时间戳均为 RFC 3339 字符串，如 "2026-09-01T00:00:00Z"
type CreateSemesterRequest struct {
	AcademicYear             int    `json:"academic_year"              binding:"required,min=1900,max=2200"`
	AcademicSemester         string `json:"academic_semester"          binding:"required,oneof=A W S"`
	StartCourseRegistration  string `json:"start_course_registration"  binding:"required"`
	EndCourseRegistration    string `json:"end_course_registration"    binding:"required"`
	StartClassDate           string `json:"start_class_date"           binding:"required"`
	EndClassDate             string `json:"end_class_date"             binding:"required"`
	StartCourseModification  string `json:"start_course_modification"  binding:"required"`
	EndCourseModification    string `json:"end_course_modification"    binding:"required"`
	EndEmergencyModification string `json:"end_emergency_modification" binding:"required"`
	StartExamDate            string `json:"start_exam_date"            binding:"required"`
	EndSemesterDate          string `json:"end_semester_date"          binding:"required"`
}

// UpdateSemesterRequest 更新学期请求
// 时间窗口约束对更新后的完整学期重新校验
type UpdateSemesterRequest struct {
	AcademicYear             *int    `json:"academic_year"              binding:"omitempty,min=1900,max=2200"`
	AcademicSemester         *string `json:"academic_semester"          binding:"omitempty,oneof=A W S"`
	StartCourseRegistration  *string `json:"start_course_registration"`
	EndCourseRegistration    *string `json:"end_course_registration"`
	StartClassDate           *string `json:"start_class_date"`
	EndClassDate             *string `json:"end_class_date"`
	StartCourseModification  *string `json:"start_course_modification"`
	EndCourseModification    *string `json:"end_course_modification"`
	EndEmergencyModification *string `json:"end_emergency_modification"`
	StartExamDate            *string `json:"start_exam_date"`
	EndSemesterDate          *string `json:"end_semester_date"`
}

// ── 开课 / 周课时 DTO ──

// CreateSemesterCourseRequest 创建开课请求
type CreateSemesterCourseRequest struct {
	CourseID       uint                        `json:"course_id"       binding:"required"`
	SemesterID     uint                        `json:"semester_id"     binding:"required"`
	ExamDateTime   string                      `json:"exam_date_time"  binding:"required"` // RFC 3339
	ExamPlace      string                      `json:"exam_place"      binding:"max=30"`
	CourseCapacity int                         `json:"course_capacity" binding:"required,min=1"`
	ProfessorID    *uint                       `json:"professor_id"`
	ClassSessions  []CreateClassSessionRequest `json:"class_sessions"`
}

// UpdateSemesterCourseRequest 更新开课请求
type UpdateSemesterCourseRequest struct {
	ExamDateTime   *string `json:"exam_date_time"`
	ExamPlace      *string `json:"exam_place"      binding:"omitempty,max=30"`
	CourseCapacity *int    `json:"course_capacity" binding:"omitempty,min=1"`
	ProfessorID    *uint   `json:"professor_id"`
}

// CreateClassSessionRequest 创建周课时请求
type CreateClassSessionRequest struct {
	SemesterCourseID uint   `json:"semester_course_id"`
	DayOfWeek        string `json:"day_of_week" binding:"required,oneof=MON TUE WED THU FRI SAT SUN"`
	TimeBlock        string `json:"time_block"  binding:"required,oneof=7_9 9_11 11_13 13_15 15_17 17_19"`
}

// UpdateClassSessionRequest 更新周课时请求
type UpdateClassSessionRequest struct {
	DayOfWeek *string `json:"day_of_week" binding:"omitempty,oneof=MON TUE WED THU FRI SAT SUN"`
	TimeBlock *string `json:"time_block"  binding:"omitempty,oneof=7_9 9_11 11_13 13_15 15_17 17_19"`
}
