package dto

// ── 选课 / 学期成绩 DTO ──

// CreateStudentCourseRequest 创建选课记录请求
type CreateStudentCourseRequest struct {
	StudentID        uint    `json:"student_id"         binding:"required"`
	SemesterCourseID uint    `json:"semester_course_id" binding:"required"`
	CourseStatus     string  `json:"course_status"      binding:"omitempty,oneof=N S P F"`
	StudentGrade     *string `json:"student_grade"` // "0.00" ~ "20.00"
}

// UpdateStudentCourseRequest 更新选课记录请求（录入成绩 / 变更状态）
type UpdateStudentCourseRequest struct {
	CourseStatus *string `json:"course_status" binding:"omitempty,oneof=N S P F"`
	StudentGrade *string `json:"student_grade"`
}

// CreateStudentSemesterRequest 创建学期成绩请求
type CreateStudentSemesterRequest struct {
	StudentID      uint   `json:"student_id"      binding:"required"`
	SemesterID     uint   `json:"semester_id"     binding:"required"`
	SemesterStatus string `json:"semester_status" binding:"omitempty,oneof=ONG PAS FAI WWS WNO UNK"`
}

// UpdateStudentSemesterRequest 更新学期成绩请求
type UpdateStudentSemesterRequest struct {
	SemesterStatus *string `json:"semester_status" binding:"omitempty,oneof=ONG PAS FAI WWS WNO UNK"`
}
