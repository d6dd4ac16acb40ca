package model

import "time"

// SemesterCourse 开课表 — 对应 semester_courses
// 一门课程在某个学期的具体开设：考试安排、容量、授课教授
type SemesterCourse struct {
	BaseModel
	CourseID       uint      `gorm:"not null"                                json:"course_id"`
	SemesterID     uint      `gorm:"not null"                                json:"semester_id"`
	ExamDateTime   time.Time `gorm:"not null"                                json:"exam_date_time"`
	ExamPlace      string    `gorm:"type:varchar(30);not null;default:''"    json:"exam_place"`
	CourseCapacity int       `gorm:"not null"                                json:"course_capacity"`
	ProfessorID    *uint     `json:"professor_id,omitempty"`

	// 关联
	Course    *Course    `gorm:"foreignKey:CourseID"    json:"course,omitempty"`
	Semester  *Semester  `gorm:"foreignKey:SemesterID"  json:"semester,omitempty"`
	Professor *Professor `gorm:"foreignKey:ProfessorID" json:"professor,omitempty"`
}

// TableName 指定表名
func (SemesterCourse) TableName() string { return "semester_courses" }

// ClassSession 周课时表 — 对应 class_sessions
// 一次每周重复的上课安排：星期 × 时间块
type ClassSession struct {
	BaseModel
	SemesterCourseID uint      `gorm:"not null"                   json:"semester_course_id"`
	DayOfWeek        Weekday   `gorm:"type:varchar(3);not null"   json:"day_of_week"`
	TimeBlock        TimeBlock `gorm:"type:varchar(5);not null"   json:"time_block"`

	// 关联
	SemesterCourse *SemesterCourse `gorm:"foreignKey:SemesterCourseID" json:"semester_course,omitempty"`
}

// TableName 指定表名
func (ClassSession) TableName() string { return "class_sessions" }
