package model

import "github.com/shopspring/decimal"

// StudentCourse 选课记录表 — 对应 student_courses
// 一名学生对一次开课的尝试：状态 + 可空成绩（0-20，两位小数）
// (student_id, semester_course_id) 唯一
type StudentCourse struct {
	BaseModel
	StudentID        uint                `gorm:"not null;uniqueIndex:uniq_student_attempt" json:"student_id"`
	SemesterCourseID uint                `gorm:"not null;uniqueIndex:uniq_student_attempt" json:"semester_course_id"`
	CourseStatus     AttemptStatus       `gorm:"type:char(1);not null;default:'N'"         json:"course_status"`
	StudentGrade     decimal.NullDecimal `gorm:"type:numeric(4,2)"                         json:"student_grade"`

	// 关联
	Student        *Student        `gorm:"foreignKey:StudentID"        json:"student,omitempty"`
	SemesterCourse *SemesterCourse `gorm:"foreignKey:SemesterCourseID" json:"semester_course,omitempty"`
}

// TableName 指定表名
func (StudentCourse) TableName() string { return "student_courses" }

// StudentSemester 学期成绩表 — 对应 student_semesters
// 一名学生在一个学期的聚合结果：绩点 + 学期状态
type StudentSemester struct {
	BaseModel
	StudentID      uint                  `gorm:"not null;uniqueIndex:uniq_student_semester" json:"student_id"`
	SemesterID     uint                  `gorm:"not null;uniqueIndex:uniq_student_semester" json:"semester_id"`
	GPA            decimal.Decimal       `gorm:"type:numeric(4,2);not null;default:0"       json:"gpa"`
	SemesterStatus StudentSemesterStatus `gorm:"type:char(3);not null;default:'ONG'"        json:"semester_status"`

	// 关联
	Student  *Student  `gorm:"foreignKey:StudentID"  json:"student,omitempty"`
	Semester *Semester `gorm:"foreignKey:SemesterID" json:"semester,omitempty"`
}

// TableName 指定表名
func (StudentSemester) TableName() string { return "student_semesters" }

// CalculateGPA 计算绩点：Σ(成绩 × 学分) / Σ(学分)，仅统计通过 / 未通过的记录。
// 学分合计为 0 时返回 0（显式除零保护），结果保留两位小数。
// 纯函数：与记录顺序无关。
func CalculateGPA(attempts []StudentCourse) decimal.Decimal {
	totalValue := decimal.Zero
	totalUnits := decimal.Zero

	for i := range attempts {
		a := &attempts[i]
		if !a.CourseStatus.CountsForGPA() {
			continue
		}
		if !a.StudentGrade.Valid || a.SemesterCourse == nil || a.SemesterCourse.Course == nil {
			continue
		}
		units := decimal.NewFromInt(int64(a.SemesterCourse.Course.CourseUnit))
		totalValue = totalValue.Add(a.StudentGrade.Decimal.Mul(units))
		totalUnits = totalUnits.Add(units)
	}

	if totalUnits.IsZero() {
		return decimal.Zero
	}
	return totalValue.Div(totalUnits).Round(2)
}
