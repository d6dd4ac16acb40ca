package dto

// ── 通用分页请求 ──

// PaginationRequest 通用分页参数
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage 获取页码（含默认值）
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize 获取每页数量（含默认值）
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// ── 认证模块响应 ──

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"` // Access Token 有效期（秒）
}

// ── 账户模块响应 ──

// AccountResponse 账户信息响应（脱敏，不含口令散列）
type AccountResponse struct {
	ID         uint    `json:"id"`
	Username   string  `json:"username"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	NationalID string  `json:"national_id"`
	Gender     string  `json:"gender"`
	Phone      *string `json:"phone,omitempty"`
	Birthdate  *string `json:"birthdate,omitempty"` // "2006-01-02"
	ImagePath  *string `json:"image_path,omitempty"`
	IsActive   bool    `json:"is_active"`
	IsStaff    bool    `json:"is_staff"`
	CreatedAt  string  `json:"created_at"`
}

// StudentResponse 学生信息响应
type StudentResponse struct {
	ID               uint                   `json:"id"`
	Account          AccountResponse        `json:"account"`
	EntrySemesterID  *uint                  `json:"entry_semester_id,omitempty"`
	AcademicField    *AcademicFieldResponse `json:"academic_field,omitempty"`
	ProfessorID      *uint                  `json:"professor_id,omitempty"`
	MilitaryService  string                 `json:"military_service"`
	Status           string                 `json:"status"`
	AllowedHalfYears int                    `json:"allowed_half_years"`
	GPA              *string                `json:"gpa,omitempty"`
}

// ProfessorResponse 教授信息响应
type ProfessorResponse struct {
	ID           uint                  `json:"id"`
	Account      AccountResponse       `json:"account"`
	FacultyGroup *FacultyGroupResponse `json:"faculty_group,omitempty"`
	Rank         string                `json:"rank"`
	Expertise    *string               `json:"expertise,omitempty"`
}

// AssistantResponse 教务助理信息响应
type AssistantResponse struct {
	ID      uint             `json:"id"`
	Account AccountResponse  `json:"account"`
	Faculty *FacultyResponse `json:"faculty,omitempty"`
}

// ── 组织层级响应 ──

// FacultyResponse 学院信息响应
type FacultyResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// FacultyGroupResponse 学院组信息响应
type FacultyGroupResponse struct {
	ID      uint             `json:"id"`
	Name    string           `json:"name"`
	Faculty *FacultyResponse `json:"faculty,omitempty"`
}

// FieldOfStudyResponse 专业方向信息响应
type FieldOfStudyResponse struct {
	ID           uint                  `json:"id"`
	Name         string                `json:"name"`
	FacultyGroup *FacultyGroupResponse `json:"faculty_group,omitempty"`
}

// AcademicFieldResponse 培养方案信息响应
type AcademicFieldResponse struct {
	ID            uint                  `json:"id"`
	AcademicLevel string                `json:"academic_level"`
	FieldOfStudy  *FieldOfStudyResponse `json:"field_of_study,omitempty"`
	RequiredUnits int                   `json:"required_units"`
}

// ── 课程模块响应 ──

// CourseResponse 课程信息响应
type CourseResponse struct {
	ID              uint             `json:"id"`
	Name            string           `json:"name"`
	Code            string           `json:"code"`
	Description     string           `json:"description"`
	Faculty         *FacultyResponse `json:"faculty,omitempty"`
	CourseUnit      int              `json:"course_unit"`
	UnitType        string           `json:"unit_type"`
	PrerequisiteIDs []uint           `json:"prerequisite_ids"`
	CorequisiteIDs  []uint           `json:"corequisite_ids"`
}

// CourseTypeResponse 课程分类信息响应
type CourseTypeResponse struct {
	ID              uint   `json:"id"`
	CourseType      string `json:"course_type"`
	CourseID        uint   `json:"course_id"`
	AcademicFieldID uint   `json:"academic_field_id"`
}

// ── 学期模块响应 ──

// SemesterResponse 学期信息响应
type SemesterResponse struct {
	ID                       uint   `json:"id"`
	AcademicYear             int    `json:"academic_year"`
	AcademicSemester         string `json:"academic_semester"`
	SemesterCode             string `json:"semester_code"`
	StartCourseRegistration  string `json:"start_course_registration"`
	EndCourseRegistration    string `json:"end_course_registration"`
	StartClassDate           string `json:"start_class_date"`
	EndClassDate             string `json:"end_class_date"`
	StartCourseModification  string `json:"start_course_modification"`
	EndCourseModification    string `json:"end_course_modification"`
	EndEmergencyModification string `json:"end_emergency_modification"`
	StartExamDate            string `json:"start_exam_date"`
	EndSemesterDate          string `json:"end_semester_date"`
}

// ── 开课 / 课时响应 ──

// SemesterCourseResponse 开课信息响应
type SemesterCourseResponse struct {
	ID             uint                   `json:"id"`
	Course         *CourseResponse        `json:"course,omitempty"`
	Semester       *SemesterResponse      `json:"semester,omitempty"`
	ExamDateTime   string                 `json:"exam_date_time"`
	ExamPlace      string                 `json:"exam_place"`
	CourseCapacity int                    `json:"course_capacity"`
	ProfessorID    *uint                  `json:"professor_id,omitempty"`
	ClassSessions  []ClassSessionResponse `json:"class_sessions,omitempty"`
}

// ClassSessionResponse 周课时信息响应
type ClassSessionResponse struct {
	ID               uint   `json:"id"`
	SemesterCourseID uint   `json:"semester_course_id"`
	DayOfWeek        string `json:"day_of_week"`
	TimeBlock        string `json:"time_block"`
}

// ── 选课 / 学期成绩响应 ──

// StudentCourseResponse 选课记录响应
type StudentCourseResponse struct {
	ID             uint                    `json:"id"`
	StudentID      uint                    `json:"student_id"`
	SemesterCourse *SemesterCourseResponse `json:"semester_course,omitempty"`
	CourseStatus   string                  `json:"course_status"`
	StudentGrade   *string                 `json:"student_grade,omitempty"`
}

// StudentSemesterResponse 学期成绩响应
type StudentSemesterResponse struct {
	ID             uint              `json:"id"`
	StudentID      uint              `json:"student_id"`
	Semester       *SemesterResponse `json:"semester,omitempty"`
	GPA            string            `json:"gpa"`
	SemesterStatus string            `json:"semester_status"`
}

// GPAResponse 绩点查询响应
type GPAResponse struct {
	StudentID  uint    `json:"student_id"`
	SemesterID *uint   `json:"semester_id,omitempty"` // 为空时表示总绩点
	GPA        string  `json:"gpa"`
	TotalUnits float64 `json:"total_units"`
}

// HalfYearsResponse 已用 / 剩余学期数响应
type HalfYearsResponse struct {
	StudentID          uint `json:"student_id"`
	AllowedHalfYears   int  `json:"allowed_half_years"`
	UsedHalfYears      int  `json:"used_half_years"`
	RemainingHalfYears int  `json:"remaining_half_years"`
}

// ScheduleEntryResponse 周课表中的一项
type ScheduleEntryResponse struct {
	CourseName   string `json:"course_name"`
	CourseCode   string `json:"course_code"`
	DayOfWeek    string `json:"day_of_week"`
	TimeBlock    string `json:"time_block"`
	SemesterCode string `json:"semester_code"`
}

// ExamEntryResponse 考试安排中的一项
type ExamEntryResponse struct {
	CourseName   string `json:"course_name"`
	CourseCode   string `json:"course_code"`
	ExamDateTime string `json:"exam_date_time"`
	ExamPlace    string `json:"exam_place"`
}
