package dto

// ── 账户 / 角色 DTO ──
// 角色创建请求内嵌完整账户负载，由 Service 层在同一事务内落库。
// 初始口令为国民身份号，不在请求中出现。

// AccountPayload 嵌套在角色创建请求中的账户负载
type AccountPayload struct {
	Username   string  `json:"username"    binding:"required,min=3,max=150"`
	FirstName  string  `json:"first_name"  binding:"max=150"`
	LastName   string  `json:"last_name"   binding:"max=150"`
	Email      string  `json:"email"       binding:"omitempty,email"`
	NationalID string  `json:"national_id" binding:"required,len=10"`
	Gender     string  `json:"gender"      binding:"required,oneof=M F"`
	Phone      *string `json:"phone"`
	Birthdate  *string `json:"birthdate"` // "2006-01-02"
}

// AccountPatch 嵌套在角色更新请求中的账户负载（全部可选）
type AccountPatch struct {
	Username   *string `json:"username"    binding:"omitempty,min=3,max=150"`
	FirstName  *string `json:"first_name"  binding:"omitempty,max=150"`
	LastName   *string `json:"last_name"   binding:"omitempty,max=150"`
	Email      *string `json:"email"       binding:"omitempty,email"`
	NationalID *string `json:"national_id" binding:"omitempty,len=10"`
	Gender     *string `json:"gender"      binding:"omitempty,oneof=M F"`
	Phone      *string `json:"phone"`
	Birthdate  *string `json:"birthdate"`
	IsActive   *bool   `json:"is_active"`
}

// CreateStudentRequest 创建学生请求
type CreateStudentRequest struct {
	Account         AccountPayload `json:"account"           binding:"required"`
	EntrySemesterID *uint          `json:"entry_semester_id"`
	AcademicFieldID *uint          `json:"academic_field_id"`
	ProfessorID     *uint          `json:"professor_id"`
	MilitaryService string         `json:"military_service"  binding:"omitempty,oneof=A N E"`
	Status          string         `json:"status"            binding:"omitempty,oneof=S D W G"`
}

// UpdateStudentRequest 更新学生请求
type UpdateStudentRequest struct {
	Account          *AccountPatch `json:"account"`
	EntrySemesterID  *uint         `json:"entry_semester_id"`
	AcademicFieldID  *uint         `json:"academic_field_id"`
	ProfessorID      *uint         `json:"professor_id"`
	MilitaryService  *string       `json:"military_service"   binding:"omitempty,oneof=A N E"`
	Status           *string       `json:"status"             binding:"omitempty,oneof=S D W G"`
	AllowedHalfYears *int          `json:"allowed_half_years" binding:"omitempty,min=1,max=20"`
}

// CreateProfessorRequest 创建教授请求
type CreateProfessorRequest struct {
	Account        AccountPayload `json:"account"          binding:"required"`
	FacultyGroupID *uint          `json:"faculty_group_id"`
	Rank           string         `json:"rank"             binding:"omitempty,oneof=A B C"`
	Expertise      *string        `json:"expertise"        binding:"omitempty,max=255"`
}

// UpdateProfessorRequest 更新教授请求
type UpdateProfessorRequest struct {
	Account        *AccountPatch `json:"account"`
	FacultyGroupID *uint         `json:"faculty_group_id"`
	Rank           *string       `json:"rank"      binding:"omitempty,oneof=A B C"`
	Expertise      *string       `json:"expertise" binding:"omitempty,max=255"`
}

// CreateAssistantRequest 创建教务助理请求
type CreateAssistantRequest struct {
	Account   AccountPayload `json:"account"    binding:"required"`
	FacultyID *uint          `json:"faculty_id"`
}

// UpdateAssistantRequest 更新教务助理请求
type UpdateAssistantRequest struct {
	Account   *AccountPatch `json:"account"`
	FacultyID *uint         `json:"faculty_id"`
}

// GrantCapabilitiesRequest 授予账户能力请求
type GrantCapabilitiesRequest struct {
	Capabilities []string `json:"capabilities" binding:"required,min=1"`
}
