package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account 账户表 — 对应 accounts
// 每个账户恰好被一个角色记录（学生 / 教授 / 教务助理）一对一持有；
// 删除角色记录时账户随之删除（由 Service 层显式事务完成）
type Account struct {
	BaseModel
	Username     string     `gorm:"type:varchar(150);not null;uniqueIndex" json:"username"`
	PasswordHash string     `gorm:"type:varchar(255);not null"             json:"-"`
	FirstName    string     `gorm:"type:varchar(150);not null;default:''"  json:"first_name"`
	LastName     string     `gorm:"type:varchar(150);not null;default:''"  json:"last_name"`
	Email        string     `gorm:"type:varchar(255);not null;default:''"  json:"email"`
	NationalID   string     `gorm:"type:char(10);not null;index"           json:"national_id"`
	Gender       Gender     `gorm:"type:char(1);not null;default:'F'"      json:"gender"`
	Phone        *string    `gorm:"type:varchar(11)"                       json:"phone,omitempty"`
	Birthdate    *time.Time `gorm:"type:date"                              json:"birthdate,omitempty"`
	ImagePath    *string    `gorm:"type:varchar(255)"                      json:"image_path,omitempty"`
	IsActive     bool       `gorm:"not null;default:true"                  json:"is_active"`
	IsStaff      bool       `gorm:"not null;default:false"                 json:"is_staff"`
}

// TableName 指定表名
func (Account) TableName() string { return "accounts" }

// FullName 显示名：姓名齐全时用姓名，否则退回用户名
func (a *Account) FullName() string {
	if a.FirstName != "" && a.LastName != "" {
		return a.FirstName + " " + a.LastName
	}
	return a.Username
}

// AccountCapability 账户能力授权表 — 对应 account_capabilities
// capability 取值见 internal/authz 的封闭枚举
type AccountCapability struct {
	BaseModel
	AccountID  uint   `gorm:"not null;uniqueIndex:uniq_account_capability" json:"account_id"`
	Capability string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_account_capability" json:"capability"`
}

// TableName 指定表名
func (AccountCapability) TableName() string { return "account_capabilities" }

// Student 学生角色表 — 对应 students
type Student struct {
	BaseModel
	AccountID        uint                `gorm:"not null;uniqueIndex"              json:"account_id"`
	EntrySemesterID  *uint               `json:"entry_semester_id,omitempty"`
	AcademicFieldID  *uint               `json:"academic_field_id,omitempty"`
	ProfessorID      *uint               `json:"professor_id,omitempty"`
	MilitaryService  MilitaryService     `gorm:"type:char(1);not null;default:'A'" json:"military_service"`
	Status           StudentStatus       `gorm:"type:char(1);not null;default:'S'" json:"status"`
	AllowedHalfYears int                 `gorm:"not null;default:8"                json:"allowed_half_years"`
	GPA              decimal.NullDecimal `gorm:"type:numeric(4,2)"                 json:"gpa"`

	// 关联
	Account       *Account       `gorm:"foreignKey:AccountID"       json:"account,omitempty"`
	EntrySemester *Semester      `gorm:"foreignKey:EntrySemesterID" json:"entry_semester,omitempty"`
	AcademicField *AcademicField `gorm:"foreignKey:AcademicFieldID" json:"academic_field,omitempty"`
	Professor     *Professor     `gorm:"foreignKey:ProfessorID"     json:"professor,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }

// ResolveFacultyID 学生所属学院：培养方案 → 专业方向 → 学院组 → 学院
func (s *Student) ResolveFacultyID() *uint {
	if s == nil {
		return nil
	}
	return s.AcademicField.ResolveFacultyID()
}

// Professor 教授角色表 — 对应 professors
type Professor struct {
	BaseModel
	AccountID      uint          `gorm:"not null;uniqueIndex"              json:"account_id"`
	FacultyGroupID *uint         `json:"faculty_group_id,omitempty"`
	Rank           ProfessorRank `gorm:"type:char(1);not null;default:'C'" json:"rank"`
	Expertise      *string       `gorm:"type:varchar(255)"                 json:"expertise,omitempty"`

	// 关联
	Account      *Account      `gorm:"foreignKey:AccountID"      json:"account,omitempty"`
	FacultyGroup *FacultyGroup `gorm:"foreignKey:FacultyGroupID" json:"faculty_group,omitempty"`
}

// TableName 指定表名
func (Professor) TableName() string { return "professors" }

// ResolveFacultyID 教授所属学院：学院组 → 学院
func (p *Professor) ResolveFacultyID() *uint {
	if p == nil || p.FacultyGroup == nil {
		return nil
	}
	return p.FacultyGroup.FacultyID
}

// Assistant 教务助理角色表 — 对应 assistants
// 与学院一对一：每个学院至多一名教务助理
type Assistant struct {
	BaseModel
	AccountID uint  `gorm:"not null;uniqueIndex" json:"account_id"`
	FacultyID *uint `gorm:"uniqueIndex"          json:"faculty_id,omitempty"`

	// 关联
	Account *Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	Faculty *Faculty `gorm:"foreignKey:FacultyID" json:"faculty,omitempty"`
}

// TableName 指定表名
func (Assistant) TableName() string { return "assistants" }

// ResolveFacultyID 教务助理所属学院（与 Student/Professor 同一多态约定）
func (a *Assistant) ResolveFacultyID() *uint {
	if a == nil {
		return nil
	}
	return a.FacultyID
}
