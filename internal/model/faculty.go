package model

// Faculty 学院表 — 对应 faculties，组织层级的根
type Faculty struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
}

// TableName 指定表名
func (Faculty) TableName() string { return "faculties" }

// FacultyGroup 学院组表 — 对应 faculty_groups
type FacultyGroup struct {
	BaseModel
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	FacultyID *uint  `json:"faculty_id,omitempty"`

	// 关联
	Faculty *Faculty `gorm:"foreignKey:FacultyID" json:"faculty,omitempty"`
}

// TableName 指定表名
func (FacultyGroup) TableName() string { return "faculty_groups" }

// FieldOfStudy 专业方向表 — 对应 fields_of_study
type FieldOfStudy struct {
	BaseModel
	Name           string `gorm:"type:varchar(100);not null" json:"name"`
	FacultyGroupID *uint  `json:"faculty_group_id,omitempty"`

	// 关联
	FacultyGroup *FacultyGroup `gorm:"foreignKey:FacultyGroupID" json:"faculty_group,omitempty"`
}

// TableName 指定表名
func (FieldOfStudy) TableName() string { return "fields_of_study" }

// AcademicField 培养方案表 — 对应 academic_fields
// 学位层级 × 专业方向，即一个具体的学位项目
type AcademicField struct {
	BaseModel
	AcademicLevel  AcademicLevel `gorm:"type:char(1);not null;default:'B'" json:"academic_level"`
	FieldOfStudyID uint          `gorm:"not null"                          json:"field_of_study_id"`
	RequiredUnits  int           `gorm:"not null"                          json:"required_units"`

	// 关联
	FieldOfStudy *FieldOfStudy `gorm:"foreignKey:FieldOfStudyID" json:"field_of_study,omitempty"`
}

// TableName 指定表名
func (AcademicField) TableName() string { return "academic_fields" }

// ResolveFacultyID 沿 培养方案 → 专业方向 → 学院组 → 学院 链解析所属学院
// 链上任一环缺失（未预加载或外键为空）时返回 nil
func (f *AcademicField) ResolveFacultyID() *uint {
	if f == nil || f.FieldOfStudy == nil || f.FieldOfStudy.FacultyGroup == nil {
		return nil
	}
	return f.FieldOfStudy.FacultyGroup.FacultyID
}
