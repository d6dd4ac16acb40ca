package dto

// ── 组织层级 DTO ──

// CreateFacultyRequest 创建学院请求
type CreateFacultyRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// UpdateFacultyRequest 更新学院请求
type UpdateFacultyRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=100"`
}

// CreateFacultyGroupRequest 创建学院组请求
type CreateFacultyGroupRequest struct {
	Name      string `json:"name"       binding:"required,min=2,max=100"`
	FacultyID *uint  `json:"faculty_id"`
}

// UpdateFacultyGroupRequest 更新学院组请求
type UpdateFacultyGroupRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=100"`
	FacultyID *uint   `json:"faculty_id"`
}

// CreateFieldOfStudyRequest 创建专业方向请求
type CreateFieldOfStudyRequest struct {
	Name           string `json:"name"             binding:"required,min=2,max=100"`
	FacultyGroupID *uint  `json:"faculty_group_id"`
}

// UpdateFieldOfStudyRequest 更新专业方向请求
type UpdateFieldOfStudyRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=2,max=100"`
	FacultyGroupID *uint   `json:"faculty_group_id"`
}

// CreateAcademicFieldRequest 创建培养方案请求
type CreateAcademicFieldRequest struct {
	AcademicLevel  string `json:"academic_level"    binding:"required,oneof=B M D"`
	FieldOfStudyID uint   `json:"field_of_study_id" binding:"required"`
	RequiredUnits  int    `json:"required_units"    binding:"required,min=1"`
}

// UpdateAcademicFieldRequest 更新培养方案请求
type UpdateAcademicFieldRequest struct {
	AcademicLevel  *string `json:"academic_level"    binding:"omitempty,oneof=B M D"`
	FieldOfStudyID *uint   `json:"field_of_study_id"`
	RequiredUnits  *int    `json:"required_units"    binding:"omitempty,min=1"`
}
