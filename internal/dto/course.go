package dto

// ── 课程模块 DTO ──

// CreateCourseRequest 创建课程请求
// 先修 / 共修以课程 ID 列表给出，成环时整体拒绝
type CreateCourseRequest struct {
	Name            string `json:"name"             binding:"required,min=1,max=50"`
	Code            string `json:"code"             binding:"required,min=1,max=20"`
	Description     string `json:"description"`
	FacultyID       *uint  `json:"faculty_id"`
	CourseUnit      int    `json:"course_unit"      binding:"required,min=1,max=10"`
	UnitType        string `json:"unit_type"        binding:"required,oneof=T P"`
	PrerequisiteIDs []uint `json:"prerequisite_ids"`
	CorequisiteIDs  []uint `json:"corequisite_ids"`
}

// UpdateCourseRequest 更新课程请求
type UpdateCourseRequest struct {
	Name            *string `json:"name"             binding:"omitempty,min=1,max=50"`
	Code            *string `json:"code"             binding:"omitempty,min=1,max=20"`
	Description     *string `json:"description"`
	FacultyID       *uint   `json:"faculty_id"`
	CourseUnit      *int    `json:"course_unit"      binding:"omitempty,min=1,max=10"`
	UnitType        *string `json:"unit_type"        binding:"omitempty,oneof=T P"`
	PrerequisiteIDs *[]uint `json:"prerequisite_ids"`
	CorequisiteIDs  *[]uint `json:"corequisite_ids"`
}

// ReplaceCourseDependenciesRequest 整体替换课程先修或共修列表的请求
type ReplaceCourseDependenciesRequest struct {
	IDs []uint `json:"ids"`
}

// CreateCourseTypeRequest 创建课程分类请求
type CreateCourseTypeRequest struct {
	CourseType      string `json:"course_type"       binding:"required,oneof=G S O B"`
	CourseID        uint   `json:"course_id"         binding:"required"`
	AcademicFieldID uint   `json:"academic_field_id" binding:"required"`
}

// UpdateCourseTypeRequest 更新课程分类请求
type UpdateCourseTypeRequest struct {
	CourseType      *string `json:"course_type" binding:"omitempty,oneof=G S O B"`
	CourseID        *uint   `json:"course_id"`
	AcademicFieldID *uint   `json:"academic_field_id"`
}
