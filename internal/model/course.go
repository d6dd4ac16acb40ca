package model

// Course 课程表 — 对应 courses
// 先修 / 共修为有向、非对称关系：A 的先修是 B，不意味着 B 的先修是 A
type Course struct {
	BaseModel
	Name        string   `gorm:"type:varchar(50);not null"              json:"name"`
	Code        string   `gorm:"type:varchar(20);not null;uniqueIndex"  json:"code"`
	Description string   `gorm:"type:text;not null;default:''"          json:"description"`
	FacultyID   *uint    `json:"faculty_id,omitempty"`
	CourseUnit  int      `gorm:"not null"                               json:"course_unit"`
	UnitType    UnitType `gorm:"type:char(1);not null;default:'T'"      json:"unit_type"`

	// 关联
	Faculty       *Faculty `gorm:"foreignKey:FacultyID" json:"faculty,omitempty"`
	Prerequisites []Course `gorm:"many2many:course_prerequisites;joinForeignKey:CourseID;joinReferences:PrerequisiteID" json:"prerequisites,omitempty"`
	Corequisites  []Course `gorm:"many2many:course_corequisites;joinForeignKey:CourseID;joinReferences:CorequisiteID"   json:"corequisites,omitempty"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }

// CourseType 课程分类表 — 对应 course_types
// 同一门课程在不同培养方案下可以有不同分类
type CourseType struct {
	BaseModel
	CourseType      CourseClassification `gorm:"type:char(1);not null;default:'G'" json:"course_type"`
	CourseID        uint                 `gorm:"not null"                          json:"course_id"`
	AcademicFieldID uint                 `gorm:"not null"                          json:"academic_field_id"`

	// 关联
	Course        *Course        `gorm:"foreignKey:CourseID"        json:"course,omitempty"`
	AcademicField *AcademicField `gorm:"foreignKey:AcademicFieldID" json:"academic_field,omitempty"`
}

// TableName 指定表名
func (CourseType) TableName() string { return "course_types" }

// HasCycle 判断在课程依赖图 edges（courseID → 依赖的课程 ID 列表）中
// 新增一条 from → to 的边后是否形成环。自环视为环。
func HasCycle(edges map[uint][]uint, from, to uint) bool {
	if from == to {
		return true
	}
	// 从 to 出发 DFS，能回到 from 即成环
	visited := make(map[uint]bool)
	stack := []uint{to}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == from {
			return true
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true
		stack = append(stack, edges[cur]...)
	}
	return false
}
