// Package authz 实现分级授权模型：每个（资源, 动作）对应一组能力授权，
// 能力带有作用域层级 none < self < faculty < all。
// 解析按特权从高到低取第一个命中的层级，绝不合并多个层级的可见集。
//
// 能力到资源的映射是编译期的封闭枚举表，不做任何运行时字符串拼接。
package authz

// Action 资源动作（对应 HTTP 动词族）
type Action string

const (
	ActionView   Action = "view"   // GET list/retrieve
	ActionAdd    Action = "add"    // POST
	ActionChange Action = "change" // PUT/PATCH
	ActionDelete Action = "delete" // DELETE
)

// Tier 作用域层级，数值越大特权越高
type Tier int

const (
	TierNone    Tier = iota // 无权限
	TierSelf                // 仅本人记录
	TierFaculty             // 本学院内记录
	TierAll                 // 全部记录
)

// Resource 受控资源
type Resource string

const (
	ResourceStudent         Resource = "student"
	ResourceProfessor       Resource = "professor"
	ResourceAssistant       Resource = "assistant"
	ResourceFaculty         Resource = "faculty"
	ResourceFacultyGroup    Resource = "facultygroup"
	ResourceFieldOfStudy    Resource = "fieldofstudy"
	ResourceAcademicField   Resource = "academicfield"
	ResourceCourse          Resource = "course"
	ResourceCourseType      Resource = "coursetype"
	ResourceSemester        Resource = "semester"
	ResourceSemesterCourse  Resource = "semestercourse"
	ResourceClassSession    Resource = "classsession"
	ResourceStudentCourse   Resource = "studentcourse"
	ResourceStudentSemester Resource = "studentsemester"
)

// grant 一条能力授权：持有 capability 即获得 tier 作用域
type grant struct {
	tier       Tier
	capability string
}

// tieredGrants 角色资源的分级授权（self/faculty/all 三级；delete 无 self 级）
func tieredGrants(name string) map[Action][]grant {
	return map[Action][]grant{
		ActionView: {
			{TierAll, "view_" + name},
			{TierFaculty, "view_" + name + "_faculty"},
			{TierSelf, "view_" + name + "_self"},
		},
		ActionChange: {
			{TierAll, "change_" + name},
			{TierFaculty, "change_" + name + "_faculty"},
			{TierSelf, "change_" + name + "_self"},
		},
		ActionDelete: {
			{TierAll, "delete_" + name},
			{TierFaculty, "delete_" + name + "_faculty"},
		},
		ActionAdd: {
			{TierAll, "add_" + name},
		},
	}
}

// flatGrants 目录类资源的授权（仅 all 一级）
func flatGrants(name string) map[Action][]grant {
	return map[Action][]grant{
		ActionView:   {{TierAll, "view_" + name}},
		ActionChange: {{TierAll, "change_" + name}},
		ActionDelete: {{TierAll, "delete_" + name}},
		ActionAdd:    {{TierAll, "add_" + name}},
	}
}

// table 封闭的能力枚举表。包初始化时构建一次，此后只读。
var table = map[Resource]map[Action][]grant{
	// 角色资源：self / faculty / all 分级
	ResourceStudent:   tieredGrants("student"),
	ResourceProfessor: tieredGrants("professor"),
	ResourceAssistant: tieredGrants("assistant"),

	// 目录与台账资源：仅 all 一级
	ResourceFaculty:         flatGrants("faculty"),
	ResourceFacultyGroup:    flatGrants("facultygroup"),
	ResourceFieldOfStudy:    flatGrants("fieldofstudy"),
	ResourceAcademicField:   flatGrants("academicfield"),
	ResourceCourse:          flatGrants("course"),
	ResourceCourseType:      flatGrants("coursetype"),
	ResourceSemester:        flatGrants("semester"),
	ResourceSemesterCourse:  flatGrants("semestercourse"),
	ResourceClassSession:    flatGrants("classsession"),
	ResourceStudentCourse:   flatGrants("studentcourse"),
	ResourceStudentSemester: flatGrants("studentsemester"),
}

// known 全部合法能力名，用于授权写入时校验
var known = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, actions := range table {
		for _, grants := range actions {
			for _, g := range grants {
				m[g.capability] = struct{}{}
			}
		}
	}
	return m
}()

// Set 一个账户持有的能力集合
type Set map[string]struct{}

// NewSet 从能力名列表构建集合
func NewSet(capabilities []string) Set {
	s := make(Set, len(capabilities))
	for _, c := range capabilities {
		s[c] = struct{}{}
	}
	return s
}

// Has 是否持有指定能力
func (s Set) Has(capability string) bool {
	_, ok := s[capability]
	return ok
}

// Resolve 解析账户对（资源, 动作）的有效作用域。
// 授权表按特权降序排列，返回第一个命中的层级；不做并集。
func Resolve(s Set, resource Resource, action Action) Tier {
	actions, ok := table[resource]
	if !ok {
		return TierNone
	}
	for _, g := range actions[action] {
		if s.Has(g.capability) {
			return g.tier
		}
	}
	return TierNone
}

// CanCreate POST 动作单独判定（无分级）
func CanCreate(s Set, resource Resource) bool {
	return Resolve(s, resource, ActionAdd) == TierAll
}

// Known capability 是否在封闭枚举表内
func Known(capability string) bool {
	_, ok := known[capability]
	return ok
}
