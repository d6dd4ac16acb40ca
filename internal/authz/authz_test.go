package authz

import "testing"

func TestResolve_HighestTierWins(t *testing.T) {
	// 同时持有 faculty 和 self 时必须取 faculty，而非并集
	s := NewSet([]string{"view_student_faculty", "view_student_self"})

	if got := Resolve(s, ResourceStudent, ActionView); got != TierFaculty {
		t.Errorf("期望 TierFaculty，实际: %v", got)
	}
}

func TestResolve_AllOverridesLowerTiers(t *testing.T) {
	s := NewSet([]string{"view_student_self", "view_student", "view_student_faculty"})

	if got := Resolve(s, ResourceStudent, ActionView); got != TierAll {
		t.Errorf("期望 TierAll，实际: %v", got)
	}
}

func TestResolve_SelfOnly(t *testing.T) {
	s := NewSet([]string{"view_student_self"})

	if got := Resolve(s, ResourceStudent, ActionView); got != TierSelf {
		t.Errorf("期望 TierSelf，实际: %v", got)
	}
}

func TestResolve_NoCapability(t *testing.T) {
	s := NewSet([]string{"view_professor"})

	if got := Resolve(s, ResourceStudent, ActionView); got != TierNone {
		t.Errorf("期望 TierNone，实际: %v", got)
	}
}

func TestResolve_DeleteHasNoSelfTier(t *testing.T) {
	// delete 没有 self 级（不支持自助销户）
	s := NewSet([]string{"delete_student_self"})

	if got := Resolve(s, ResourceStudent, ActionDelete); got != TierNone {
		t.Errorf("期望 TierNone，实际: %v", got)
	}
	if Known("delete_student_self") {
		t.Error("delete_student_self 不应是合法能力")
	}
}

func TestResolve_ActionsAreIndependent(t *testing.T) {
	// view 的能力不提供 change 作用域
	s := NewSet([]string{"view_student"})

	if got := Resolve(s, ResourceStudent, ActionChange); got != TierNone {
		t.Errorf("期望 TierNone，实际: %v", got)
	}
}

func TestCanCreate(t *testing.T) {
	s := NewSet([]string{"add_student"})

	if !CanCreate(s, ResourceStudent) {
		t.Error("持有 add_student 应允许创建")
	}
	if CanCreate(s, ResourceProfessor) {
		t.Error("未持有 add_professor 不应允许创建")
	}
}

func TestCatalogResourcesHaveNoTiering(t *testing.T) {
	// 目录资源只有 all 一级
	s := NewSet([]string{"view_course_faculty", "view_course_self"})

	if got := Resolve(s, ResourceCourse, ActionView); got != TierNone {
		t.Errorf("期望 TierNone（目录资源无分级能力），实际: %v", got)
	}

	s = NewSet([]string{"view_course"})
	if got := Resolve(s, ResourceCourse, ActionView); got != TierAll {
		t.Errorf("期望 TierAll，实际: %v", got)
	}
}

func TestKnown(t *testing.T) {
	for _, c := range []string{
		"view_student", "view_student_faculty", "view_student_self",
		"change_professor_faculty", "delete_assistant", "add_semester",
	} {
		if !Known(c) {
			t.Errorf("%s 应在能力枚举表内", c)
		}
	}
	if Known("view_student_department") {
		t.Error("view_student_department 不应在能力枚举表内")
	}
}
