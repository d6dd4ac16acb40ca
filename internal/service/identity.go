package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Mahdi-Salimi/university-management-system/internal/authz"
	"github.com/Mahdi-Salimi/university-management-system/internal/repository"
)

// Caller 一次请求的调用者身份，由认证中间件装配
type Caller struct {
	AccountID    uint
	Username     string
	IsStaff      bool
	Capabilities authz.Set
}

// ResolveTier 调用者对某资源某动作的授权档位
// 管理员（is_staff）视同全量档位
func (c *Caller) ResolveTier(resource authz.Resource, action authz.Action) authz.Tier {
	if c.IsStaff {
		return authz.TierAll
	}
	return authz.Resolve(c.Capabilities, resource, action)
}

// CanCreate 调用者能否创建某资源
func (c *Caller) CanCreate(resource authz.Resource) bool {
	if c.IsStaff {
		return true
	}
	return authz.CanCreate(c.Capabilities, resource)
}

// callerScope 调用者在角色资源上的可见范围：
// 本人角色记录 ID（按资源而异）与所属学院 ID
type callerScope struct {
	OwnRoleID uint  // 调用者在该资源上的本人记录 ID，0 表示没有
	FacultyID *uint // 调用者所属学院，nil 表示无法解析
}

// resolveCallerScope 解析调用者在某角色资源上的范围。
// 学院归属取调用者自己的任一角色记录（学生 / 教授 / 教务助理）。
func resolveCallerScope(ctx context.Context, repo *repository.Repository, caller *Caller, resource authz.Resource) (callerScope, error) {
	var scope callerScope

	if student, err := repo.Student.GetByAccountID(ctx, caller.AccountID); err == nil {
		if resource == authz.ResourceStudent {
			scope.OwnRoleID = student.ID
		}
		scope.FacultyID = student.ResolveFacultyID()
		return scope, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return scope, err
	}

	if professor, err := repo.Professor.GetByAccountID(ctx, caller.AccountID); err == nil {
		if resource == authz.ResourceProfessor {
			scope.OwnRoleID = professor.ID
		}
		scope.FacultyID = professor.ResolveFacultyID()
		return scope, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return scope, err
	}

	if assistant, err := repo.Assistant.GetByAccountID(ctx, caller.AccountID); err == nil {
		if resource == authz.ResourceAssistant {
			scope.OwnRoleID = assistant.ID
		}
		scope.FacultyID = assistant.ResolveFacultyID()
		return scope, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return scope, err
	}

	// 无任何角色记录（纯管理账户）
	return scope, nil
}
