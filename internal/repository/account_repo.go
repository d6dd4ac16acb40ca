package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Mahdi-Salimi/university-management-system/internal/model"
)

// AccountRepository 账户数据访问接口
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	GetByID(ctx context.Context, id uint) (*model.Account, error)
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
	Update(ctx context.Context, account *model.Account) error
	Delete(ctx context.Context, id uint) error

	// Capabilities 账户被授予的能力列表
	Capabilities(ctx context.Context, accountID uint) ([]string, error)
	GrantCapabilities(ctx context.Context, accountID uint, capabilities []string) error
	RevokeCapability(ctx context.Context, accountID uint, capability string) error
}

// accountRepo AccountRepository 的 GORM 实现
type accountRepo struct {
	db *gorm.DB
}

// NewAccountRepo 创建 AccountRepository 实例
func NewAccountRepo(db *gorm.DB) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) Create(ctx context.Context, account *model.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepo) GetByID(ctx context.Context, id uint) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).First(&account, id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) Update(ctx context.Context, account *model.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *accountRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Account{}, id).Error
}

func (r *accountRepo) Capabilities(ctx context.Context, accountID uint) ([]string, error) {
	var capabilities []string
	err := r.db.WithContext(ctx).
		Model(&model.AccountCapability{}).
		Where("account_id = ?", accountID).
		Pluck("capability", &capabilities).Error
	return capabilities, err
}

func (r *accountRepo) GrantCapabilities(ctx context.Context, accountID uint, capabilities []string) error {
	if len(capabilities) == 0 {
		return nil
	}
	rows := make([]model.AccountCapability, 0, len(capabilities))
	for _, c := range capabilities {
		rows = append(rows, model.AccountCapability{AccountID: accountID, Capability: c})
	}
	// 重复授予幂等
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *accountRepo) RevokeCapability(ctx context.Context, accountID uint, capability string) error {
	return r.db.WithContext(ctx).
		Where("account_id = ? AND capability = ?", accountID, capability).
		Delete(&model.AccountCapability{}).Error
}
