package repository

import (
	"ReplyKing/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type AccountRepo interface {
	GetAccountById(ctx context.Context, id uint64) (*model.Account, error)
	GetAccountByExternalUserId(ctx context.Context, externalUserID string) (*model.Account, error)
	GetAllAccounts(ctx context.Context) ([]*model.Account, error)
	GetActiveAccounts(ctx context.Context) ([]*model.Account, error)
	CreateAccount(ctx context.Context, account *model.Account) error
	UpdateAccount(ctx context.Context, account *model.Account) error
}

type accountRepoImpl struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepo {
	return &accountRepoImpl{db: db}
}

func (s *accountRepoImpl) GetAccountById(ctx context.Context, id uint64) (*model.Account, error) {
	account := &model.Account{}
	result := s.db.WithContext(ctx).First(account, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return account, nil
}

func (s *accountRepoImpl) GetAccountByExternalUserId(ctx context.Context, externalUserID string) (*model.Account, error) {
	account := &model.Account{}
	result := s.db.WithContext(ctx).
		Where("external_user_id = ?", externalUserID).
		First(account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return account, nil
}

func (s *accountRepoImpl) GetAllAccounts(ctx context.Context) ([]*model.Account, error) {
	accounts := make([]*model.Account, 0)
	result := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}

func (s *accountRepoImpl) GetActiveAccounts(ctx context.Context) ([]*model.Account, error) {
	accounts := make([]*model.Account, 0)
	result := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}

func (s *accountRepoImpl) CreateAccount(ctx context.Context, account *model.Account) error {
	return s.db.WithContext(ctx).Create(account).Error
}

func (s *accountRepoImpl) UpdateAccount(ctx context.Context, account *model.Account) error {
	result := s.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]interface{}{
			"access_token":     account.AccessToken,
			"username":         account.Username,
			"token_expires_at": account.TokenExpiresAt,
			"is_active":        true,
		})
	return result.Error
}
