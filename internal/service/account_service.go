package service

import (
	"ReplyKing/internal/api/dto"
	"ReplyKing/internal/model"
	"ReplyKing/internal/repository"
	"context"
	log "log/slog"
)

type AccountService interface {
	ConnectAccount(ctx context.Context, connectDTO *dto.ConnectAccountDTO) (*dto.ConnectAccountResultDTO, error)
	GetAccounts(ctx context.Context) ([]*model.Account, error)
	GetActiveAccounts(ctx context.Context) ([]*model.Account, error)
}

type accountServiceImpl struct {
	accountRepo repository.AccountRepo
	source      CommentSource
}

func NewAccountService(accountRepo repository.AccountRepo, source CommentSource) AccountService {
	return &accountServiceImpl{
		accountRepo: accountRepo,
		source:      source,
	}
}

// ConnectAccount 按外部用户ID upsert：已存在则刷新令牌并重新激活，否则新建
func (s *accountServiceImpl) ConnectAccount(ctx context.Context, connectDTO *dto.ConnectAccountDTO) (*dto.ConnectAccountResultDTO, error) {
	if connectDTO.AccessToken == "" {
		return nil, ErrAccessTokenRequired
	}

	profile, err := s.source.GetUserProfile(ctx, connectDTO.AccessToken)
	if err != nil {
		log.ErrorContext(ctx, "fetch instagram profile failed", "err", err)
		return nil, err
	}

	existing, err := s.accountRepo.GetAccountByExternalUserId(ctx, connectDTO.UserID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.AccessToken = connectDTO.AccessToken
		existing.Username = profile.Username
		existing.TokenExpiresAt = connectDTO.TokenExpiresAt
		if err = s.accountRepo.UpdateAccount(ctx, existing); err != nil {
			return nil, err
		}
		return &dto.ConnectAccountResultDTO{
			AccountID: existing.ID,
			Created:   false,
		}, nil
	}

	account := &model.Account{
		ExternalUserID: connectDTO.UserID,
		Username:       profile.Username,
		AccessToken:    connectDTO.AccessToken,
		TokenExpiresAt: connectDTO.TokenExpiresAt,
		IsActive:       true,
	}
	if err = s.accountRepo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	return &dto.ConnectAccountResultDTO{
		AccountID: account.ID,
		Created:   true,
	}, nil
}

func (s *accountServiceImpl) GetAccounts(ctx context.Context) ([]*model.Account, error) {
	return s.accountRepo.GetAllAccounts(ctx)
}

func (s *accountServiceImpl) GetActiveAccounts(ctx context.Context) ([]*model.Account, error) {
	return s.accountRepo.GetActiveAccounts(ctx)
}
