package service

import (
	"ReplyKing/internal/api/dto"
	"ReplyKing/internal/model"
	"ReplyKing/internal/repository"
	"context"
	"strings"
)

type TemplateService interface {
	CreateTemplate(ctx context.Context, accountID uint64, createDTO *dto.CreateTemplateDTO) (uint64, error)
	GetTemplates(ctx context.Context, accountID uint64) ([]*model.Template, error)
}

type templateServiceImpl struct {
	templateRepo repository.TemplateRepo
	accountRepo  repository.AccountRepo
}

func NewTemplateService(templateRepo repository.TemplateRepo, accountRepo repository.AccountRepo) TemplateService {
	return &templateServiceImpl{
		templateRepo: templateRepo,
		accountRepo:  accountRepo,
	}
}

func (s *templateServiceImpl) CreateTemplate(ctx context.Context, accountID uint64, createDTO *dto.CreateTemplateDTO) (uint64, error) {
	account, err := s.accountRepo.GetAccountById(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if account == nil {
		return 0, ErrAccountNotFound
	}

	if strings.TrimSpace(createDTO.Template) == "" || strings.TrimSpace(createDTO.Category) == "" {
		return 0, ErrTemplateInvalid
	}

	template := &model.Template{
		AccountID: accountID,
		Category:  createDTO.Category,
		Template:  createDTO.Template,
		IsActive:  true,
	}
	if err = s.templateRepo.CreateTemplate(ctx, template); err != nil {
		return 0, err
	}
	return template.ID, nil
}

func (s *templateServiceImpl) GetTemplates(ctx context.Context, accountID uint64) ([]*model.Template, error) {
	return s.templateRepo.GetTemplatesByAccountId(ctx, accountID)
}
