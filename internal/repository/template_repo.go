package repository

import (
	"ReplyKing/internal/model"
	"context"

	"gorm.io/gorm"
)

type TemplateRepo interface {
	GetActiveTemplates(ctx context.Context, accountID uint64, category string, limit int) ([]*model.Template, error)
	GetTemplatesByAccountId(ctx context.Context, accountID uint64) ([]*model.Template, error)
	CreateTemplate(ctx context.Context, template *model.Template) error
}

type templateRepoImpl struct {
	db *gorm.DB
}

func NewTemplateRepo(db *gorm.DB) TemplateRepo {
	return &templateRepoImpl{db: db}
}

// GetActiveTemplates 取指定分类下使用次数最少的若干条启用模板
func (s *templateRepoImpl) GetActiveTemplates(ctx context.Context, accountID uint64, category string, limit int) ([]*model.Template, error) {
	templates := make([]*model.Template, 0)
	result := s.db.WithContext(ctx).
		Where("account_id = ? AND category = ? AND is_active = ?", accountID, category, true).
		Order("usage_count ASC").
		Limit(limit).
		Find(&templates)
	if result.Error != nil {
		return nil, result.Error
	}
	return templates, nil
}

func (s *templateRepoImpl) GetTemplatesByAccountId(ctx context.Context, accountID uint64) ([]*model.Template, error) {
	templates := make([]*model.Template, 0)
	result := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("category, created_at DESC").
		Find(&templates)
	if result.Error != nil {
		return nil, result.Error
	}
	return templates, nil
}

func (s *templateRepoImpl) CreateTemplate(ctx context.Context, template *model.Template) error {
	return s.db.WithContext(ctx).Create(template).Error
}
