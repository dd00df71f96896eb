package repository

import (
	"ReplyKing/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentRepo interface {
	GetCommentById(ctx context.Context, id uint64) (*model.Comment, error)
	GetCommentByExternalId(ctx context.Context, externalCommentID string) (*model.Comment, error)
	GetCommentsByAccountId(ctx context.Context, accountID uint64, limit int) ([]*model.Comment, error)
	CreateCommentWithReply(ctx context.Context, comment *model.Comment, reply *model.Reply) error
	UpdateCommentIsReplied(ctx context.Context, id uint64, isReplied bool) error
}

type commentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &commentRepoImpl{db: db}
}

func (s *commentRepoImpl) GetCommentById(ctx context.Context, id uint64) (*model.Comment, error) {
	comment := &model.Comment{}
	result := s.db.WithContext(ctx).First(comment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return comment, nil
}

func (s *commentRepoImpl) GetCommentByExternalId(ctx context.Context, externalCommentID string) (*model.Comment, error) {
	comment := &model.Comment{}
	result := s.db.WithContext(ctx).
		Where("external_comment_id = ?", externalCommentID).
		First(comment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return comment, nil
}

func (s *commentRepoImpl) GetCommentsByAccountId(ctx context.Context, accountID uint64, limit int) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	result := s.db.WithContext(ctx).
		Preload("Reply").
		Where("account_id = ?", accountID).
		Order("commented_at DESC").
		Limit(limit).
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}

// CreateCommentWithReply 评论与回复草稿在同一事务内落库
func (s *commentRepoImpl) CreateCommentWithReply(ctx context.Context, comment *model.Comment, reply *model.Reply) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(comment); result.Error != nil {
			return result.Error
		}

		reply.CommentID = comment.ID
		if result := tx.Create(reply); result.Error != nil {
			return result.Error
		}

		return nil
	})
}

func (s *commentRepoImpl) UpdateCommentIsReplied(ctx context.Context, id uint64, isReplied bool) error {
	result := s.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("is_replied", isReplied)
	return result.Error
}
