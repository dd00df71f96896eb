package repository

import (
	"ReplyKing/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// PendingReply 待审核回复及其所属评论的关联信息
type PendingReply struct {
	model.Reply
	Username          string `json:"username"`
	CommentText       string `gorm:"column:comment_text" json:"commentText"`
	ExternalCommentID string `gorm:"column:external_comment_id" json:"externalCommentId"`
}

type ReplyRepo interface {
	GetReplyById(ctx context.Context, id uint64) (*model.Reply, error)
	GetPendingByAccountId(ctx context.Context, accountID uint64) ([]*PendingReply, error)
	MarkReplyPosted(ctx context.Context, replyID uint64, commentID uint64, postedAt time.Time) error
}

type replyRepoImpl struct {
	db *gorm.DB
}

func NewReplyRepo(db *gorm.DB) ReplyRepo {
	return &replyRepoImpl{db: db}
}

func (s *replyRepoImpl) GetReplyById(ctx context.Context, id uint64) (*model.Reply, error) {
	reply := &model.Reply{}
	result := s.db.WithContext(ctx).First(reply, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return reply, nil
}

func (s *replyRepoImpl) GetPendingByAccountId(ctx context.Context, accountID uint64) ([]*PendingReply, error) {
	replies := make([]*PendingReply, 0)
	result := s.db.WithContext(ctx).
		Table("replies").
		Select("replies.*, comments.username, comments.text AS comment_text, comments.external_comment_id").
		Joins("JOIN comments ON replies.comment_id = comments.id").
		Where("comments.account_id = ? AND replies.status = ?", accountID, model.ReplyStatusPending).
		Order("replies.created_at ASC").
		Scan(&replies)
	if result.Error != nil {
		return nil, result.Error
	}
	return replies, nil
}

// MarkReplyPosted 回复状态与评论已回复标记在同一事务内更新
func (s *replyRepoImpl) MarkReplyPosted(ctx context.Context, replyID uint64, commentID uint64, postedAt time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Reply{}).
			Where("id = ?", replyID).
			Updates(map[string]interface{}{
				"status":    model.ReplyStatusPosted,
				"posted_at": postedAt,
			})
		if result.Error != nil {
			return result.Error
		}

		result = tx.Model(&model.Comment{}).
			Where("id = ?", commentID).
			Update("is_replied", true)
		return result.Error
	})
}
