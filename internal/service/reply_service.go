package service

import (
	"ReplyKing/internal/model"
	"ReplyKing/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type ReplyService interface {
	GetPendingReplies(ctx context.Context, accountID uint64) ([]*repository.PendingReply, error)
	ApproveReply(ctx context.Context, replyID uint64) error
}

type replyServiceImpl struct {
	replyRepo     repository.ReplyRepo
	commentRepo   repository.CommentRepo
	analyticsRepo repository.AnalyticsRepo
}

func NewReplyService(
	replyRepo repository.ReplyRepo,
	commentRepo repository.CommentRepo,
	analyticsRepo repository.AnalyticsRepo,
) ReplyService {
	return &replyServiceImpl{
		replyRepo:     replyRepo,
		commentRepo:   commentRepo,
		analyticsRepo: analyticsRepo,
	}
}

func (s *replyServiceImpl) GetPendingReplies(ctx context.Context, accountID uint64) ([]*repository.PendingReply, error) {
	return s.replyRepo.GetPendingByAccountId(ctx, accountID)
}

// ApproveReply 审核通过：回复置为已发布、评论置为已回复，并累加当日回复数。
// 重复审核返回明确错误而不是静默成功。
func (s *replyServiceImpl) ApproveReply(ctx context.Context, replyID uint64) error {
	reply, err := s.replyRepo.GetReplyById(ctx, replyID)
	if err != nil {
		return err
	}
	if reply == nil {
		return ErrReplyNotFound
	}
	if reply.Status == model.ReplyStatusPosted {
		return ErrReplyAlreadyPosted
	}

	comment, err := s.commentRepo.GetCommentById(ctx, reply.CommentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	now := time.Now()
	if err = s.replyRepo.MarkReplyPosted(ctx, reply.ID, comment.ID, now); err != nil {
		return err
	}

	if err = s.analyticsRepo.IncrementRepliesSent(ctx, comment.AccountID, getMidnight(now)); err != nil {
		log.ErrorContext(ctx, "increment replies sent failed", "account_id", comment.AccountID, "err", err)
	}

	return nil
}
