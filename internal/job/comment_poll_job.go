package job

import (
	"ReplyKing/internal/pkg/consts"
	"ReplyKing/internal/pkg/logger"
	"ReplyKing/internal/pkg/redis"
	"ReplyKing/internal/service"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type CommentPollJob struct {
	accountSvc service.AccountService
	commentSvc service.CommentService
}

func NewCommentPollJob(accountSvc service.AccountService, commentSvc service.CommentService) *CommentPollJob {
	return &CommentPollJob{
		accountSvc: accountSvc,
		commentSvc: commentSvc,
	}
}

// Run 轮询所有激活账号，逐个拉取新评论并生成草稿。
// 每个账号加分布式锁，避免与手动触发或其他实例并发处理同一账号。
func (s *CommentPollJob) Run() {
	traceID := "job-poll-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	accounts, err := s.accountSvc.GetActiveAccounts(ctx)
	if err != nil {
		log.ErrorContext(ctx, "get active accounts error", "err", err)
		return
	}

	log.InfoContext(ctx, "CommentPollJob processing", "account_count", len(accounts))

	totalNew := 0
	for _, account := range accounts {
		lockKey := consts.AccountProcessLock + strconv.FormatUint(account.ID, 10)
		locked, err := redis.TryLock(ctx, lockKey, traceID, 5*time.Minute, 1)
		if err != nil {
			log.ErrorContext(ctx, "acquire account lock error", "account_id", account.ID, "err", err)
			continue
		}
		if !locked {
			log.WarnContext(ctx, "account is being processed, skip", "account_id", account.ID)
			continue
		}

		newCount, err := s.commentSvc.ProcessNewComments(ctx, account.ID)
		redis.UnLock(ctx, lockKey, traceID)
		if err != nil {
			log.ErrorContext(ctx, "process account comments error", "account_id", account.ID, "err", err)
			continue
		}
		totalNew += newCount
	}

	log.InfoContext(ctx, "CommentPollJob finished", "account_count", len(accounts), "new_comments", totalNew)
}
