package service

import (
	"ReplyKing/internal/pkg/instagram"
	"ReplyKing/internal/pkg/llm"
	"context"
)

// CommentSource 外部评论来源（Instagram Graph API）
type CommentSource interface {
	GetUserProfile(ctx context.Context, accessToken string) (*instagram.Profile, error)
	GetAllRecentComments(ctx context.Context, accessToken string) ([]instagram.Comment, error)
}

// ReplyGenerator 情感分析与草稿生成（AI大模型）。
// 实现方内部兜底，方法不返回错误。
type ReplyGenerator interface {
	AnalyzeSentiment(ctx context.Context, text string) *llm.SentimentResult
	GenerateReply(ctx context.Context, text string, sentiment *llm.SentimentResult, replyCtx *llm.ReplyContext) *llm.ReplyResult
	GenerateReplyFromTemplates(ctx context.Context, text string, templates []string, sentiment *llm.SentimentResult) string
}
