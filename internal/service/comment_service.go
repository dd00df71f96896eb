package service

import (
	"ReplyKing/internal/api/dto"
	"ReplyKing/internal/model"
	"ReplyKing/internal/pkg/consts"
	"ReplyKing/internal/pkg/instagram"
	"ReplyKing/internal/pkg/llm"
	"ReplyKing/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

type CommentService interface {
	ProcessNewComments(ctx context.Context, accountID uint64) (int, error)
	GetComments(ctx context.Context, accountID uint64, limit int) ([]*dto.CommentDTO, error)
}

type commentServiceImpl struct {
	accountRepo   repository.AccountRepo
	commentRepo   repository.CommentRepo
	templateRepo  repository.TemplateRepo
	analyticsRepo repository.AnalyticsRepo
	source        CommentSource
	generator     ReplyGenerator
}

func NewCommentService(
	accountRepo repository.AccountRepo,
	commentRepo repository.CommentRepo,
	templateRepo repository.TemplateRepo,
	analyticsRepo repository.AnalyticsRepo,
	source CommentSource,
	generator ReplyGenerator,
) CommentService {
	return &commentServiceImpl{
		accountRepo:   accountRepo,
		commentRepo:   commentRepo,
		templateRepo:  templateRepo,
		analyticsRepo: analyticsRepo,
		source:        source,
		generator:     generator,
	}
}

// ProcessNewComments 拉取账号最近评论，去重后逐条分类、生成草稿、落库并累加当日统计。
// 返回本次新入库的评论数。去重以 external_comment_id 的存在性检查为准，
// 单条评论的草稿生成失败只降级，不会中断整批处理。
func (s *commentServiceImpl) ProcessNewComments(ctx context.Context, accountID uint64) (int, error) {
	account, err := s.accountRepo.GetAccountById(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if account == nil || !account.IsActive {
		return 0, ErrAccountNotFound
	}

	fetched, err := s.source.GetAllRecentComments(ctx, account.AccessToken)
	if err != nil {
		return 0, err
	}

	newCount := 0
	for _, raw := range fetched {
		existing, err := s.commentRepo.GetCommentByExternalId(ctx, raw.ID)
		if err != nil {
			return newCount, err
		}
		if existing != nil {
			continue
		}

		sentiment := s.generator.AnalyzeSentiment(ctx, raw.Text)

		comment := &model.Comment{
			AccountID:         accountID,
			ExternalCommentID: raw.ID,
			PostID:            raw.PostID,
			Username:          raw.Username,
			Text:              raw.Text,
			Sentiment:         sentiment.Sentiment,
			SentimentScore:    sentiment.Score,
			CommentedAt:       raw.CommentedAt,
		}

		reply := s.buildReplyDraft(ctx, accountID, raw, sentiment)

		if err = s.commentRepo.CreateCommentWithReply(ctx, comment, reply); err != nil {
			return newCount, err
		}
		newCount++

		if err = s.analyticsRepo.IncrementDaily(ctx, accountID, getMidnight(time.Now()), sentiment.Sentiment); err != nil {
			log.ErrorContext(ctx, "increment daily analytics failed", "account_id", accountID, "err", err)
		}
	}

	return newCount, nil
}

// buildReplyDraft 有匹配模板时走模板引导生成，否则自由生成，永不失败
func (s *commentServiceImpl) buildReplyDraft(ctx context.Context, accountID uint64, raw instagram.Comment, sentiment *llm.SentimentResult) *model.Reply {
	category := sentiment.Category
	if category == "" {
		category = consts.CategoryDefault
	}

	templates, err := s.templateRepo.GetActiveTemplates(ctx, accountID, category, consts.TemplateDraftLimit)
	if err != nil {
		log.WarnContext(ctx, "load templates failed", "account_id", accountID, "err", err)
		templates = nil
	}

	var replyText, replyCategory string
	if len(templates) > 0 {
		bodies := make([]string, 0, len(templates))
		for _, t := range templates {
			bodies = append(bodies, t.Template)
		}
		replyText = s.generator.GenerateReplyFromTemplates(ctx, raw.Text, bodies, sentiment)
		replyCategory = category
	} else {
		result := s.generator.GenerateReply(ctx, raw.Text, sentiment, &llm.ReplyContext{Username: raw.Username})
		replyText = result.Text
		replyCategory = result.Category
	}

	return &model.Reply{
		ReplyText: replyText,
		Status:    model.ReplyStatusPending,
		Category:  replyCategory,
	}
}

func (s *commentServiceImpl) GetComments(ctx context.Context, accountID uint64, limit int) ([]*dto.CommentDTO, error) {
	if limit <= 0 {
		limit = consts.DefaultCommentListLimit
	}

	comments, err := s.commentRepo.GetCommentsByAccountId(ctx, accountID, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		item := &dto.CommentDTO{}
		if err := copier.Copy(item, comment); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func getMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
