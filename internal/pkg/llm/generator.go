package llm

import (
	"ReplyKing/internal/api/config"
	mongoPkg "ReplyKing/internal/pkg/mongo"
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Generator 情感分析与回复草稿生成器。
// 所有方法都不向外抛错：上游失败一律降级为兜底结果，保证批处理不中断。
type Generator struct {
	logRepo mongoPkg.GenerationLogRepo
}

// ReplyContext 草稿生成的补充上下文
type ReplyContext struct {
	Username    string `json:"username,omitempty"`
	PostCaption string `json:"post_caption,omitempty"`
}

// NewGenerator logRepo 传 nil 时跳过审计落库
func NewGenerator(logRepo mongoPkg.GenerationLogRepo) *Generator {
	return &Generator{logRepo: logRepo}
}

// AnalyzeSentiment 评论情感分类，失败时返回中性兜底结果
func (s *Generator) AnalyzeSentiment(ctx context.Context, text string) *SentimentResult {
	begin := time.Now()

	raw, err := fetchModel(ctx, sentimentClassifyPrompt, text, 0.3)
	if err != nil {
		log.ErrorContext(ctx, "情感分析-AI大模型请求失败", "err", err)
		s.audit(ctx, mongoPkg.GenerationKindSentiment, text, raw, true, begin)
		return GetNeutralSentiment()
	}

	result, err := GetSentimentResponse(raw)
	if err != nil {
		log.ErrorContext(ctx, "情感分析-AI大模型返回数据解析失败", "err", err, "raw", raw)
		s.audit(ctx, mongoPkg.GenerationKindSentiment, text, raw, true, begin)
		return GetNeutralSentiment()
	}

	s.audit(ctx, mongoPkg.GenerationKindSentiment, text, raw, false, begin)
	return result
}

// GenerateReply 自由生成回复草稿，失败时返回兜底话术
func (s *Generator) GenerateReply(ctx context.Context, text string, sentiment *SentimentResult, replyCtx *ReplyContext) *ReplyResult {
	begin := time.Now()

	userPrompt := buildReplyPrompt(text, sentiment, replyCtx)

	raw, err := fetchModel(ctx, replyDraftPrompt, userPrompt, 0.7)
	if err != nil {
		log.ErrorContext(ctx, "回复草稿-AI大模型请求失败", "err", err)
		s.audit(ctx, mongoPkg.GenerationKindReply, text, raw, true, begin)
		return GetDefaultReply()
	}

	result, err := GetReplyResponse(raw)
	if err != nil {
		log.ErrorContext(ctx, "回复草稿-AI大模型返回数据解析失败", "err", err, "raw", raw)
		s.audit(ctx, mongoPkg.GenerationKindReply, text, raw, true, begin)
		return GetDefaultReply()
	}

	s.audit(ctx, mongoPkg.GenerationKindReply, text, raw, false, begin)
	return result
}

// GenerateReplyFromTemplates 参考卖家模板生成回复。
// 模板列表为空时退化为自由生成；上游失败时原样返回第一条模板。
func (s *Generator) GenerateReplyFromTemplates(ctx context.Context, text string, templates []string, sentiment *SentimentResult) string {
	if len(templates) == 0 {
		return s.GenerateReply(ctx, text, sentiment, nil).Text
	}

	begin := time.Now()

	userPrompt := buildTemplatePrompt(text, templates, sentiment)

	raw, err := fetchModel(ctx, replyTemplatePrompt, userPrompt, 0.8)
	if err != nil || strings.TrimSpace(raw) == "" {
		log.ErrorContext(ctx, "模板回复-AI大模型请求失败", "err", err)
		s.audit(ctx, mongoPkg.GenerationKindTemplateReply, text, raw, true, begin)
		return templates[0]
	}

	s.audit(ctx, mongoPkg.GenerationKindTemplateReply, text, raw, false, begin)
	return strings.TrimSpace(raw)
}

func buildReplyPrompt(text string, sentiment *SentimentResult, replyCtx *ReplyContext) string {
	payload := map[string]interface{}{
		"comment":   text,
		"sentiment": sentiment.Sentiment,
		"category":  sentiment.Category,
	}
	if replyCtx != nil {
		if replyCtx.Username != "" {
			payload["username"] = replyCtx.Username
		}
		if replyCtx.PostCaption != "" {
			payload["post_caption"] = replyCtx.PostCaption
		}
	}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return text
	}
	return string(payloadJson)
}

func buildTemplatePrompt(text string, templates []string, sentiment *SentimentResult) string {
	var builder strings.Builder
	builder.WriteString("模板:\n")
	for i, t := range templates {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, t))
	}
	builder.WriteString("\n情感: " + sentiment.Sentiment)
	if sentiment.Category != "" {
		builder.WriteString("\n分类: " + sentiment.Category)
	}
	builder.WriteString("\n\n评论: " + text)
	return builder.String()
}

func (s *Generator) audit(ctx context.Context, kind string, input string, raw string, fallback bool, begin time.Time) {
	if s.logRepo == nil {
		return
	}

	genLog := &mongoPkg.GenerationLog{
		Kind:        kind,
		Input:       input,
		RawOutput:   raw,
		Fallback:    fallback,
		Model:       config.Cfg.LLM.Model,
		LatencyMs:   time.Since(begin).Milliseconds(),
		RequestedAt: begin,
	}

	if err := s.logRepo.SaveGenerationLog(ctx, genLog); err != nil {
		log.WarnContext(ctx, "save generation log failed", "err", err)
	}
}
