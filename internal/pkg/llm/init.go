package llm

import (
	"ReplyKing/internal/api/config"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var llmClient llms.Model

var sentimentClassifyPrompt string
var replyDraftPrompt string
var replyTemplatePrompt string

func InitLLM() error {
	cfg := config.Cfg.LLM

	llm, err := openai.New(
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)

	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return err
	}

	llmClient = llm

	// 从prompt txt文件中读取prompt
	sentimentClassifyPrompt = readPrompt(promptPath(cfg.PromptsPath.SentimentClassify, "./prompts/sentiment-classify.txt"))
	replyDraftPrompt = readPrompt(promptPath(cfg.PromptsPath.ReplyDraft, "./prompts/reply-draft.txt"))
	replyTemplatePrompt = readPrompt(promptPath(cfg.PromptsPath.ReplyTemplate, "./prompts/reply-template.txt"))

	return nil
}

func promptPath(configured string, fallback string) string {
	if configured != "" {
		return configured
	}
	return fallback
}
