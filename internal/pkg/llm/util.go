package llm

import (
	"ReplyKing/internal/api/config"
	"context"
	"errors"
	log "log/slog"
	"os"

	"github.com/tmc/langchaingo/llms"
)

func readPrompt(file string) string {
	data, err := os.ReadFile(file)
	if err != nil {
		log.Error("读取prompt文件失败", "err", err)
		return ""
	}
	return string(data)
}

func fetchModel(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (string, error) {
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer TextSem.Release(1)

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	resp, err := llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.Model),
		llms.WithTemperature(temp),
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("AI大模型返回数据为空")
	}
	return resp.Choices[0].Content, nil
}
