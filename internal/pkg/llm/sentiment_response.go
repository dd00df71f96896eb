package llm

import (
	"ReplyKing/internal/pkg/consts"
	"strings"

	"github.com/goccy/go-json"
)

var setSentiment = map[string]bool{
	consts.SentimentPositive: true,
	consts.SentimentNeutral:  true,
	consts.SentimentNegative: true,
}

var setCategory = map[string]bool{
	"提问":   true,
	"夸赞":   true,
	"投诉":   true,
	"购买咨询": true,
	"日常交流": true,
	"其他":   true,
}

// SentimentResult 情感分析结果
type SentimentResult struct {
	Sentiment string
	Score     float64
	Category  string
}

// ReplyResult 回复草稿结果
type ReplyResult struct {
	Text     string
	Category string
}

type sentimentReturn struct {
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
	Category  string  `json:"category"`
}

type replyReturn struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// DefaultReplyText 草稿生成失败时的兜底回复
const DefaultReplyText = "感谢您的留言！我们会尽快回复您 😊"

func cleanModelOutput(s string) string {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// GetSentimentResponse 严格解析模型输出，非法字段逐项回退到安全值
func GetSentimentResponse(s string) (*SentimentResult, error) {
	var temp sentimentReturn
	if err := json.Unmarshal([]byte(cleanModelOutput(s)), &temp); err != nil {
		return nil, err
	}

	res := &SentimentResult{
		Sentiment: temp.Sentiment,
		Score:     temp.Score,
		Category:  temp.Category,
	}

	// 校验 sentiment
	if !setSentiment[res.Sentiment] {
		res.Sentiment = consts.SentimentNeutral
		res.Score = 0.5
	}

	// 校验 score 区间
	if res.Score < 0 {
		res.Score = 0
	}
	if res.Score > 1 {
		res.Score = 1
	}

	// 校验 category 是否命中白名单，未命中直接置空
	if !setCategory[res.Category] {
		res.Category = ""
	}

	return res, nil
}

// GetReplyResponse 解析草稿输出
func GetReplyResponse(s string) (*ReplyResult, error) {
	var temp replyReturn
	if err := json.Unmarshal([]byte(cleanModelOutput(s)), &temp); err != nil {
		return nil, err
	}

	res := &ReplyResult{
		Text:     temp.Text,
		Category: temp.Category,
	}

	if res.Text == "" {
		res.Text = DefaultReplyText
	}
	if !setCategory[res.Category] {
		res.Category = consts.CategoryOther
	}

	return res, nil
}

// GetNeutralSentiment 上游失败时的兜底分类结果
func GetNeutralSentiment() *SentimentResult {
	return &SentimentResult{
		Sentiment: consts.SentimentNeutral,
		Score:     0.5,
		Category:  "",
	}
}

// GetDefaultReply 上游失败时的兜底草稿
func GetDefaultReply() *ReplyResult {
	return &ReplyResult{
		Text:     DefaultReplyText,
		Category: consts.CategoryOther,
	}
}
