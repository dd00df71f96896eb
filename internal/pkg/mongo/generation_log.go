package mongo

import (
	"time"
)

const (
	GenerationKindSentiment     = "sentiment"
	GenerationKindReply         = "reply"
	GenerationKindTemplateReply = "template_reply"
)

// GenerationLog AI调用审计明细，保留原始输出便于排查解析问题
type GenerationLog struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Kind        string    `bson:"kind" json:"kind"`                    // sentiment / reply / template_reply
	Input       string    `bson:"input" json:"input"`                  // 评论原文
	RawOutput   string    `bson:"raw_output" json:"rawOutput"`         // 模型原始返回
	Fallback    bool      `bson:"fallback" json:"fallback"`            // 是否走了兜底结果
	Model       string    `bson:"model" json:"model"`
	LatencyMs   int64     `bson:"latency_ms" json:"latencyMs"`
	RequestedAt time.Time `bson:"requested_at" json:"requestedAt"`
}
