package dto

import "time"

// CommentDTO 评论列表项，附带回复草稿
type CommentDTO struct {
	ID                uint64    `json:"id"`
	ExternalCommentID string    `json:"external_comment_id"`
	PostID            string    `json:"post_id"`
	Username          string    `json:"username"`
	Text              string    `json:"text"`
	Sentiment         string    `json:"sentiment"`
	SentimentScore    float64   `json:"sentiment_score"`
	CommentedAt       time.Time `json:"commented_at"`
	IsReplied         bool      `json:"is_replied"`

	Reply *ReplyDTO `json:"reply,omitempty"`
}

// ReplyDTO 回复草稿
type ReplyDTO struct {
	ID        uint64     `json:"id"`
	ReplyText string     `json:"reply_text"`
	Status    string     `json:"status"`
	Category  string     `json:"category"`
	PostedAt  *time.Time `json:"posted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ProcessResultDTO 手动处理结果
type ProcessResultDTO struct {
	NewComments int `json:"new_comments"`
}
