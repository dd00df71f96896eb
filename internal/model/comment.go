package model

import (
	"time"
)

type Comment struct {
	ID                uint64    `gorm:"primaryKey" json:"id"`
	AccountID         uint64    `gorm:"not null;index:idx_account_id" json:"accountId"`
	ExternalCommentID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_external_comment_id" json:"externalCommentId"`
	PostID            string    `gorm:"type:varchar(64);not null" json:"postId"`
	Username          string    `gorm:"type:varchar(128);not null" json:"username"`
	Text              string    `gorm:"type:varchar(2200);not null" json:"text"`
	Sentiment         string    `gorm:"type:varchar(16)" json:"sentiment"`
	SentimentScore    float64   `gorm:"not null;default:0" json:"sentimentScore"`
	CommentedAt       time.Time `gorm:"not null" json:"commentedAt"`
	IsReplied         bool      `gorm:"type:tinyint(1);not null;default:0;index:idx_is_replied" json:"isReplied"`
	CreatedAt         time.Time `json:"createdAt"`

	Reply *Reply `gorm:"foreignKey:CommentID" json:"reply,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
