package model

import (
	"time"
)

const (
	ReplyStatusPending = "pending"
	ReplyStatusPosted  = "posted"
)

type Reply struct {
	ID        uint64     `gorm:"primaryKey" json:"id"`
	CommentID uint64     `gorm:"not null;index:idx_comment_id" json:"commentId"`
	ReplyText string     `gorm:"type:varchar(2200);not null" json:"replyText"`
	Status    string     `gorm:"type:varchar(16);not null;default:pending;index:idx_status" json:"status"`
	Category  string     `gorm:"type:varchar(32)" json:"category"`
	PostedAt  *time.Time `json:"postedAt"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (Reply) TableName() string {
	return "replies"
}
