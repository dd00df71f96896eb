package model

import (
	"time"
)

// DailyAnalytic 每个账号每天一行，计数只增不减
type DailyAnalytic struct {
	ID                uint64    `gorm:"primaryKey" json:"id"`
	AccountID         uint64    `gorm:"not null;index:idx_account_date,unique" json:"accountId"`
	MetricDate        time.Time `gorm:"not null;index:idx_account_date,unique;column:metric_date" json:"metricDate"`
	CommentsReceived  int       `gorm:"not null;default:0" json:"commentsReceived"`
	RepliesSent       int       `gorm:"not null;default:0" json:"repliesSent"`
	SentimentPositive int       `gorm:"not null;default:0" json:"sentimentPositive"`
	SentimentNeutral  int       `gorm:"not null;default:0" json:"sentimentNeutral"`
	SentimentNegative int       `gorm:"not null;default:0" json:"sentimentNegative"`
	CreatedAt         time.Time `json:"createdAt"`
}

func (DailyAnalytic) TableName() string {
	return "daily_analytics"
}
