package repository

import (
	"ReplyKing/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnalyticsRepo interface {
	IncrementDaily(ctx context.Context, accountID uint64, date time.Time, sentiment string) error
	IncrementRepliesSent(ctx context.Context, accountID uint64, date time.Time) error
	GetRecentByAccountId(ctx context.Context, accountID uint64, days int) ([]*model.DailyAnalytic, error)
}

type analyticsRepoImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) AnalyticsRepo {
	return &analyticsRepoImpl{db: db}
}

var sentimentColumns = map[string]string{
	"positive": "sentiment_positive",
	"neutral":  "sentiment_neutral",
	"negative": "sentiment_negative",
}

// IncrementDaily 按 (account_id, metric_date) 幂等累加，不存在则插入
func (s *analyticsRepoImpl) IncrementDaily(ctx context.Context, accountID uint64, date time.Time, sentiment string) error {
	column, ok := sentimentColumns[sentiment]
	if !ok {
		column = sentimentColumns["neutral"]
	}

	metric := &model.DailyAnalytic{
		AccountID:        accountID,
		MetricDate:       date,
		CommentsReceived: 1,
	}
	switch column {
	case "sentiment_positive":
		metric.SentimentPositive = 1
	case "sentiment_negative":
		metric.SentimentNegative = 1
	default:
		metric.SentimentNeutral = 1
	}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}, {Name: "metric_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"comments_received": gorm.Expr("comments_received + ?", 1),
			column:              gorm.Expr(column+" + ?", 1),
		}),
	}).Create(metric).Error
}

func (s *analyticsRepoImpl) IncrementRepliesSent(ctx context.Context, accountID uint64, date time.Time) error {
	metric := &model.DailyAnalytic{
		AccountID:   accountID,
		MetricDate:  date,
		RepliesSent: 1,
	}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}, {Name: "metric_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"replies_sent": gorm.Expr("replies_sent + ?", 1),
		}),
	}).Create(metric).Error
}

func (s *analyticsRepoImpl) GetRecentByAccountId(ctx context.Context, accountID uint64, days int) ([]*model.DailyAnalytic, error) {
	metrics := make([]*model.DailyAnalytic, 0)
	result := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("metric_date DESC").
		Limit(days).
		Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}
