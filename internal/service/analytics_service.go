package service

import (
	"ReplyKing/internal/model"
	"ReplyKing/internal/pkg/consts"
	"ReplyKing/internal/pkg/redis"
	"ReplyKing/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type AnalyticsService interface {
	GetAnalytics(ctx context.Context, accountID uint64, days int) ([]*model.DailyAnalytic, error)
}

type analyticsServiceImpl struct {
	analyticsRepo repository.AnalyticsRepo
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepo) AnalyticsService {
	return &analyticsServiceImpl{
		analyticsRepo: analyticsRepo,
	}
}

// GetAnalytics 读取最近 days 天的统计，带 Redis 列表缓存，缓存在午夜前5分钟过期
func (s *analyticsServiceImpl) GetAnalytics(ctx context.Context, accountID uint64, days int) ([]*model.DailyAnalytic, error) {
	if days <= 0 {
		days = consts.DefaultAnalyticsDays
	}

	key := consts.AccountAnalyticsKey + strconv.Itoa(days) + "days:" + strconv.FormatUint(accountID, 10)

	list, err := redis.GetList(ctx, key)
	if err != nil {
		return nil, err
	}

	if len(list) != 0 {
		metrics := make([]*model.DailyAnalytic, 0, len(list))
		for _, v := range list {
			var metric *model.DailyAnalytic
			if err := json.Unmarshal([]byte(v), &metric); err != nil {
				return nil, err
			}
			metrics = append(metrics, metric)
		}
		return metrics, nil
	}

	metrics, err := s.analyticsRepo.GetRecentByAccountId(ctx, accountID, days)
	if err != nil {
		return nil, err
	}

	s.cacheMetrics(ctx, key, metrics)
	return metrics, nil
}

func (s *analyticsServiceImpl) cacheMetrics(ctx context.Context, key string, metrics []*model.DailyAnalytic) {
	if len(metrics) == 0 {
		return
	}

	metricJsons := make([]string, 0, len(metrics))
	for _, v := range metrics {
		metricJson, err := json.Marshal(v)
		if err != nil {
			return
		}
		metricJsons = append(metricJsons, string(metricJson))
	}

	expiration := cacheExpiration(time.Now(), metrics[0].MetricDate)
	if expiration <= 0 {
		return
	}

	_ = redis.SetListWithExpiration(ctx, key, metricJsons, expiration)
}

// cacheExpiration 历史数据缓存到次日午夜前5分钟；最新一行是当天时只缓存5分钟，
// 当天仍在累加的计数不会被长缓存挡住
func cacheExpiration(now time.Time, latest time.Time) time.Duration {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !latest.Before(midnight) {
		return time.Minute * 5
	}
	return midnight.AddDate(0, 0, 1).Sub(now) - time.Minute*5
}
