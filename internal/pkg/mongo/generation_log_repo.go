package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GenerationLogRepo interface {
	SaveGenerationLog(ctx context.Context, genLog *GenerationLog) error
	GetRecentByKind(ctx context.Context, kind string, limit int) ([]*GenerationLog, error)
}

type generationLogRepoImpl struct {
	col *mongo.Collection
}

func NewGenerationLogRepo(db *mongo.Database) GenerationLogRepo {
	return &generationLogRepoImpl{
		col: db.Collection("generation_logs"),
	}
}

// SaveGenerationLog 将一次模型调用的明细存入 MongoDB
func (s *generationLogRepoImpl) SaveGenerationLog(ctx context.Context, genLog *GenerationLog) error {
	_, err := s.col.InsertOne(ctx, genLog)
	return err
}

// GetRecentByKind 按调用类型取最近若干条记录
func (s *generationLogRepoImpl) GetRecentByKind(ctx context.Context, kind string, limit int) ([]*GenerationLog, error) {
	filter := bson.M{"kind": kind}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "requested_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var logs []*GenerationLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}

	return logs, nil
}
