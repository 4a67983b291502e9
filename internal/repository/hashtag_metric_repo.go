package repository

import (
	"SocialPulse/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HashtagMetricRepo interface {
	SaveOrUpdateMetric(ctx context.Context, metric *model.HashtagMetric) error
	ReplaceAll(ctx context.Context, metrics []*model.HashtagMetric) error
	// ListTopByTrendScore 按趋势分降序返回前 limit 个标签快照
	ListTopByTrendScore(ctx context.Context, limit int) ([]*model.HashtagMetric, error)
}

type hashtagMetricRepoImpl struct {
	db *gorm.DB
}

func NewHashtagMetricRepository(db *gorm.DB) HashtagMetricRepo {
	return &hashtagMetricRepoImpl{db: db}
}

func (r *hashtagMetricRepoImpl) SaveOrUpdateMetric(ctx context.Context, metric *model.HashtagMetric) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "hashtag_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"usage_count_7d",
			"unique_posts_7d",
			"popularity_score",
			"trend_score",
			"computed_at",
		}),
	}).Create(metric).Error
}

func (r *hashtagMetricRepoImpl) ReplaceAll(ctx context.Context, metrics []*model.HashtagMetric) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.HashtagMetric{}).Error; err != nil {
			return err
		}
		if len(metrics) == 0 {
			return nil
		}
		return tx.CreateInBatches(metrics, 500).Error
	})
}

func (r *hashtagMetricRepoImpl) ListTopByTrendScore(ctx context.Context, limit int) ([]*model.HashtagMetric, error) {
	metrics := make([]*model.HashtagMetric, 0, limit)
	err := r.db.WithContext(ctx).
		Order("trend_score DESC, hashtag_id ASC").
		Limit(limit).
		Find(&metrics).Error
	if err != nil {
		return nil, err
	}
	return metrics, nil
}
