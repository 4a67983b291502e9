package repository

import (
	"SocialPulse/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentMetricRepo interface {
	SaveOrUpdateMetric(ctx context.Context, metric *model.ContentMetric) error
	// ReplaceAll 整表覆盖：派生表的契约是"重算并覆盖"，不做增量 upsert
	ReplaceAll(ctx context.Context, metrics []*model.ContentMetric) error
	GetByContentID(ctx context.Context, contentID uint64) (*model.ContentMetric, error)
	GetByContentIDs(ctx context.Context, contentIDs []uint64) ([]*model.ContentMetric, error)
}

type contentMetricRepoImpl struct {
	db *gorm.DB
}

func NewContentMetricRepository(db *gorm.DB) ContentMetricRepo {
	return &contentMetricRepoImpl{db: db}
}

// SaveOrUpdateMetric 采用 Upsert 逻辑。content_id 已存在时更新各项数值
func (r *contentMetricRepoImpl) SaveOrUpdateMetric(ctx context.Context, metric *model.ContentMetric) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "content_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"engagement_rate",
			"virality_score",
			"reach_count",
			"impressions_count",
			"computed_at",
		}),
	}).Create(metric).Error
}

func (r *contentMetricRepoImpl) ReplaceAll(ctx context.Context, metrics []*model.ContentMetric) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.ContentMetric{}).Error; err != nil {
			return err
		}
		if len(metrics) == 0 {
			return nil
		}
		return tx.CreateInBatches(metrics, 500).Error
	})
}

func (r *contentMetricRepoImpl) GetByContentID(ctx context.Context, contentID uint64) (*model.ContentMetric, error) {
	var metric model.ContentMetric
	err := r.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		First(&metric).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &metric, nil
}

func (r *contentMetricRepoImpl) GetByContentIDs(ctx context.Context, contentIDs []uint64) ([]*model.ContentMetric, error) {
	metrics := make([]*model.ContentMetric, 0, len(contentIDs))
	err := r.db.WithContext(ctx).
		Where("content_id IN ?", contentIDs).
		Find(&metrics).Error
	if err != nil {
		return nil, err
	}
	return metrics, nil
}
