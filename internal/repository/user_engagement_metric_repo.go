package repository

import (
	"SocialPulse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserEngagementMetricRepo interface {
	SaveOrUpdateMetric(ctx context.Context, metric *model.UserEngagementMetric) error
	// GetMetricsSince 返回 metric_date 在 [since, until) 内的快照，升序
	GetMetricsSince(ctx context.Context, userID uint64, since, until time.Time) ([]*model.UserEngagementMetric, error)
	GetLatestMetricBefore(ctx context.Context, userID uint64, date time.Time) (*model.UserEngagementMetric, error)
}

type userEngagementMetricRepoImpl struct {
	db *gorm.DB
}

func NewUserEngagementMetricRepository(db *gorm.DB) UserEngagementMetricRepo {
	return &userEngagementMetricRepoImpl{db: db}
}

func (r *userEngagementMetricRepoImpl) SaveOrUpdateMetric(ctx context.Context, metric *model.UserEngagementMetric) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"posts_created",
			"likes_received",
			"comments_received",
			"shares_received",
			"avg_engagement_rate",
			"reach_count",
			"impressions_count",
			"profile_views",
			"website_clicks",
		}),
	}).Create(metric).Error
}

func (r *userEngagementMetricRepoImpl) GetMetricsSince(ctx context.Context, userID uint64, since, until time.Time) ([]*model.UserEngagementMetric, error) {
	metrics := make([]*model.UserEngagementMetric, 0)
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("metric_date >= ? AND metric_date < ?", since, until).
		Order("metric_date ASC").
		Find(&metrics)
	return metrics, result.Error
}

func (r *userEngagementMetricRepoImpl) GetLatestMetricBefore(ctx context.Context, userID uint64, date time.Time) (*model.UserEngagementMetric, error) {
	var metric model.UserEngagementMetric
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND metric_date < ?", userID, date).
		Order("metric_date DESC").
		First(&metric).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &metric, nil
}
