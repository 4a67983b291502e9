package model

import (
	"time"
)

// UserEngagementMetric 创作者每日表现快照模型
type UserEngagementMetric struct {
	ID                uint64    `gorm:"primaryKey;column:id" json:"id"`
	UserID            uint64    `gorm:"not null;uniqueIndex:idx_user_date;column:user_id" json:"userId"`
	MetricDate        time.Time `gorm:"not null;type:date;uniqueIndex:idx_user_date;column:metric_date" json:"metricDate"`
	PostsCreated      int       `gorm:"not null;default:0;column:posts_created" json:"postsCreated"`
	LikesReceived     int64     `gorm:"not null;default:0;column:likes_received" json:"likesReceived"`
	CommentsReceived  int64     `gorm:"not null;default:0;column:comments_received" json:"commentsReceived"`
	SharesReceived    int64     `gorm:"not null;default:0;column:shares_received" json:"sharesReceived"`
	AvgEngagementRate float64   `gorm:"not null;default:0;column:avg_engagement_rate" json:"avgEngagementRate"`
	ReachCount        float64   `gorm:"not null;default:0;column:reach_count" json:"reachCount"`
	ImpressionsCount  float64   `gorm:"not null;default:0;column:impressions_count" json:"impressionsCount"`
	ProfileViews      float64   `gorm:"not null;default:0;column:profile_views" json:"profileViews"`
	WebsiteClicks     float64   `gorm:"not null;default:0;column:website_clicks" json:"websiteClicks"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (UserEngagementMetric) TableName() string {
	return "user_engagement_metrics"
}
