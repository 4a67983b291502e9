package model

import "time"

// HashtagMetric 话题标签的热度快照，滚动 7 天窗口 [now-7d, now) 内重算
type HashtagMetric struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	HashtagID       uint64    `gorm:"not null;uniqueIndex:idx_hashtag_id" json:"hashtag_id"`
	UsageCount7d    int64     `gorm:"not null;default:0" json:"usage_count_7d"`
	UniquePosts7d   int64     `gorm:"not null;default:0" json:"unique_posts_7d"`
	PopularityScore float64   `gorm:"not null;default:0" json:"popularity_score"`
	TrendScore      float64   `gorm:"not null;default:0" json:"trend_score"`
	ComputedAt      time.Time `gorm:"not null" json:"computed_at"`
	CreatedAt       time.Time `json:"created_at"`
}

func (HashtagMetric) TableName() string {
	return "hashtag_metrics"
}
