package model

import (
	"time"
)

// ContentMetric 内容维度的派生指标，每轮批处理整表重算覆盖
type ContentMetric struct {
	ID               uint64    `gorm:"primaryKey" json:"id"`
	ContentID        uint64    `gorm:"not null;uniqueIndex:idx_content_id" json:"content_id"`
	EngagementRate   float64   `gorm:"not null;default:0" json:"engagement_rate"`
	ViralityScore    float64   `gorm:"not null;default:0" json:"virality_score"`
	ReachCount       float64   `gorm:"not null;default:0" json:"reach_count"`
	ImpressionsCount float64   `gorm:"not null;default:0" json:"impressions_count"`
	ComputedAt       time.Time `gorm:"not null" json:"computed_at"`
	CreatedAt        time.Time `json:"created_at"`
}

func (ContentMetric) TableName() string {
	return "content_performance_metrics"
}
