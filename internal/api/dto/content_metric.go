package dto

// ContentMetricDTO 内容派生指标。
// 派生指标来自最近一次重算，四项互动计数是实时值
type ContentMetricDTO struct {
	ContentID        uint64  `json:"content_id"`
	EngagementRate   float64 `json:"engagement_rate"`
	ViralityScore    float64 `json:"virality_score"`
	ReachCount       float64 `json:"reach_count"`
	ImpressionsCount float64 `json:"impressions_count"`
	LikesCount       int64   `json:"likes_count"`
	CommentsCount    int64   `json:"comments_count"`
	SharesCount      int64   `json:"shares_count"`
	SavesCount       int64   `json:"saves_count"`
	ComputedAt       string  `json:"computed_at"`
}
