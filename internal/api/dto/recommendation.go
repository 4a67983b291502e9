package dto

// RankedItemDTO 推荐列表中的一项及其历史频次
type RankedItemDTO struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// EngagementInsightsDTO 互动表现洞察
type EngagementInsightsDTO struct {
	AvgEngagementRate       float64  `json:"avg_engagement_rate"`
	PerformanceLevel        string   `json:"performance_level"`
	PredictedEngagementRate *float64 `json:"predicted_engagement_rate,omitempty"` // 预测服务不可用时省略
}

// RecommendationDTO 单个用户的内容策略推荐
type RecommendationDTO struct {
	UserID                  uint64                 `json:"user_id"`
	OptimalPostingTimes     []*RankedItemDTO       `json:"optimal_posting_times"`
	RecommendedContentTypes []*RankedItemDTO       `json:"recommended_content_types"`
	RecommendedCategories   []*RankedItemDTO       `json:"recommended_categories"`
	RecommendedHashtags     []*RankedItemDTO       `json:"recommended_hashtags"`
	EngagementInsights      *EngagementInsightsDTO `json:"engagement_insights"`
}
