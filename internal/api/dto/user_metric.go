package dto

// MetricPointDTO 趋势曲线上的一个数据点
type MetricPointDTO struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// UserEngagementTrendDTO 创作者全维度趋势数据
type UserEngagementTrendDTO struct {
	UserID         uint64            `json:"user_id"`
	Days           int               `json:"days"` // 7 或 30
	Likes          []*MetricPointDTO `json:"likes"`
	Comments       []*MetricPointDTO `json:"comments"`
	Shares         []*MetricPointDTO `json:"shares"`
	EngagementRate []*MetricPointDTO `json:"engagement_rate"`
	Reach          []*MetricPointDTO `json:"reach"`
}
