package dto

// TrendingQueryDTO 榜单查询参数，limit 缺省时用服务端配置的榜单长度
type TrendingQueryDTO struct {
	Limit int `form:"limit" validate:"omitempty,min=1,max=100"`
}

// HashtagTrendDTO 话题标签热度
type HashtagTrendDTO struct {
	HashtagID       uint64  `json:"hashtag_id"`
	TagName         string  `json:"tag_name"`
	UsageCount7d    int64   `json:"usage_count_7d"`
	UniquePosts7d   int64   `json:"unique_posts_7d"`
	PopularityScore float64 `json:"popularity_score"`
	TrendScore      float64 `json:"trend_score"`
}
