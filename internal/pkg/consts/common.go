package consts

const (
	ContentTypePhoto    = "photo"
	ContentTypeVideo    = "video"
	ContentTypeCarousel = "carousel"
	ContentTypeStory    = "story"
)

const (
	AccountTypePersonal = "personal"
	AccountTypeBusiness = "business"
	AccountTypeCreator  = "creator"
)

// UnknownCategory 缺失分类的统一默认值
const UnknownCategory = "Unknown"

// 互动率表现分级标签
const (
	PerformanceExcellent        = "Excellent"
	PerformanceGood             = "Good"
	PerformanceAverage          = "Average"
	PerformanceNeedsImprovement = "Needs Improvement"
)

// RecommendationTopK 推荐结果每个维度保留的条目数
const RecommendationTopK = 3
