package consts

const (
	ContentLikeKey    = "content:like:"
	ContentCommentKey = "content:comment:"
	ContentShareKey   = "content:share:"
	ContentSaveKey    = "content:save:"

	ContentDirtyKey     = "content:dirty"
	UserProfileDirtyKey = "user:profile:dirty"

	ContentMetricKey        = "content:metric:"
	UserMetrics7DaysKey     = "user:metrics:7days:"
	UserMetrics30DaysKey    = "user:metrics:30days:"
	TrendingHashtagsKey     = "hashtag:trending"
	UserRecommendationKey   = "user:recommendation:"
)
