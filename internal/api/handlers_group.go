package api

import "SocialPulse/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	ContentMetricHandler  *handler.ContentMetricHandler
	UserMetricHandler     *handler.UserMetricHandler
	HashtagHandler        *handler.HashtagHandler
	UserProfileHandler    *handler.UserProfileHandler
	RecommendationHandler *handler.RecommendationHandler
}
