package api

import (
	"SocialPulse/internal/api/middleware"
	"SocialPulse/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		// 内容维度指标
		contentGroup := apiGroup.Group("/content")
		contentGroup.Use(middleware.AuthMiddleware())
		{
			contentGroup.GET("/:content_id/metrics", group.ContentMetricHandler.GetMetric)
		}

		// 话题榜单对外公开
		hashtagGroup := apiGroup.Group("/hashtag")
		{
			hashtagGroup.GET("/trending", group.HashtagHandler.GetTrending)
		}

		// 创作者自己的指标、画像与推荐
		userGroup := apiGroup.Group("/user")
		userGroup.Use(middleware.AuthMiddleware())
		{
			userGroup.GET("/metrics/7days", group.UserMetricHandler.GetMetrics7Days)
			userGroup.GET("/metrics/30days", group.UserMetricHandler.GetMetrics30Days)
			userGroup.GET("/profile", group.UserProfileHandler.GetProfile)
			userGroup.POST("/profile/rebuild", group.UserProfileHandler.RebuildProfile)
			userGroup.GET("/recommendation", group.RecommendationHandler.GetRecommendation)
		}

		// 需要登录 & 拥有 admin 角色的全量重算入口
		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("ADMIN"))
		{
			adminGroup.POST("/metrics/rebuild", group.ContentMetricHandler.RebuildAll)
			adminGroup.POST("/hashtags/rebuild", group.HashtagHandler.RebuildTrends)
			adminGroup.POST("/profiles/rebuild", group.UserProfileHandler.RebuildAll)
		}
	}

	return r
}
