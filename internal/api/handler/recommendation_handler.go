package handler

import (
	"SocialPulse/internal/pkg/response"
	"SocialPulse/internal/service"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recommendationSvc service.RecommendationService
}

func NewRecommendationHandler(recommendationSvc service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationSvc: recommendationSvc,
	}
}

// GetRecommendation 获取当前用户的内容策略推荐
func (h *RecommendationHandler) GetRecommendation(c *gin.Context) {
	userID := c.GetUint64("user_id")

	recommendation, err := h.recommendationSvc.GetRecommendation(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, recommendation)
}
