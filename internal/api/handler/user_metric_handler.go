package handler

import (
	"SocialPulse/internal/pkg/response"
	"SocialPulse/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

type UserMetricHandler struct {
	userMetricSvc service.UserMetricService
}

func NewUserMetricHandler(userMetricSvc service.UserMetricService) *UserMetricHandler {
	return &UserMetricHandler{
		userMetricSvc: userMetricSvc,
	}
}

// GetMetrics7Days 获取当前用户 7 天趋势
func (h *UserMetricHandler) GetMetrics7Days(c *gin.Context) {
	userID := c.GetUint64("user_id")

	trend, err := h.userMetricSvc.GetUserMetricsBy7Days(c.Request.Context(), userID, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trend)
}

// GetMetrics30Days 获取当前用户 30 天趋势
func (h *UserMetricHandler) GetMetrics30Days(c *gin.Context) {
	userID := c.GetUint64("user_id")

	trend, err := h.userMetricSvc.GetUserMetricsBy30Days(c.Request.Context(), userID, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trend)
}
