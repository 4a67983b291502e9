package handler

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/pkg/response"
	"SocialPulse/internal/pkg/util"
	"SocialPulse/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

type HashtagHandler struct {
	hashtagTrendSvc service.HashtagTrendService
}

func NewHashtagHandler(hashtagTrendSvc service.HashtagTrendService) *HashtagHandler {
	return &HashtagHandler{
		hashtagTrendSvc: hashtagTrendSvc,
	}
}

// GetTrending 获取热门话题榜单
func (h *HashtagHandler) GetTrending(c *gin.Context) {
	var query dto.TrendingQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := util.ValidateDTO(&query); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	trending, err := h.hashtagTrendSvc.GetTrendingHashtags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	if query.Limit > 0 && query.Limit < len(trending) {
		trending = trending[:query.Limit]
	}
	response.Success(c, trending)
}

// RebuildTrends 管理端全量重算话题热度
func (h *HashtagHandler) RebuildTrends(c *gin.Context) {
	report, err := h.hashtagTrendSvc.RebuildHashtagTrends(c.Request.Context(), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}
