package handler

import (
	"SocialPulse/internal/pkg/response"
	"SocialPulse/internal/service"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type ContentMetricHandler struct {
	contentMetricSvc service.ContentMetricService
}

func NewContentMetricHandler(contentMetricSvc service.ContentMetricService) *ContentMetricHandler {
	return &ContentMetricHandler{
		contentMetricSvc: contentMetricSvc,
	}
}

// GetMetric 获取单条内容的派生指标
func (h *ContentMetricHandler) GetMetric(c *gin.Context) {
	contentIDStr := c.Param("content_id")
	contentID, err := strconv.ParseUint(contentIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	metric, err := h.contentMetricSvc.GetContentMetric(c.Request.Context(), contentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metric)
}

// RebuildAll 管理端全量重算内容指标
func (h *ContentMetricHandler) RebuildAll(c *gin.Context) {
	report, err := h.contentMetricSvc.RebuildAllMetrics(c.Request.Context(), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}
