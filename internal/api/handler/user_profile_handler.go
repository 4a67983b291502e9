package handler

import (
	"SocialPulse/internal/pkg/response"
	"SocialPulse/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

type UserProfileHandler struct {
	userProfileSvc service.UserProfileService
}

func NewUserProfileHandler(userProfileSvc service.UserProfileService) *UserProfileHandler {
	return &UserProfileHandler{
		userProfileSvc: userProfileSvc,
	}
}

// GetProfile 获取当前用户的行为画像快照
func (h *UserProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")

	snapshot, err := h.userProfileSvc.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, snapshot)
}

// RebuildProfile 重建当前用户的画像
func (h *UserProfileHandler) RebuildProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")

	snapshot, err := h.userProfileSvc.BuildUserProfile(c.Request.Context(), userID, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, snapshot)
}

// RebuildAll 管理端全量重建画像
func (h *UserProfileHandler) RebuildAll(c *gin.Context) {
	report, err := h.userProfileSvc.RebuildAllProfiles(c.Request.Context(), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}
