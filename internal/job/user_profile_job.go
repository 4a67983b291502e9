package job

import (
	"SocialPulse/internal/pkg/consts"
	"SocialPulse/internal/pkg/logger"
	"SocialPulse/internal/pkg/redis"
	"SocialPulse/internal/pkg/util"
	"SocialPulse/internal/service"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// UserProfileJob 消费 user:profile:dirty 集合，
// 先刷新用户当日表现快照，再重建行为画像
type UserProfileJob struct {
	userMetricSvc  service.UserMetricService
	userProfileSvc service.UserProfileService
}

func NewUserProfileJob(
	userMetricSvc service.UserMetricService,
	userProfileSvc service.UserProfileService,
) *UserProfileJob {
	return &UserProfileJob{
		userMetricSvc:  userMetricSvc,
		userProfileSvc: userProfileSvc,
	}
}

func (s *UserProfileJob) Run() {
	traceID := "job-profile-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.UserProfileDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.UserProfileDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get user profile dirty set error", "err", err)
		return
	}

	userIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert user set to int slice error", "err", err)
		return
	}

	now := time.Now()
	rebuilt := 0

	for _, uid := range userIDs {
		err = s.userMetricSvc.SyncUserDailyMetric(ctx, uid, now)
		if err != nil {
			log.ErrorContext(ctx, "sync user daily metric error", "uid", uid, "err", err)
		}

		_, err = s.userProfileSvc.BuildUserProfile(ctx, uid, now)
		if err != nil {
			// 内容全删光的用户走到这里属于正常情况
			if !errors.Is(err, service.ErrNoHistory) {
				log.ErrorContext(ctx, "build user profile error", "uid", uid, "err", err)
			}
			continue
		}
		rebuilt++
	}

	err = redis.DeleteKey(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "delete user processing set error", "err", err)
	}

	log.InfoContext(ctx, "rebuild user profiles success",
		"user_count", len(userIDs),
		"rebuilt", rebuilt)
}
