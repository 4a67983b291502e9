package job

import (
	"SocialPulse/internal/pkg/consts"
	"SocialPulse/internal/pkg/logger"
	"SocialPulse/internal/pkg/redis"
	"SocialPulse/internal/pkg/util"
	"SocialPulse/internal/repository"
	"SocialPulse/internal/service"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ContentMetricsJob 消费 content:dirty 集合，
// 重算脏内容的派生指标并把作者标记为画像待重建
type ContentMetricsJob struct {
	contentMetricSvc service.ContentMetricService
	contentRepo      repository.ContentRepo
}

func NewContentMetricsJob(
	contentMetricSvc service.ContentMetricService,
	contentRepo repository.ContentRepo,
) *ContentMetricsJob {
	return &ContentMetricsJob{
		contentMetricSvc: contentMetricSvc,
		contentRepo:      contentRepo,
	}
}

func (s *ContentMetricsJob) Run() {
	traceID := "job-content-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.ContentDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.ContentDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get content dirty set error", "err", err)
		return
	}

	contentIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert content set to int slice error", "err", err)
		return
	}

	now := time.Now()
	dirtyUserIDs := make(map[uint64]struct{})

	for _, cid := range contentIDs {
		err = s.contentMetricSvc.SyncContentMetric(ctx, cid, now)
		if err != nil {
			log.ErrorContext(ctx, "sync content metric error", "cid", cid, "err", err)
			continue
		}

		post, err := s.contentRepo.GetPost(ctx, cid)
		if err == nil && post != nil {
			dirtyUserIDs[post.UserID] = struct{}{}
		}
	}

	// 指标变了，作者的画像与每日快照顺延重建
	for uid := range dirtyUserIDs {
		err = redis.SAddValue(ctx, consts.UserProfileDirtyKey, strconv.FormatUint(uid, 10))
		if err != nil {
			log.ErrorContext(ctx, "mark user profile dirty error", "uid", uid, "err", err)
		}
	}

	err = redis.DeleteKey(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "delete content processing set error", "err", err)
	}

	log.InfoContext(ctx, "sync content metrics success",
		"content_count", len(contentIDs),
		"user_count", len(dirtyUserIDs))
}
