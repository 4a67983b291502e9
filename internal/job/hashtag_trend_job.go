package job

import (
	"SocialPulse/internal/pkg/logger"
	"SocialPulse/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// HashtagTrendJob 每日全量重算话题热度
type HashtagTrendJob struct {
	hashtagTrendSvc service.HashtagTrendService
}

func NewHashtagTrendJob(hashtagTrendSvc service.HashtagTrendService) *HashtagTrendJob {
	return &HashtagTrendJob{hashtagTrendSvc: hashtagTrendSvc}
}

func (s *HashtagTrendJob) Run() {
	traceID := "job-hashtag-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	report, err := s.hashtagTrendSvc.RebuildHashtagTrends(ctx, time.Now())
	if err != nil {
		log.ErrorContext(ctx, "rebuild hashtag trends error", "err", err)
		return
	}

	log.InfoContext(ctx, "rebuild hashtag trends success",
		"total", report.Total,
		"succeeded", report.Succeeded,
		"failed", len(report.Failures))
}
