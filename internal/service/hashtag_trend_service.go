package service

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/consts"
	"SocialPulse/internal/pkg/redis"
	"SocialPulse/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

// 话题热度公式系数
const (
	popularityUsageWeight  = 0.6
	popularityUniqueWeight = 0.4
	trendEngagementWeight  = 0.5
	trendViralityWeight    = 0.5
)

// hashtagWindowDays 话题热度的滚动统计窗口
const hashtagWindowDays = 7

type HashtagTrendService interface {
	// RebuildHashtagTrends 基于窗口 [now-7d, now) 重算全部话题热度
	RebuildHashtagTrends(ctx context.Context, now time.Time) (*dto.BatchReportDTO, error)
	// GetTrendingHashtags 按趋势分降序返回热门话题
	GetTrendingHashtags(ctx context.Context) ([]*dto.HashtagTrendDTO, error)
}

type hashtagTrendServiceImpl struct {
	hashtagRepo       repository.HashtagRepo
	hashtagMetricRepo repository.HashtagMetricRepo
	contentMetricRepo repository.ContentMetricRepo
	trendingSize      int
}

func NewHashtagTrendService(
	hashtagRepo repository.HashtagRepo,
	hashtagMetricRepo repository.HashtagMetricRepo,
	contentMetricRepo repository.ContentMetricRepo,
	trendingSize int,
) HashtagTrendService {
	return &hashtagTrendServiceImpl{
		hashtagRepo:       hashtagRepo,
		hashtagMetricRepo: hashtagMetricRepo,
		contentMetricRepo: contentMetricRepo,
		trendingSize:      trendingSize,
	}
}

// RebuildHashtagTrends 实现：
// 热度分 = 0.6*窗口内使用次数 + 0.4*窗口内去重内容数；
// 趋势分 = 0.5*平均互动率 + 0.5*平均传播分，均值取自窗口内内容的派生指标。
// 窗口内无内容的话题写入全零快照。
func (s *hashtagTrendServiceImpl) RebuildHashtagTrends(ctx context.Context, now time.Time) (*dto.BatchReportDTO, error) {
	tags, err := s.hashtagRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	from := now.AddDate(0, 0, -hashtagWindowDays)
	report := dto.NewBatchReport()
	metrics := make([]*model.HashtagMetric, 0, len(tags))

	for _, tag := range tags {
		contentIDs, err := s.hashtagRepo.GetContentIDsInWindow(ctx, tag.ID, from, now)
		if err != nil {
			log.WarnContext(ctx, "list hashtag contents failed", "hashtag_id", tag.ID, "error", err)
			report.AddFailure(tag.ID, err)
			continue
		}

		uniqueIDs := dedupeIDs(contentIDs)
		usage := int64(len(contentIDs))
		unique := int64(len(uniqueIDs))

		popularity := popularityUsageWeight*float64(usage) + popularityUniqueWeight*float64(unique)

		var trend float64
		if unique > 0 {
			contentMetrics, err := s.contentMetricRepo.GetByContentIDs(ctx, uniqueIDs)
			if err != nil {
				report.AddFailure(tag.ID, err)
				continue
			}
			if len(contentMetrics) > 0 {
				var sumEngagement, sumVirality float64
				for _, m := range contentMetrics {
					sumEngagement += m.EngagementRate
					sumVirality += m.ViralityScore
				}
				n := float64(len(contentMetrics))
				trend = trendEngagementWeight*sumEngagement/n + trendViralityWeight*sumVirality/n
			}
		}

		metrics = append(metrics, &model.HashtagMetric{
			HashtagID:       tag.ID,
			UsageCount7d:    usage,
			UniquePosts7d:   unique,
			PopularityScore: popularity,
			TrendScore:      trend,
			ComputedAt:      now,
		})
		report.AddSuccess()

		if usage > 0 {
			_ = s.hashtagRepo.TouchLastUsed(ctx, tag.ID, now)
		}
	}

	if err = s.hashtagMetricRepo.ReplaceAll(ctx, metrics); err != nil {
		return nil, err
	}

	_ = redis.DeleteKey(ctx, consts.TrendingHashtagsKey)

	log.InfoContext(ctx, "hashtag trends rebuilt",
		"total", report.Total, "succeeded", report.Succeeded, "failed", len(report.Failures))

	return report, nil
}

func (s *hashtagTrendServiceImpl) GetTrendingHashtags(ctx context.Context) ([]*dto.HashtagTrendDTO, error) {
	if val, err := redis.GetValue(ctx, consts.TrendingHashtagsKey); err == nil && val != "" {
		res := make([]*dto.HashtagTrendDTO, 0)
		_ = json.Unmarshal([]byte(val), &res)
		return res, nil
	}

	metrics, err := s.hashtagMetricRepo.ListTopByTrendScore(ctx, s.trendingSize)
	if err != nil {
		return nil, err
	}

	tags, err := s.hashtagRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uint64]string, len(tags))
	for _, t := range tags {
		names[t.ID] = t.TagName
	}

	res := make([]*dto.HashtagTrendDTO, 0, len(metrics))
	for _, m := range metrics {
		res = append(res, &dto.HashtagTrendDTO{
			HashtagID:       m.HashtagID,
			TagName:         names[m.HashtagID],
			UsageCount7d:    m.UsageCount7d,
			UniquePosts7d:   m.UniquePosts7d,
			PopularityScore: m.PopularityScore,
			TrendScore:      m.TrendScore,
		})
	}

	_ = redis.SetWithMidnightExpiration(ctx, consts.TrendingHashtagsKey, res)

	return res, nil
}

// dedupeIDs 去重并保持首次出现顺序
func dedupeIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
