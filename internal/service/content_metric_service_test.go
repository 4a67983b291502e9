package service

import (
	"SocialPulse/internal/api/config"
	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/predictor"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testEstimator() predictor.ReachEstimator {
	return predictor.NewFixedMultiplierEstimator(config.AnalyticsConfig{
		ReachMultiplier:       3.5,
		ImpressionsMultiplier: 1.6,
		ProfileViewRate:       0.2,
		WebsiteClickRate:      0.1,
		TrendingSize:          20,
	})
}

func newTestContentMetricService(
	contentRepo *fakeContentRepo,
	interactionRepo *fakeInteractionRepo,
	metricRepo *fakeContentMetricRepo,
) ContentMetricService {
	return NewContentMetricService(contentRepo, interactionRepo, metricRepo, testEstimator())
}

func TestComputeMetric_EngagementRate(t *testing.T) {
	svc := newTestContentMetricService(newFakeContentRepo(), newFakeInteractionRepo(), newFakeContentMetricRepo())
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	metric, err := svc.ComputeMetric(&model.InteractionCounts{
		ContentID: 1, Likes: 50, Comments: 10, Shares: 5,
	}, now)
	require.NoError(t, err)

	// (50+10+5)/50*100
	require.InDelta(t, 130.0, metric.EngagementRate, 1e-9)
	require.Equal(t, now, metric.ComputedAt)
}

func TestComputeMetric_CombinedCounts(t *testing.T) {
	svc := newTestContentMetricService(newFakeContentRepo(), newFakeInteractionRepo(), newFakeContentMetricRepo())

	metric, err := svc.ComputeMetric(&model.InteractionCounts{
		ContentID: 1, Likes: 10, Comments: 2, Shares: 1, Saves: 3,
	}, time.Now())
	require.NoError(t, err)

	// (10+2+1)/10*100
	require.InDelta(t, 130.0, metric.EngagementRate, 1e-9)
	// 0.4*1 + 0.3*2 + 0.3*3
	require.InDelta(t, 1.9, metric.ViralityScore, 1e-9)
}

func TestComputeMetric_ViralityLinearInCounts(t *testing.T) {
	svc := newTestContentMetricService(newFakeContentRepo(), newFakeInteractionRepo(), newFakeContentMetricRepo())

	base, err := svc.ComputeMetric(&model.InteractionCounts{
		ContentID: 1, Shares: 1, Comments: 2, Saves: 3,
	}, time.Now())
	require.NoError(t, err)

	// 互动计数整体放大 k 倍，传播分同比例放大
	for _, k := range []int64{2, 5, 10} {
		scaled, err := svc.ComputeMetric(&model.InteractionCounts{
			ContentID: 1, Shares: 1 * k, Comments: 2 * k, Saves: 3 * k,
		}, time.Now())
		require.NoError(t, err)
		require.InDelta(t, float64(k)*base.ViralityScore, scaled.ViralityScore, 1e-9)
	}
}

func TestComputeMetric_ZeroLikesDenominator(t *testing.T) {
	svc := newTestContentMetricService(newFakeContentRepo(), newFakeInteractionRepo(), newFakeContentMetricRepo())

	metric, err := svc.ComputeMetric(&model.InteractionCounts{
		ContentID: 1, Likes: 0, Comments: 4, Shares: 3,
	}, time.Now())
	require.NoError(t, err)

	// 点赞为 0 时分母取 1，不会除零
	require.InDelta(t, 700.0, metric.EngagementRate, 1e-9)
}

func TestComputeMetric_ViralityScore(t *testing.T) {
	svc := newTestContentMetricService(newFakeContentRepo(), newFakeInteractionRepo(), newFakeContentMetricRepo())

	cases := []struct {
		name     string
		counts   model.InteractionCounts
		expected float64
	}{
		{"only shares", model.InteractionCounts{Shares: 1}, 0.4},
		{"only comments", model.InteractionCounts{Comments: 1}, 0.3},
		{"only saves", model.InteractionCounts{Saves: 1}, 0.3},
		{"combined", model.InteractionCounts{Shares: 2, Comments: 3, Saves: 4}, 2.9},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			metric, err := svc.ComputeMetric(&tc.counts, time.Now())
			require.NoError(t, err)
			require.InDelta(t, tc.expected, metric.ViralityScore, 1e-9)
		})
	}
}

func TestComputeMetric_ReachAndImpressions(t *testing.T) {
	svc := newTestContentMetricService(newFakeContentRepo(), newFakeInteractionRepo(), newFakeContentMetricRepo())

	metric, err := svc.ComputeMetric(&model.InteractionCounts{ContentID: 1, Likes: 50}, time.Now())
	require.NoError(t, err)

	require.InDelta(t, 175.0, metric.ReachCount, 1e-9)
	require.InDelta(t, 280.0, metric.ImpressionsCount, 1e-9)

	// 同样的输入必须给出同样的结果
	again, err := svc.ComputeMetric(&model.InteractionCounts{ContentID: 1, Likes: 50}, time.Now())
	require.NoError(t, err)
	require.Equal(t, metric.ReachCount, again.ReachCount)
	require.Equal(t, metric.ImpressionsCount, again.ImpressionsCount)
}

func TestComputeMetric_EmptyCountsProducesZeroRecord(t *testing.T) {
	svc := newTestContentMetricService(newFakeContentRepo(), newFakeInteractionRepo(), newFakeContentMetricRepo())

	metric, err := svc.ComputeMetric(&model.InteractionCounts{ContentID: 7}, time.Now())
	require.NoError(t, err)

	// 零互动产出全零记录，而不是缺失记录
	require.Equal(t, uint64(7), metric.ContentID)
	require.Zero(t, metric.EngagementRate)
	require.Zero(t, metric.ViralityScore)
	require.Zero(t, metric.ReachCount)
	require.Zero(t, metric.ImpressionsCount)
}

func TestComputeMetric_RejectsNegativeCounts(t *testing.T) {
	svc := newTestContentMetricService(newFakeContentRepo(), newFakeInteractionRepo(), newFakeContentMetricRepo())

	_, err := svc.ComputeMetric(&model.InteractionCounts{ContentID: 1, Likes: -1}, time.Now())
	require.ErrorIs(t, err, ErrNegativeCount)
}

func TestSyncContentMetric(t *testing.T) {
	now := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	contentRepo := newFakeContentRepo(&model.ContentPost{ID: 1, UserID: 10})
	interactionRepo := newFakeInteractionRepo()
	interactionRepo.counts[1] = &model.InteractionCounts{ContentID: 1, Likes: 10, Comments: 5, Shares: 2, Saves: 1}
	metricRepo := newFakeContentMetricRepo()

	svc := newTestContentMetricService(contentRepo, interactionRepo, metricRepo)

	err := svc.SyncContentMetric(context.Background(), 1, now)
	require.NoError(t, err)

	saved := metricRepo.metrics[1]
	require.NotNil(t, saved)
	require.InDelta(t, 170.0, saved.EngagementRate, 1e-9)

	// 计数同时刷回内容表冗余列
	require.Equal(t, 10, contentRepo.posts[1].LikesCount)
	require.Equal(t, 5, contentRepo.posts[1].CommentsCount)
}

func TestSyncContentMetric_NotFound(t *testing.T) {
	svc := newTestContentMetricService(newFakeContentRepo(), newFakeInteractionRepo(), newFakeContentMetricRepo())

	err := svc.SyncContentMetric(context.Background(), 42, time.Now())
	require.ErrorIs(t, err, ErrContentNotFound)
}

func TestRebuildAllMetrics_ContinuesOnFailure(t *testing.T) {
	now := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	contentRepo := newFakeContentRepo(
		&model.ContentPost{ID: 1, UserID: 10},
		&model.ContentPost{ID: 2, UserID: 10},
		&model.ContentPost{ID: 3, UserID: 11},
	)
	interactionRepo := newFakeInteractionRepo()
	interactionRepo.counts[1] = &model.InteractionCounts{ContentID: 1, Likes: 10}
	interactionRepo.failIDs[2] = true
	interactionRepo.counts[3] = &model.InteractionCounts{ContentID: 3, Likes: 20}

	metricRepo := newFakeContentMetricRepo()
	svc := newTestContentMetricService(contentRepo, interactionRepo, metricRepo)

	report, err := svc.RebuildAllMetrics(context.Background(), now)
	require.NoError(t, err)

	require.Equal(t, 3, report.Total)
	require.Equal(t, 2, report.Succeeded)
	require.Len(t, report.Failures, 1)
	require.Equal(t, uint64(2), report.Failures[0].EntityID)

	// 失败的内容不进入本轮覆盖结果
	require.Len(t, metricRepo.replaced, 2)
	require.Equal(t, 1, metricRepo.replaceRuns)
}

func TestGetContentMetric(t *testing.T) {
	contentRepo := newFakeContentRepo(&model.ContentPost{ID: 1, UserID: 10})
	metricRepo := newFakeContentMetricRepo()
	metricRepo.metrics[1] = &model.ContentMetric{
		ContentID:      1,
		EngagementRate: 42.5,
		ComputedAt:     time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC),
	}

	interactionRepo := newFakeInteractionRepo()
	interactionRepo.counts[1] = &model.InteractionCounts{ContentID: 1, Likes: 12, Comments: 4, Shares: 2, Saves: 1}

	svc := newTestContentMetricService(contentRepo, interactionRepo, metricRepo)

	res, err := svc.GetContentMetric(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), res.ContentID)
	require.InDelta(t, 42.5, res.EngagementRate, 1e-9)

	// 实时互动计数随派生指标一并返回，计数键缺失时回源落库
	require.Equal(t, int64(12), res.LikesCount)
	require.Equal(t, int64(4), res.CommentsCount)
	require.Equal(t, int64(2), res.SharesCount)
	require.Equal(t, int64(1), res.SavesCount)

	_, err = svc.GetContentMetric(context.Background(), 99)
	require.ErrorIs(t, err, ErrContentNotFound)
}

func TestGetContentMetric_NotComputedYet(t *testing.T) {
	contentRepo := newFakeContentRepo(&model.ContentPost{ID: 1, UserID: 10})
	svc := newTestContentMetricService(contentRepo, newFakeInteractionRepo(), newFakeContentMetricRepo())

	_, err := svc.GetContentMetric(context.Background(), 1)
	require.ErrorIs(t, err, ErrMetricNotFound)
}
