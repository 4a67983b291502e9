package service

import (
	"SocialPulse/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRebuildHashtagTrends(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	hashtagRepo := newFakeHashtagRepo()
	hashtagRepo.tags[1] = &model.Hashtag{ID: 1, TagName: "travel"}
	hashtagRepo.tags[2] = &model.Hashtag{ID: 2, TagName: "food"}
	// travel：窗口内被 3 篇内容共使用 4 次（其中 101 重复）
	hashtagRepo.windowIDs[1] = []uint64{101, 102, 101, 103}

	metricRepo := newFakeContentMetricRepo()
	metricRepo.metrics[101] = &model.ContentMetric{ContentID: 101, EngagementRate: 10, ViralityScore: 4}
	metricRepo.metrics[102] = &model.ContentMetric{ContentID: 102, EngagementRate: 20, ViralityScore: 6}

	hashtagMetricRepo := &fakeHashtagMetricRepo{}
	svc := NewHashtagTrendService(hashtagRepo, hashtagMetricRepo, metricRepo, 20)

	report, err := svc.RebuildHashtagTrends(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 2, report.Succeeded)
	require.Len(t, hashtagMetricRepo.replaced, 2)

	travel := hashtagMetricRepo.replaced[0]
	require.Equal(t, uint64(1), travel.HashtagID)
	require.Equal(t, int64(4), travel.UsageCount7d)
	require.Equal(t, int64(3), travel.UniquePosts7d)
	// 0.6*4 + 0.4*3
	require.InDelta(t, 3.6, travel.PopularityScore, 1e-9)
	// 指标只有 101/102 两条：0.5*均值(10,20) + 0.5*均值(4,6)
	require.InDelta(t, 10.0, travel.TrendScore, 1e-9)

	// 窗口内无使用的话题写入全零快照
	food := hashtagMetricRepo.replaced[1]
	require.Equal(t, uint64(2), food.HashtagID)
	require.Zero(t, food.UsageCount7d)
	require.Zero(t, food.TrendScore)

	// 有使用的话题刷新 last_used_at，没使用的不动
	require.Equal(t, now, hashtagRepo.lastUsed[1])
	_, touched := hashtagRepo.lastUsed[2]
	require.False(t, touched)
}

func TestGetTrendingHashtags_OrderedByTrendScore(t *testing.T) {
	hashtagRepo := newFakeHashtagRepo()
	hashtagRepo.tags[1] = &model.Hashtag{ID: 1, TagName: "travel"}
	hashtagRepo.tags[2] = &model.Hashtag{ID: 2, TagName: "food"}
	hashtagRepo.tags[3] = &model.Hashtag{ID: 3, TagName: "tech"}

	hashtagMetricRepo := &fakeHashtagMetricRepo{replaced: []*model.HashtagMetric{
		{HashtagID: 1, TrendScore: 5},
		{HashtagID: 2, TrendScore: 15},
		{HashtagID: 3, TrendScore: 10},
	}}

	svc := NewHashtagTrendService(hashtagRepo, hashtagMetricRepo, newFakeContentMetricRepo(), 2)

	res, err := svc.GetTrendingHashtags(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, "food", res[0].TagName)
	require.Equal(t, "tech", res[1].TagName)
}
