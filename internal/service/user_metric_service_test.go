package service

import (
	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/util"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestUserMetricService(
	userRepo *fakeUserRepo,
	contentRepo *fakeContentRepo,
	interactionRepo *fakeInteractionRepo,
	metricRepo *fakeContentMetricRepo,
	userMetricRepo *fakeUserMetricRepo,
) UserMetricService {
	return NewUserMetricService(userRepo, contentRepo, interactionRepo, metricRepo, userMetricRepo, testEstimator())
}

func TestSyncUserDailyMetric(t *testing.T) {
	now := time.Date(2026, 8, 1, 15, 30, 0, 0, time.UTC)
	today := util.GetMidnight(now)

	userRepo := newFakeUserRepo(&model.User{ID: 10, Username: "alice"})
	contentRepo := newFakeContentRepo(
		&model.ContentPost{ID: 1, UserID: 10, CreatedAt: now.Add(-2 * time.Hour)},
		&model.ContentPost{ID: 2, UserID: 10, CreatedAt: now.AddDate(0, 0, -3)},
	)
	interactionRepo := newFakeInteractionRepo()
	interactionRepo.userLikes = 100
	interactionRepo.userComment = 30
	interactionRepo.userShares = 10

	metricRepo := newFakeContentMetricRepo()
	metricRepo.metrics[1] = &model.ContentMetric{ContentID: 1, EngagementRate: 10, ReachCount: 200, ImpressionsCount: 320}
	metricRepo.metrics[2] = &model.ContentMetric{ContentID: 2, EngagementRate: 30, ReachCount: 100, ImpressionsCount: 160}

	userMetricRepo := &fakeUserMetricRepo{}
	svc := newTestUserMetricService(userRepo, contentRepo, interactionRepo, metricRepo, userMetricRepo)

	err := svc.SyncUserDailyMetric(context.Background(), 10, now)
	require.NoError(t, err)
	require.Len(t, userMetricRepo.metrics, 1)

	m := userMetricRepo.metrics[0]
	require.Equal(t, today, m.MetricDate)
	require.Equal(t, 1, m.PostsCreated) // 只有内容 1 是今天发布的
	require.Equal(t, int64(100), m.LikesReceived)
	require.Equal(t, int64(30), m.CommentsReceived)
	require.Equal(t, int64(10), m.SharesReceived)
	require.InDelta(t, 20.0, m.AvgEngagementRate, 1e-9)
	require.InDelta(t, 300.0, m.ReachCount, 1e-9)
	require.InDelta(t, 480.0, m.ImpressionsCount, 1e-9)
	// 主页访问与外链点击由估算器推出：300*0.2=60，60*0.1=6
	require.InDelta(t, 60.0, m.ProfileViews, 1e-9)
	require.InDelta(t, 6.0, m.WebsiteClicks, 1e-9)
}

func TestSyncUserDailyMetric_UserNotFound(t *testing.T) {
	svc := newTestUserMetricService(newFakeUserRepo(), newFakeContentRepo(), newFakeInteractionRepo(), newFakeContentMetricRepo(), &fakeUserMetricRepo{})

	err := svc.SyncUserDailyMetric(context.Background(), 404, time.Now())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserMetricsBy7Days_FillsGaps(t *testing.T) {
	now := time.Date(2026, 8, 1, 15, 30, 0, 0, time.UTC)
	today := util.GetMidnight(now)

	userRepo := newFakeUserRepo(&model.User{ID: 10, Username: "alice"})
	userMetricRepo := &fakeUserMetricRepo{metrics: []*model.UserEngagementMetric{
		// 窗口前的基线
		{UserID: 10, MetricDate: today.AddDate(0, 0, -10), LikesReceived: 50, AvgEngagementRate: 5},
		// 窗口内只有两天有快照
		{UserID: 10, MetricDate: today.AddDate(0, 0, -4), LikesReceived: 80, AvgEngagementRate: 8},
		{UserID: 10, MetricDate: today, LikesReceived: 120, AvgEngagementRate: 12},
	}}

	svc := newTestUserMetricService(userRepo, newFakeContentRepo(), newFakeInteractionRepo(), newFakeContentMetricRepo(), userMetricRepo)

	res, err := svc.GetUserMetricsBy7Days(context.Background(), 10, now)
	require.NoError(t, err)
	require.Equal(t, 7, res.Days)
	require.Len(t, res.Likes, 7)
	require.Len(t, res.EngagementRate, 7)

	// 窗口边界由传入的 now 决定：[now-6d 零点, 次日零点)
	require.Equal(t, "2026-07-26", res.Likes[0].Date)
	require.Equal(t, "2026-08-01", res.Likes[6].Date)

	// 窗口开头沿用基线，快照日取快照值，其后的缺口沿用上一个有效值
	require.InDelta(t, 50.0, res.Likes[0].Value, 1e-9)
	require.InDelta(t, 50.0, res.Likes[1].Value, 1e-9)
	require.InDelta(t, 80.0, res.Likes[2].Value, 1e-9)
	require.InDelta(t, 80.0, res.Likes[3].Value, 1e-9)
	require.InDelta(t, 80.0, res.Likes[5].Value, 1e-9)
	require.InDelta(t, 120.0, res.Likes[6].Value, 1e-9)

	require.Equal(t, today.Format(time.DateOnly), res.Likes[6].Date)
}

func TestGetUserMetricsBy30Days_NoHistory(t *testing.T) {
	userRepo := newFakeUserRepo(&model.User{ID: 10, Username: "alice"})
	svc := newTestUserMetricService(userRepo, newFakeContentRepo(), newFakeInteractionRepo(), newFakeContentMetricRepo(), &fakeUserMetricRepo{})

	res, err := svc.GetUserMetricsBy30Days(context.Background(), 10, time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, res.Likes, 30)

	// 没有任何快照时全程补零
	for _, p := range res.Likes {
		require.Zero(t, p.Value)
	}
}

func TestGetUserMetrics_UserNotFound(t *testing.T) {
	svc := newTestUserMetricService(newFakeUserRepo(), newFakeContentRepo(), newFakeInteractionRepo(), newFakeContentMetricRepo(), &fakeUserMetricRepo{})

	_, err := svc.GetUserMetricsBy7Days(context.Background(), 404, time.Now())
	require.ErrorIs(t, err, ErrUserNotFound)
}
