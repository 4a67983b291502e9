package service

import (
	"SocialPulse/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func profileTestFixture() (*fakeUserRepo, *fakeContentRepo, *fakeContentMetricRepo, *fakeHashtagRepo, *fakeUserProfileRepo) {
	userRepo := newFakeUserRepo(&model.User{ID: 10, Username: "alice", AccountType: "creator"})

	day := func(d, hour int) time.Time {
		return time.Date(2026, 7, d, hour, 30, 0, 0, time.UTC)
	}
	contentRepo := newFakeContentRepo(
		&model.ContentPost{ID: 1, UserID: 10, ContentType: "photo", ContentCategory: "travel", CreatedAt: day(1, 9)},
		&model.ContentPost{ID: 2, UserID: 10, ContentType: "video", ContentCategory: "", CreatedAt: day(2, 9)},
		&model.ContentPost{ID: 3, UserID: 10, ContentType: "photo", ContentCategory: "travel", CreatedAt: day(3, 18)},
	)

	metricRepo := newFakeContentMetricRepo()
	metricRepo.metrics[1] = &model.ContentMetric{ContentID: 1, EngagementRate: 10}
	metricRepo.metrics[3] = &model.ContentMetric{ContentID: 3, EngagementRate: 20}

	hashtagRepo := newFakeHashtagRepo()
	hashtagRepo.contentTags[1] = []string{"travel", "sunset"}
	hashtagRepo.contentTags[3] = []string{"travel"}

	return userRepo, contentRepo, metricRepo, hashtagRepo, newFakeUserProfileRepo()
}

func TestBuildUserProfile(t *testing.T) {
	userRepo, contentRepo, metricRepo, hashtagRepo, profileRepo := profileTestFixture()
	svc := NewUserProfileService(userRepo, contentRepo, metricRepo, hashtagRepo, profileRepo)

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	snapshot, err := svc.BuildUserProfile(context.Background(), 10, now)
	require.NoError(t, err)

	p := snapshot.Profile
	require.Equal(t, 3, p.SampleCount)
	require.Equal(t, 2, p.ContentTypes.Count("photo"))
	require.Equal(t, 1, p.ContentTypes.Count("video"))

	// 缺失分类统一计入 Unknown
	require.Equal(t, 2, p.Categories.Count("travel"))
	require.Equal(t, 1, p.Categories.Count("Unknown"))

	require.Equal(t, 2, p.PostingHours.Count("9"))
	require.Equal(t, 1, p.PostingHours.Count("18"))

	require.Equal(t, 2, p.Hashtags.Count("travel"))
	require.Equal(t, 1, p.Hashtags.Count("sunset"))

	// 均值只取有派生指标的内容：(10+20)/2
	require.InDelta(t, 15.0, p.AvgEngagementRate, 1e-9)

	// 快照已落库
	stored, err := profileRepo.GetProfile(context.Background(), 10)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, now, stored.UpdatedAt)
}

func TestBuildUserProfile_NoHistory(t *testing.T) {
	userRepo := newFakeUserRepo(&model.User{ID: 11, Username: "bob"})
	profileRepo := newFakeUserProfileRepo()
	// 残留的旧快照必须被清掉
	profileRepo.profiles[11] = &model.UserProfileSnapshot{UserID: 11}

	svc := NewUserProfileService(userRepo, newFakeContentRepo(), newFakeContentMetricRepo(), newFakeHashtagRepo(), profileRepo)

	_, err := svc.BuildUserProfile(context.Background(), 11, time.Now())
	require.ErrorIs(t, err, ErrNoHistory)
	require.NotContains(t, profileRepo.profiles, uint64(11))
}

func TestBuildUserProfile_UserNotFound(t *testing.T) {
	svc := NewUserProfileService(newFakeUserRepo(), newFakeContentRepo(), newFakeContentMetricRepo(), newFakeHashtagRepo(), newFakeUserProfileRepo())

	_, err := svc.BuildUserProfile(context.Background(), 404, time.Now())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserProfile_NotFound(t *testing.T) {
	// 空画像与零互动画像不同：前者根本不存在
	svc := NewUserProfileService(newFakeUserRepo(), newFakeContentRepo(), newFakeContentMetricRepo(), newFakeHashtagRepo(), newFakeUserProfileRepo())

	_, err := svc.GetUserProfile(context.Background(), 10)
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestRebuildAllProfiles(t *testing.T) {
	userRepo, contentRepo, metricRepo, hashtagRepo, profileRepo := profileTestFixture()
	// 用户 12 有内容但用户记录缺失，重建应失败但不中断整批
	contentRepo.posts[9] = &model.ContentPost{ID: 9, UserID: 12, ContentType: "photo", CreatedAt: time.Now()}

	svc := NewUserProfileService(userRepo, contentRepo, metricRepo, hashtagRepo, profileRepo)

	report, err := svc.RebuildAllProfiles(context.Background(), time.Now())
	require.NoError(t, err)
	require.Equal(t, 2, report.Total)
	require.Equal(t, 1, report.Succeeded)
	require.Len(t, report.Failures, 1)
	require.Equal(t, uint64(12), report.Failures[0].EntityID)
}
