package service

import (
	"SocialPulse/internal/model"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func recommendationFixture(pred *fakePredictor) (RecommendationService, *fakeUserProfileRepo) {
	userRepo := newFakeUserRepo(&model.User{ID: 10, Username: "alice", AccountType: "creator", FollowerCount: 1000})
	contentRepo := newFakeContentRepo(
		&model.ContentPost{ID: 1, UserID: 10, ContentType: "photo", ContentCategory: "travel",
			Caption: "golden hour #travel", CreatedAt: time.Date(2026, 7, 25, 18, 0, 0, 0, time.UTC)},
	)
	hashtagRepo := newFakeHashtagRepo()
	hashtagRepo.contentTags[1] = []string{"travel"}
	profileRepo := newFakeUserProfileRepo()

	svc := NewRecommendationService(userRepo, contentRepo, hashtagRepo, profileRepo, pred)
	return svc, profileRepo
}

func seedProfile(profileRepo *fakeUserProfileRepo, avgEngagement float64) {
	profile := model.NewProfileData()
	// 发布时段：9 点与 14 点同频，20 点次之。
	// 9 点先出现，同频时必须排在前面。
	for i := 0; i < 5; i++ {
		profile.PostingHours.Add("9")
	}
	for i := 0; i < 5; i++ {
		profile.PostingHours.Add("14")
	}
	profile.PostingHours.Add("20")
	profile.PostingHours.Add("7")

	profile.ContentTypes.AddN("photo", 3)
	profile.ContentTypes.AddN("video", 1)
	profile.Categories.AddN("travel", 3)
	profile.Categories.AddN("food", 2)
	profile.Hashtags.AddN("travel", 4)
	profile.Hashtags.AddN("sunset", 2)
	profile.Hashtags.AddN("coffee", 2)
	profile.Hashtags.AddN("rain", 1)

	profile.AvgEngagementRate = avgEngagement
	profile.SampleCount = 10

	profileRepo.profiles[10] = &model.UserProfileSnapshot{UserID: 10, Profile: profile}
}

func TestGetRecommendation(t *testing.T) {
	svc, profileRepo := recommendationFixture(&fakePredictor{rate: 6.2})
	seedProfile(profileRepo, 5.5)

	res, err := svc.GetRecommendation(context.Background(), 10)
	require.NoError(t, err)

	// 每个维度取前三，时段同频时保持首次出现顺序
	require.Len(t, res.OptimalPostingTimes, 3)
	require.Equal(t, "09:00", res.OptimalPostingTimes[0].Value)
	require.Equal(t, "14:00", res.OptimalPostingTimes[1].Value)
	require.Equal(t, "20:00", res.OptimalPostingTimes[2].Value)

	require.Equal(t, "photo", res.RecommendedContentTypes[0].Value)
	require.Equal(t, "travel", res.RecommendedCategories[0].Value)

	require.Len(t, res.RecommendedHashtags, 3)
	require.Equal(t, "travel", res.RecommendedHashtags[0].Value)
	require.Equal(t, "sunset", res.RecommendedHashtags[1].Value)
	require.Equal(t, "coffee", res.RecommendedHashtags[2].Value)

	require.InDelta(t, 5.5, res.EngagementInsights.AvgEngagementRate, 1e-9)
	require.Equal(t, "Good", res.EngagementInsights.PerformanceLevel)
	require.NotNil(t, res.EngagementInsights.PredictedEngagementRate)
	require.InDelta(t, 6.2, *res.EngagementInsights.PredictedEngagementRate, 1e-9)
}

func TestGetRecommendation_SameInputSameOutput(t *testing.T) {
	svc, profileRepo := recommendationFixture(&fakePredictor{rate: 6.2})
	seedProfile(profileRepo, 5.5)

	first, err := svc.GetRecommendation(context.Background(), 10)
	require.NoError(t, err)
	second, err := svc.GetRecommendation(context.Background(), 10)
	require.NoError(t, err)

	for i := range first.OptimalPostingTimes {
		require.Equal(t, first.OptimalPostingTimes[i].Value, second.OptimalPostingTimes[i].Value)
	}
	for i := range first.RecommendedHashtags {
		require.Equal(t, first.RecommendedHashtags[i].Value, second.RecommendedHashtags[i].Value)
	}
}

func TestGetRecommendation_PredictorUnavailable(t *testing.T) {
	svc, profileRepo := recommendationFixture(&fakePredictor{err: errors.New("connection refused")})
	seedProfile(profileRepo, 5.5)

	res, err := svc.GetRecommendation(context.Background(), 10)
	require.NoError(t, err)

	// 预测失败只省略预测字段，其余推荐内容完整
	require.Nil(t, res.EngagementInsights.PredictedEngagementRate)
	require.Len(t, res.OptimalPostingTimes, 3)
	require.NotEmpty(t, res.EngagementInsights.PerformanceLevel)
}

func TestGetRecommendation_ProfileNotFound(t *testing.T) {
	svc, _ := recommendationFixture(&fakePredictor{})

	_, err := svc.GetRecommendation(context.Background(), 10)
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestClassifyPerformance(t *testing.T) {
	cases := []struct {
		rate     float64
		expected string
	}{
		{10.0, "Excellent"},
		{8.0, "Excellent"}, // 边界值归入高档
		{7.999, "Good"},
		{5.0, "Good"},
		{4.999, "Average"},
		{3.0, "Average"},
		{2.999, "Needs Improvement"},
		{0, "Needs Improvement"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.expected, ClassifyPerformance(tc.rate), "rate=%v", tc.rate)
	}
}
