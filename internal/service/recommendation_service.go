package service

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/consts"
	"SocialPulse/internal/pkg/predictor"
	"SocialPulse/internal/pkg/redis"
	"SocialPulse/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"strconv"

	"github.com/goccy/go-json"
)

// 互动率表现分级阈值（边界值取高档）
const (
	performanceExcellentMin = 8.0
	performanceGoodMin      = 5.0
	performanceAverageMin   = 3.0
)

type RecommendationService interface {
	// GetRecommendation 基于用户画像生成内容策略推荐
	GetRecommendation(ctx context.Context, userID uint64) (*dto.RecommendationDTO, error)
}

type recommendationServiceImpl struct {
	userRepo    repository.UserRepo
	contentRepo repository.ContentRepo
	hashtagRepo repository.HashtagRepo
	profileRepo repository.UserProfileRepo
	predictor   predictor.EngagementPredictor
}

func NewRecommendationService(
	userRepo repository.UserRepo,
	contentRepo repository.ContentRepo,
	hashtagRepo repository.HashtagRepo,
	profileRepo repository.UserProfileRepo,
	engagementPredictor predictor.EngagementPredictor,
) RecommendationService {
	return &recommendationServiceImpl{
		userRepo:    userRepo,
		contentRepo: contentRepo,
		hashtagRepo: hashtagRepo,
		profileRepo: profileRepo,
		predictor:   engagementPredictor,
	}
}

// GetRecommendation 实现：各维度取画像频次分布的前三项，
// 同频次条目保持首次出现顺序，结果因此可复现。
// 预测服务不可用时省略预测字段，不影响其余推荐内容。
func (s *recommendationServiceImpl) GetRecommendation(ctx context.Context, userID uint64) (*dto.RecommendationDTO, error) {
	key := consts.UserRecommendationKey + strconv.FormatUint(userID, 10)
	if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
		var res dto.RecommendationDTO
		_ = json.Unmarshal([]byte(val), &res)
		return &res, nil
	}

	snapshot, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrProfileNotFound
	}
	profile := snapshot.Profile

	res := &dto.RecommendationDTO{
		UserID:                  userID,
		OptimalPostingTimes:     rankedHours(profile.PostingHours.TopK(consts.RecommendationTopK)),
		RecommendedContentTypes: rankedItems(profile.ContentTypes.TopK(consts.RecommendationTopK)),
		RecommendedCategories:   rankedItems(profile.Categories.TopK(consts.RecommendationTopK)),
		RecommendedHashtags:     rankedItems(profile.Hashtags.TopK(consts.RecommendationTopK)),
		EngagementInsights: &dto.EngagementInsightsDTO{
			AvgEngagementRate: profile.AvgEngagementRate,
			PerformanceLevel:  ClassifyPerformance(profile.AvgEngagementRate),
		},
	}

	if predicted, err := s.predictNextPost(ctx, userID, &profile); err == nil {
		res.EngagementInsights.PredictedEngagementRate = &predicted
	} else {
		log.WarnContext(ctx, "engagement prediction skipped", "user_id", userID, "error", err)
	}

	_ = redis.SetWithMidnightExpiration(ctx, key, res)

	return res, nil
}

// predictNextPost 以用户最近一篇内容为样本调用外部回归模型。
// 编码器在画像中观测到的标签上拟合，保证 Transform 不会遇到未知标签。
func (s *recommendationServiceImpl) predictNextPost(ctx context.Context, userID uint64, profile *model.ProfileData) (float64, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	posts, err := s.contentRepo.GetUserPosts(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(posts) == 0 {
		return 0, ErrNoHistory
	}
	latest := posts[len(posts)-1]

	hashtagCount, err := s.hashtagRepo.CountHashtagsOfContent(ctx, latest.ID)
	if err != nil {
		return 0, err
	}

	builder := predictor.NewFeatureBuilder(
		entryKeys(profile.ContentTypes),
		entryKeys(profile.Categories),
		[]string{consts.AccountTypePersonal, consts.AccountTypeBusiness, consts.AccountTypeCreator},
	)
	fv, err := builder.Build(latest, user, int(hashtagCount))
	if err != nil {
		return 0, err
	}

	return s.predictor.PredictEngagementRate(ctx, fv)
}

// ClassifyPerformance 互动率表现分级，阈值按 >= 归入高档
func ClassifyPerformance(rate float64) string {
	switch {
	case rate >= performanceExcellentMin:
		return consts.PerformanceExcellent
	case rate >= performanceGoodMin:
		return consts.PerformanceGood
	case rate >= performanceAverageMin:
		return consts.PerformanceAverage
	default:
		return consts.PerformanceNeedsImprovement
	}
}

func rankedItems(entries []model.FrequencyEntry) []*dto.RankedItemDTO {
	out := make([]*dto.RankedItemDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, &dto.RankedItemDTO{Value: e.Key, Count: e.Count})
	}
	return out
}

// rankedHours 将小时键格式化为 HH:00 的时段表示
func rankedHours(entries []model.FrequencyEntry) []*dto.RankedItemDTO {
	out := make([]*dto.RankedItemDTO, 0, len(entries))
	for _, e := range entries {
		hour, err := strconv.Atoi(e.Key)
		if err != nil {
			out = append(out, &dto.RankedItemDTO{Value: e.Key, Count: e.Count})
			continue
		}
		out = append(out, &dto.RankedItemDTO{Value: fmt.Sprintf("%02d:00", hour), Count: e.Count})
	}
	return out
}

func entryKeys(m *model.FrequencyMap) []string {
	entries := m.Entries()
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys
}
