package service

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/consts"
	"SocialPulse/internal/pkg/predictor"
	"SocialPulse/internal/pkg/redis"
	"SocialPulse/internal/pkg/util"
	"SocialPulse/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type UserMetricService interface {
	// SyncUserDailyMetric 重算并落库用户当日的表现快照
	SyncUserDailyMetric(ctx context.Context, userID uint64, now time.Time) error
	// GetUserMetricsBy7Days 获取截至 now 最近7天全维度趋势数据
	GetUserMetricsBy7Days(ctx context.Context, userID uint64, now time.Time) (*dto.UserEngagementTrendDTO, error)
	// GetUserMetricsBy30Days 获取截至 now 最近30天全维度趋势数据
	GetUserMetricsBy30Days(ctx context.Context, userID uint64, now time.Time) (*dto.UserEngagementTrendDTO, error)
}

type userMetricServiceImpl struct {
	userRepo        repository.UserRepo
	contentRepo     repository.ContentRepo
	interactionRepo repository.InteractionRepo
	contentMetric   repository.ContentMetricRepo
	userMetricRepo  repository.UserEngagementMetricRepo
	estimator       predictor.ReachEstimator
}

func NewUserMetricService(
	userRepo repository.UserRepo,
	contentRepo repository.ContentRepo,
	interactionRepo repository.InteractionRepo,
	contentMetric repository.ContentMetricRepo,
	userMetricRepo repository.UserEngagementMetricRepo,
	estimator predictor.ReachEstimator,
) UserMetricService {
	return &userMetricServiceImpl{
		userRepo:        userRepo,
		contentRepo:     contentRepo,
		interactionRepo: interactionRepo,
		contentMetric:   contentMetric,
		userMetricRepo:  userMetricRepo,
		estimator:       estimator,
	}
}

// SyncUserDailyMetric 实现：汇总用户名下全部内容的互动与派生指标，
// 主页访问与外链点击由估算器从触达量推出，写入当日快照
func (s *userMetricServiceImpl) SyncUserDailyMetric(ctx context.Context, userID uint64, now time.Time) error {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	today := util.GetMidnight(now)

	postsCreated, err := s.contentRepo.CountPostsCreatedBetween(ctx, userID, today, today.AddDate(0, 0, 1))
	if err != nil {
		return err
	}

	likes, comments, shares, err := s.interactionRepo.GetUserReceivedTotals(ctx, userID)
	if err != nil {
		return err
	}

	posts, err := s.contentRepo.GetUserPosts(ctx, userID)
	if err != nil {
		return err
	}

	var avgEngagement, reach, impressions float64
	if len(posts) > 0 {
		ids := make([]uint64, 0, len(posts))
		for _, p := range posts {
			ids = append(ids, p.ID)
		}
		metrics, err := s.contentMetric.GetByContentIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(metrics) > 0 {
			var sum float64
			for _, m := range metrics {
				sum += m.EngagementRate
				reach += m.ReachCount
				impressions += m.ImpressionsCount
			}
			avgEngagement = sum / float64(len(metrics))
		}
	}

	profileViews := s.estimator.EstimateProfileViews(reach)
	websiteClicks := s.estimator.EstimateWebsiteClicks(profileViews)

	metric := &model.UserEngagementMetric{
		UserID:            userID,
		MetricDate:        today,
		PostsCreated:      int(postsCreated),
		LikesReceived:     likes,
		CommentsReceived:  comments,
		SharesReceived:    shares,
		AvgEngagementRate: avgEngagement,
		ReachCount:        reach,
		ImpressionsCount:  impressions,
		ProfileViews:      profileViews,
		WebsiteClicks:     websiteClicks,
	}

	if err = s.userMetricRepo.SaveOrUpdateMetric(ctx, metric); err != nil {
		return err
	}

	uid := strconv.FormatUint(userID, 10)
	_ = redis.DeleteKey(ctx, consts.UserMetrics7DaysKey+uid)
	_ = redis.DeleteKey(ctx, consts.UserMetrics30DaysKey+uid)

	log.InfoContext(ctx, "user daily metric synced", "user_id", userID, "date", today.Format(time.DateOnly))

	return nil
}

func (s *userMetricServiceImpl) GetUserMetricsBy7Days(ctx context.Context, userID uint64, now time.Time) (*dto.UserEngagementTrendDTO, error) {
	key := consts.UserMetrics7DaysKey + strconv.FormatUint(userID, 10)
	return s.getUserMetrics(ctx, userID, key, 7, now)
}

func (s *userMetricServiceImpl) GetUserMetricsBy30Days(ctx context.Context, userID uint64, now time.Time) (*dto.UserEngagementTrendDTO, error) {
	key := consts.UserMetrics30DaysKey + strconv.FormatUint(userID, 10)
	return s.getUserMetrics(ctx, userID, key, 30, now)
}

// getUserMetrics 聚合查询与数据平滑逻辑：
// 窗口由调用方传入的 now 决定，
// 缺失的日期沿用上一个有效快照，窗口前的最近快照作兜底基线
func (s *userMetricServiceImpl) getUserMetrics(ctx context.Context, userID uint64, key string, days int, now time.Time) (*dto.UserEngagementTrendDTO, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
		var res dto.UserEngagementTrendDTO
		_ = json.Unmarshal([]byte(val), &res)
		return &res, nil
	}

	startTime := util.GetMidnight(now).AddDate(0, 0, -(days - 1))

	rawData, err := s.userMetricRepo.GetMetricsSince(ctx, userID, startTime, util.GetMidnight(now).AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	var baseline *model.UserEngagementMetric
	if len(rawData) == 0 || !rawData[0].MetricDate.Equal(startTime) {
		baseline, _ = s.userMetricRepo.GetLatestMetricBefore(ctx, userID, startTime)
	} else {
		baseline = rawData[0]
	}

	dataMap := make(map[string]*model.UserEngagementMetric)
	for _, m := range rawData {
		dataMap[m.MetricDate.Format(time.DateOnly)] = m
	}

	res := &dto.UserEngagementTrendDTO{
		UserID:         userID,
		Days:           days,
		Likes:          make([]*dto.MetricPointDTO, 0, days),
		Comments:       make([]*dto.MetricPointDTO, 0, days),
		Shares:         make([]*dto.MetricPointDTO, 0, days),
		EngagementRate: make([]*dto.MetricPointDTO, 0, days),
		Reach:          make([]*dto.MetricPointDTO, 0, days),
	}

	var lastValid = baseline

	for i := days - 1; i >= 0; i-- {
		currentDate := util.GetMidnight(now.AddDate(0, 0, -i))
		dateStr := currentDate.Format(time.DateOnly)

		var likes, comments, shares, engagement, reach float64
		if val, ok := dataMap[dateStr]; ok {
			likes, comments, shares = float64(val.LikesReceived), float64(val.CommentsReceived), float64(val.SharesReceived)
			engagement, reach = val.AvgEngagementRate, val.ReachCount
			lastValid = val
		} else if lastValid != nil {
			likes, comments, shares = float64(lastValid.LikesReceived), float64(lastValid.CommentsReceived), float64(lastValid.SharesReceived)
			engagement, reach = lastValid.AvgEngagementRate, lastValid.ReachCount
		}

		res.Likes = append(res.Likes, &dto.MetricPointDTO{Date: dateStr, Value: likes})
		res.Comments = append(res.Comments, &dto.MetricPointDTO{Date: dateStr, Value: comments})
		res.Shares = append(res.Shares, &dto.MetricPointDTO{Date: dateStr, Value: shares})
		res.EngagementRate = append(res.EngagementRate, &dto.MetricPointDTO{Date: dateStr, Value: engagement})
		res.Reach = append(res.Reach, &dto.MetricPointDTO{Date: dateStr, Value: reach})
	}

	_ = redis.SetWithMidnightExpiration(ctx, key, res)

	return res, nil
}
