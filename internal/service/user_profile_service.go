package service

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/consts"
	"SocialPulse/internal/pkg/redis"
	"SocialPulse/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"
)

type UserProfileService interface {
	// BuildUserProfile 从用户历史内容重建行为画像快照。
	// 无历史内容的用户不产出画像，返回 ErrNoHistory。
	BuildUserProfile(ctx context.Context, userID uint64, now time.Time) (*model.UserProfileSnapshot, error)
	// GetUserProfile 查询用户画像快照
	GetUserProfile(ctx context.Context, userID uint64) (*model.UserProfileSnapshot, error)
	// RebuildAllProfiles 全量重建画像，单个用户失败不中断整批
	RebuildAllProfiles(ctx context.Context, now time.Time) (*dto.BatchReportDTO, error)
}

type userProfileServiceImpl struct {
	userRepo          repository.UserRepo
	contentRepo       repository.ContentRepo
	contentMetricRepo repository.ContentMetricRepo
	hashtagRepo       repository.HashtagRepo
	profileRepo       repository.UserProfileRepo
}

func NewUserProfileService(
	userRepo repository.UserRepo,
	contentRepo repository.ContentRepo,
	contentMetricRepo repository.ContentMetricRepo,
	hashtagRepo repository.HashtagRepo,
	profileRepo repository.UserProfileRepo,
) UserProfileService {
	return &userProfileServiceImpl{
		userRepo:          userRepo,
		contentRepo:       contentRepo,
		contentMetricRepo: contentMetricRepo,
		hashtagRepo:       hashtagRepo,
		profileRepo:       profileRepo,
	}
}

// BuildUserProfile 实现：按发布时间升序遍历历史内容，
// 累计内容类型、分类、发布时段与话题的频次分布，
// 平均互动率取自内容派生指标的均值。
// 分类为空的内容统一计入 Unknown。
func (s *userProfileServiceImpl) BuildUserProfile(ctx context.Context, userID uint64, now time.Time) (*model.UserProfileSnapshot, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	posts, err := s.contentRepo.GetUserPosts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		// 空画像不落库，同时清掉可能残留的旧快照
		if err = s.profileRepo.DeleteProfile(ctx, userID); err != nil {
			return nil, err
		}
		return nil, ErrNoHistory
	}

	profile := model.NewProfileData()
	postIDs := make([]uint64, 0, len(posts))

	for _, post := range posts {
		postIDs = append(postIDs, post.ID)

		profile.ContentTypes.Add(post.ContentType)

		category := post.ContentCategory
		if category == "" {
			category = consts.UnknownCategory
		}
		profile.Categories.Add(category)

		profile.PostingHours.Add(strconv.Itoa(post.CreatedAt.Hour()))

		tags, err := s.hashtagRepo.ListTagNamesOfContent(ctx, post.ID)
		if err != nil {
			return nil, err
		}
		for _, tag := range tags {
			profile.Hashtags.Add(tag)
		}
	}

	metrics, err := s.contentMetricRepo.GetByContentIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	if len(metrics) > 0 {
		var sum float64
		for _, m := range metrics {
			sum += m.EngagementRate
		}
		profile.AvgEngagementRate = sum / float64(len(metrics))
	}
	profile.SampleCount = len(posts)

	snapshot := &model.UserProfileSnapshot{
		UserID:    userID,
		Profile:   profile,
		UpdatedAt: now,
	}
	if err = s.profileRepo.SaveProfile(ctx, snapshot); err != nil {
		return nil, err
	}

	// 画像变了，推荐结果随之失效
	_ = redis.DeleteKey(ctx, consts.UserRecommendationKey+strconv.FormatUint(userID, 10))

	return snapshot, nil
}

func (s *userProfileServiceImpl) GetUserProfile(ctx context.Context, userID uint64) (*model.UserProfileSnapshot, error) {
	snapshot, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrProfileNotFound
	}
	return snapshot, nil
}

// RebuildAllProfiles 实现：对所有发布过内容的用户重建画像
func (s *userProfileServiceImpl) RebuildAllProfiles(ctx context.Context, now time.Time) (*dto.BatchReportDTO, error) {
	userIDs, err := s.contentRepo.ListUserIDsWithContent(ctx)
	if err != nil {
		return nil, err
	}

	report := dto.NewBatchReport()
	for _, uid := range userIDs {
		if _, err := s.BuildUserProfile(ctx, uid, now); err != nil {
			log.WarnContext(ctx, "build user profile failed", "user_id", uid, "error", err)
			report.AddFailure(uid, err)
			continue
		}
		report.AddSuccess()
	}

	log.InfoContext(ctx, "user profiles rebuilt",
		"total", report.Total, "succeeded", report.Succeeded, "failed", len(report.Failures))

	return report, nil
}
