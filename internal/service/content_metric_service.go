package service

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/consts"
	"SocialPulse/internal/pkg/predictor"
	"SocialPulse/internal/pkg/redis"
	"SocialPulse/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

// 派生指标公式系数
const (
	viralityShareWeight   = 0.4
	viralityCommentWeight = 0.3
	viralitySaveWeight    = 0.3
)

type ContentMetricService interface {
	// ComputeMetric 根据互动计数计算内容派生指标，纯计算不触库
	ComputeMetric(counts *model.InteractionCounts, now time.Time) (*model.ContentMetric, error)
	// SyncContentMetric 重算并落库单条内容的派生指标
	SyncContentMetric(ctx context.Context, contentID uint64, now time.Time) error
	// RebuildAllMetrics 全量重算派生指标表，单条失败不中断整批
	RebuildAllMetrics(ctx context.Context, now time.Time) (*dto.BatchReportDTO, error)
	// GetContentMetric 查询单条内容的派生指标
	GetContentMetric(ctx context.Context, contentID uint64) (*dto.ContentMetricDTO, error)
}

type contentMetricServiceImpl struct {
	contentRepo     repository.ContentRepo
	interactionRepo repository.InteractionRepo
	metricRepo      repository.ContentMetricRepo
	estimator       predictor.ReachEstimator
}

func NewContentMetricService(
	contentRepo repository.ContentRepo,
	interactionRepo repository.InteractionRepo,
	metricRepo repository.ContentMetricRepo,
	estimator predictor.ReachEstimator,
) ContentMetricService {
	return &contentMetricServiceImpl{
		contentRepo:     contentRepo,
		interactionRepo: interactionRepo,
		metricRepo:      metricRepo,
		estimator:       estimator,
	}
}

// ComputeMetric 实现：
// 互动率 = (点赞+评论+分享) / max(点赞, 1) * 100，点赞为 0 时分母取 1；
// 传播分 = 0.4*分享 + 0.3*评论 + 0.3*收藏；
// 触达与曝光由注入的估算器从点赞数推出。
// 零互动内容返回全零指标记录，而不是缺失记录。
func (s *contentMetricServiceImpl) ComputeMetric(counts *model.InteractionCounts, now time.Time) (*model.ContentMetric, error) {
	if counts == nil {
		return nil, ErrParamInvalid
	}
	if counts.HasNegative() {
		return nil, ErrNegativeCount
	}

	engagementRate := float64(counts.Likes+counts.Comments+counts.Shares) /
		float64(max(counts.Likes, 1)) * 100

	viralityScore := viralityShareWeight*float64(counts.Shares) +
		viralityCommentWeight*float64(counts.Comments) +
		viralitySaveWeight*float64(counts.Saves)

	reach := s.estimator.EstimateReach(counts.Likes)
	impressions := s.estimator.EstimateImpressions(reach)

	return &model.ContentMetric{
		ContentID:        counts.ContentID,
		EngagementRate:   engagementRate,
		ViralityScore:    viralityScore,
		ReachCount:       reach,
		ImpressionsCount: impressions,
		ComputedAt:       now,
	}, nil
}

// SyncContentMetric 实现：全量统计互动计数后重算指标并 Upsert，
// 同时把计数刷回 content_posts 的冗余列
func (s *contentMetricServiceImpl) SyncContentMetric(ctx context.Context, contentID uint64, now time.Time) error {
	post, err := s.contentRepo.GetPost(ctx, contentID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrContentNotFound
	}

	counts, err := s.interactionRepo.GetInteractionCounts(ctx, contentID)
	if err != nil {
		return err
	}

	metric, err := s.ComputeMetric(counts, now)
	if err != nil {
		return err
	}

	if err = s.metricRepo.SaveOrUpdateMetric(ctx, metric); err != nil {
		return err
	}

	if err = s.contentRepo.UpdatePostCounts(ctx, contentID,
		counts.Likes, counts.Comments, counts.Shares, counts.Saves); err != nil {
		return err
	}

	_ = redis.DeleteKey(ctx, consts.ContentMetricKey+strconv.FormatUint(contentID, 10))

	return nil
}

// RebuildAllMetrics 实现：逐条重算后整表覆盖。
// 失败的内容记入报告并跳过，不写入本轮结果。
func (s *contentMetricServiceImpl) RebuildAllMetrics(ctx context.Context, now time.Time) (*dto.BatchReportDTO, error) {
	ids, err := s.contentRepo.ListActivePostIDs(ctx)
	if err != nil {
		return nil, err
	}

	report := dto.NewBatchReport()
	metrics := make([]*model.ContentMetric, 0, len(ids))

	for _, id := range ids {
		counts, err := s.interactionRepo.GetInteractionCounts(ctx, id)
		if err != nil {
			log.WarnContext(ctx, "count interactions failed", "content_id", id, "error", err)
			report.AddFailure(id, err)
			continue
		}

		metric, err := s.ComputeMetric(counts, now)
		if err != nil {
			log.WarnContext(ctx, "compute content metric failed", "content_id", id, "error", err)
			report.AddFailure(id, err)
			continue
		}

		if err = s.contentRepo.UpdatePostCounts(ctx, id,
			counts.Likes, counts.Comments, counts.Shares, counts.Saves); err != nil {
			report.AddFailure(id, err)
			continue
		}

		metrics = append(metrics, metric)
		report.AddSuccess()

		_ = redis.DeleteKey(ctx, consts.ContentMetricKey+strconv.FormatUint(id, 10))
	}

	if err = s.metricRepo.ReplaceAll(ctx, metrics); err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "content metrics rebuilt",
		"total", report.Total, "succeeded", report.Succeeded, "failed", len(report.Failures))

	return report, nil
}

// GetContentMetric 实现：派生指标走缓存或指标表，
// 四项互动计数每次查询都取实时值，反映两次重算之间的增量
func (s *contentMetricServiceImpl) GetContentMetric(ctx context.Context, contentID uint64) (*dto.ContentMetricDTO, error) {
	key := consts.ContentMetricKey + strconv.FormatUint(contentID, 10)

	var res *dto.ContentMetricDTO
	if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
		res = &dto.ContentMetricDTO{}
		_ = json.Unmarshal([]byte(val), res)
	}

	if res == nil {
		post, err := s.contentRepo.GetPost(ctx, contentID)
		if err != nil {
			return nil, err
		}
		if post == nil {
			return nil, ErrContentNotFound
		}

		metric, err := s.metricRepo.GetByContentID(ctx, contentID)
		if err != nil {
			return nil, err
		}
		if metric == nil {
			return nil, ErrMetricNotFound
		}

		res = &dto.ContentMetricDTO{}
		if err = copier.Copy(res, metric); err != nil {
			return nil, err
		}
		res.ComputedAt = metric.ComputedAt.Format(time.DateTime)

		_ = redis.SetWithExpiration(ctx, key, mustMarshal(res), 30*time.Minute)
	}

	counts, err := s.getLiveCounts(ctx, contentID)
	if err != nil {
		return nil, err
	}
	res.LikesCount = counts.Likes
	res.CommentsCount = counts.Comments
	res.SharesCount = counts.Shares
	res.SavesCount = counts.Saves

	return res, nil
}

// 实时计数键的种子有效期，CDC 增量在此期间持续续写
const liveCountExpiration = 7 * 24 * time.Hour

// getLiveCounts 读取内容的实时互动计数：
// 四个计数键全部命中时直接返回，否则回源落库统计并种子化计数键，
// 之后由 CDC 消费侧在键上做增量维护
func (s *contentMetricServiceImpl) getLiveCounts(ctx context.Context, contentID uint64) (*model.InteractionCounts, error) {
	id := strconv.FormatUint(contentID, 10)
	keys := [4]string{
		consts.ContentLikeKey + id,
		consts.ContentCommentKey + id,
		consts.ContentShareKey + id,
		consts.ContentSaveKey + id,
	}

	var vals [4]int64
	hit := true
	for i, k := range keys {
		v, err := redis.GetInt64(ctx, k)
		if err != nil {
			hit = false
			break
		}
		vals[i] = v
	}
	if hit {
		return &model.InteractionCounts{
			ContentID: contentID,
			Likes:     vals[0],
			Comments:  vals[1],
			Shares:    vals[2],
			Saves:     vals[3],
		}, nil
	}

	counts, err := s.interactionRepo.GetInteractionCounts(ctx, contentID)
	if err != nil {
		return nil, err
	}

	seeds := [4]int64{counts.Likes, counts.Comments, counts.Shares, counts.Saves}
	for i, k := range keys {
		_ = redis.SetWithExpiration(ctx, k, seeds[i], liveCountExpiration)
	}

	return counts, nil
}

// mustMarshal 缓存写入前序列化，失败时返回空串让缓存写入退化为无操作
func mustMarshal(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
