package predictor

import "SocialPulse/internal/api/config"

// ReachEstimator 由点赞规模推算触达与曝光。
// 原型实现用随机倍率模拟这两个值，结果不可复现；
// 这里收敛为注入式估算器，默认实现使用固定倍率。
type ReachEstimator interface {
	EstimateReach(likes int64) float64
	EstimateImpressions(reach float64) float64
	EstimateProfileViews(reach float64) float64
	EstimateWebsiteClicks(profileViews float64) float64
}

type FixedMultiplierEstimator struct {
	cfg config.AnalyticsConfig
}

func NewFixedMultiplierEstimator(cfg config.AnalyticsConfig) *FixedMultiplierEstimator {
	return &FixedMultiplierEstimator{cfg: cfg}
}

func (e *FixedMultiplierEstimator) EstimateReach(likes int64) float64 {
	return float64(likes) * e.cfg.ReachMultiplier
}

func (e *FixedMultiplierEstimator) EstimateImpressions(reach float64) float64 {
	return reach * e.cfg.ImpressionsMultiplier
}

func (e *FixedMultiplierEstimator) EstimateProfileViews(reach float64) float64 {
	return reach * e.cfg.ProfileViewRate
}

func (e *FixedMultiplierEstimator) EstimateWebsiteClicks(profileViews float64) float64 {
	return profileViews * e.cfg.WebsiteClickRate
}
