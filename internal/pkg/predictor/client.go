package predictor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"SocialPulse/internal/api/config"

	"github.com/go-resty/resty/v2"
)

// ErrPredictorUnavailable 表示预测服务不可用
var ErrPredictorUnavailable = errors.New("预测服务不可用")

// EngagementPredictor 外部回归模型的调用契约。
// 模型训练与序列化在服务外部完成，这里只约定输入输出。
type EngagementPredictor interface {
	PredictEngagementRate(ctx context.Context, fv *FeatureVector) (float64, error)
}

type httpPredictor struct {
	client *resty.Client
}

type predictResponse struct {
	EngagementRate float64 `json:"engagement_rate"`
}

func NewHTTPPredictor(cfg config.PredictorConfig) EngagementPredictor {
	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetHeader("Authorization", "Bearer "+cfg.ApiKey)

	return &httpPredictor{client: client}
}

func (p *httpPredictor) PredictEngagementRate(ctx context.Context, fv *FeatureVector) (float64, error) {
	var res predictResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(fv).
		SetResult(&res).
		Post("/predict")
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPredictorUnavailable, err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("%w: status %d", ErrPredictorUnavailable, resp.StatusCode())
	}

	return res.EngagementRate, nil
}
