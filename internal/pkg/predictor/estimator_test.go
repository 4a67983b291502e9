package predictor

import (
	"SocialPulse/internal/api/config"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixedMultiplierEstimator(t *testing.T) {
	e := NewFixedMultiplierEstimator(config.AnalyticsConfig{
		ReachMultiplier:       3.5,
		ImpressionsMultiplier: 1.6,
		ProfileViewRate:       0.2,
		WebsiteClickRate:      0.1,
	})

	reach := e.EstimateReach(100)
	require.InDelta(t, 350.0, reach, 1e-9)
	require.InDelta(t, 560.0, e.EstimateImpressions(reach), 1e-9)

	views := e.EstimateProfileViews(reach)
	require.InDelta(t, 70.0, views, 1e-9)
	require.InDelta(t, 7.0, e.EstimateWebsiteClicks(views), 1e-9)

	// 确定性：同一输入重复估算结果不变
	require.Equal(t, reach, e.EstimateReach(100))
}
