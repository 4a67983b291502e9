package predictor

import (
	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/util"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLabelEncoder(t *testing.T) {
	e := NewLabelEncoder()
	e.Fit([]string{"photo", "video", "carousel", "photo"})

	// 按字典序分配编码：carousel=0 photo=1 video=2
	code, err := e.Transform("photo")
	require.NoError(t, err)
	require.Equal(t, 1, code)

	code, err = e.Transform("carousel")
	require.NoError(t, err)
	require.Equal(t, 0, code)
}

func TestLabelEncoder_NotFitted(t *testing.T) {
	e := NewLabelEncoder()
	_, err := e.Transform("photo")
	require.ErrorIs(t, err, ErrEncoderNotFitted)
}

func TestLabelEncoder_UnknownLabel(t *testing.T) {
	e := NewLabelEncoder()
	e.Fit([]string{"photo"})

	_, err := e.Transform("story")
	require.ErrorIs(t, err, ErrUnknownLabel)
}

func TestLabelEncoder_EmptyLabelMapsToUnknown(t *testing.T) {
	e := NewLabelEncoder()
	e.Fit([]string{"travel", ""})

	fromEmpty, err := e.Transform("")
	require.NoError(t, err)
	fromUnknown, err := e.Transform("Unknown")
	require.NoError(t, err)
	require.Equal(t, fromUnknown, fromEmpty)
}

func TestFeatureBuilderBuild(t *testing.T) {
	b := NewFeatureBuilder(
		[]string{"photo", "video"},
		[]string{"travel", "food"},
		[]string{"personal", "business", "creator"},
	)

	// 2026-07-25 是周六
	post := &model.ContentPost{
		ID:              1,
		ContentType:     "photo",
		ContentCategory: "travel",
		Caption:         "golden hour #travel",
		Location:        util.PtrString("Lisbon"),
		IsPromoted:      true,
		CreatedAt:       time.Date(2026, 7, 25, 18, 0, 0, 0, time.UTC),
	}
	user := &model.User{ID: 10, AccountType: "creator", FollowerCount: 1000, FollowingCount: 150}

	fv, err := b.Build(post, user, 1)
	require.NoError(t, err)

	require.Equal(t, 18, fv.PostingHour)
	require.Equal(t, int(time.Saturday), fv.PostingDay)
	require.Equal(t, 7, fv.PostingMonth)
	require.Equal(t, 1, fv.IsWeekend)
	require.Equal(t, len("golden hour #travel"), fv.CaptionLength)
	require.Equal(t, 1, fv.HasHashtags)
	require.Equal(t, 1, fv.HasLocation)
	require.Equal(t, 1, fv.IsPromoted)
	require.Equal(t, 1000, fv.FollowerCount)
	require.Equal(t, 150, fv.FollowingCount)
}

func TestFeatureBuilderBuild_Weekday(t *testing.T) {
	b := NewFeatureBuilder([]string{"photo"}, []string{"travel"}, []string{"personal"})

	post := &model.ContentPost{
		ContentType:     "photo",
		ContentCategory: "travel",
		CreatedAt:       time.Date(2026, 7, 22, 9, 0, 0, 0, time.UTC), // 周三
	}
	user := &model.User{AccountType: "personal"}

	fv, err := b.Build(post, user, 0)
	require.NoError(t, err)

	require.Zero(t, fv.IsWeekend)
	require.Zero(t, fv.HasHashtags)
	require.Zero(t, fv.HasLocation)
	require.Zero(t, fv.IsPromoted)
}
