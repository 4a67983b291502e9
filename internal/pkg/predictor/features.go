package predictor

import (
	"errors"
	"sort"

	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/consts"
)

var ErrUnknownLabel = errors.New("标签未在编码器中注册")
var ErrEncoderNotFitted = errors.New("编码器尚未拟合")

// LabelEncoder 分类特征编码器。
// 必须先显式 Fit 再 Transform，未注册的标签直接报错，
// 不存在"首次调用自动训练"的隐式状态。
type LabelEncoder struct {
	classes map[string]int
	fitted  bool
}

func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{classes: make(map[string]int)}
}

// Fit 注册全部类别，按字典序分配编码
func (e *LabelEncoder) Fit(labels []string) {
	uniq := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if l == "" {
			l = consts.UnknownCategory
		}
		uniq[l] = struct{}{}
	}

	sorted := make([]string, 0, len(uniq))
	for l := range uniq {
		sorted = append(sorted, l)
	}
	sort.Strings(sorted)

	e.classes = make(map[string]int, len(sorted))
	for i, l := range sorted {
		e.classes[l] = i
	}
	e.fitted = true
}

// Transform 将标签转换为编码值
func (e *LabelEncoder) Transform(label string) (int, error) {
	if !e.fitted {
		return 0, ErrEncoderNotFitted
	}
	if label == "" {
		label = consts.UnknownCategory
	}
	code, ok := e.classes[label]
	if !ok {
		return 0, ErrUnknownLabel
	}
	return code, nil
}

// FeatureVector 互动率预测模型的输入特征
type FeatureVector struct {
	PostingHour    int     `json:"posting_hour"`
	PostingDay     int     `json:"posting_day"`
	PostingMonth   int     `json:"posting_month"`
	IsWeekend      int     `json:"is_weekend"`
	CaptionLength  int     `json:"caption_length"`
	HasHashtags    int     `json:"has_hashtags"`
	HasLocation    int     `json:"has_location"`
	IsPromoted     int     `json:"is_promoted"`
	FollowerCount  int     `json:"user_follower_count"`
	FollowingCount int     `json:"user_following_count"`
	ContentType    int     `json:"content_type"`
	Category       int     `json:"content_category"`
	AccountType    int     `json:"user_account_type"`
}

// FeatureBuilder 持有已拟合的编码器，由单一调用方独占
type FeatureBuilder struct {
	typeEncoder     *LabelEncoder
	categoryEncoder *LabelEncoder
	accountEncoder  *LabelEncoder
}

func NewFeatureBuilder(types, categories, accountTypes []string) *FeatureBuilder {
	b := &FeatureBuilder{
		typeEncoder:     NewLabelEncoder(),
		categoryEncoder: NewLabelEncoder(),
		accountEncoder:  NewLabelEncoder(),
	}
	b.typeEncoder.Fit(types)
	b.categoryEncoder.Fit(categories)
	b.accountEncoder.Fit(accountTypes)
	return b
}

// Build 从帖子与作者信息构造特征向量
func (b *FeatureBuilder) Build(post *model.ContentPost, user *model.User, hashtagCount int) (*FeatureVector, error) {
	contentType, err := b.typeEncoder.Transform(post.ContentType)
	if err != nil {
		return nil, err
	}
	category, err := b.categoryEncoder.Transform(post.ContentCategory)
	if err != nil {
		return nil, err
	}
	accountType, err := b.accountEncoder.Transform(user.AccountType)
	if err != nil {
		return nil, err
	}

	fv := &FeatureVector{
		PostingHour:    post.CreatedAt.Hour(),
		PostingDay:     int(post.CreatedAt.Weekday()),
		PostingMonth:   int(post.CreatedAt.Month()),
		CaptionLength:  len(post.Caption),
		FollowerCount:  user.FollowerCount,
		FollowingCount: user.FollowingCount,
		ContentType:    contentType,
		Category:       category,
		AccountType:    accountType,
	}

	if wd := post.CreatedAt.Weekday(); wd == 0 || wd == 6 {
		fv.IsWeekend = 1
	}
	if hashtagCount > 0 {
		fv.HasHashtags = 1
	}
	if post.Location != nil && *post.Location != "" {
		fv.HasLocation = 1
	}
	if post.IsPromoted {
		fv.IsPromoted = 1
	}

	return fv, nil
}
