package repository

import (
	"SocialPulse/internal/model"
	"context"

	"gorm.io/gorm"
)

type InteractionRepo interface {
	// GetInteractionCounts 全量统计单条内容的各类互动计数。
	// 每轮批处理重新统计，不做增量维护。
	GetInteractionCounts(ctx context.Context, contentID uint64) (*model.InteractionCounts, error)
	// GetUserReceivedTotals 统计用户名下全部内容收到的互动总量
	GetUserReceivedTotals(ctx context.Context, userID uint64) (likes, comments, shares int64, err error)
}

type interactionRepoImpl struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepo {
	return &interactionRepoImpl{db: db}
}

func (r *interactionRepoImpl) GetInteractionCounts(ctx context.Context, contentID uint64) (*model.InteractionCounts, error) {
	counts := &model.InteractionCounts{ContentID: contentID}

	type table struct {
		m    interface{}
		dest *int64
	}
	tables := []table{
		{&model.Like{}, &counts.Likes},
		{&model.Comment{}, &counts.Comments},
		{&model.Share{}, &counts.Shares},
		{&model.Save{}, &counts.Saves},
		{&model.ProfileVisit{}, &counts.ProfileVisits},
		{&model.WebsiteClick{}, &counts.WebsiteClicks},
	}

	for _, t := range tables {
		err := r.db.WithContext(ctx).
			Model(t.m).
			Where("content_id = ?", contentID).
			Count(t.dest).Error
		if err != nil {
			return nil, err
		}
	}

	return counts, nil
}

func (r *interactionRepoImpl) GetUserReceivedTotals(ctx context.Context, userID uint64) (likes, comments, shares int64, err error) {
	sub := r.db.Model(&model.ContentPost{}).
		Select("id").
		Where("user_id = ? AND is_deleted = 0", userID)

	if err = r.db.WithContext(ctx).Model(&model.Like{}).
		Where("content_id IN (?)", sub).Count(&likes).Error; err != nil {
		return
	}
	if err = r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("content_id IN (?)", sub).Count(&comments).Error; err != nil {
		return
	}
	err = r.db.WithContext(ctx).Model(&model.Share{}).
		Where("content_id IN (?)", sub).Count(&shares).Error
	return
}
