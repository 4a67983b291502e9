package repository

import (
	"SocialPulse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ContentRepo interface {
	GetPost(ctx context.Context, id uint64) (*model.ContentPost, error)
	GetPostByIds(ctx context.Context, ids []uint64) ([]*model.ContentPost, error)
	// ListActivePostIDs 返回全部未删除内容的 id，批处理全量重算用
	ListActivePostIDs(ctx context.Context) ([]uint64, error)
	// GetUserPosts 按发布时间升序返回用户的全部内容，保证画像构建的遍历顺序确定
	GetUserPosts(ctx context.Context, userID uint64) ([]*model.ContentPost, error)
	// ListUserIDsWithContent 返回至少发布过一条内容的用户 id
	ListUserIDsWithContent(ctx context.Context) ([]uint64, error)
	UpdatePostCounts(ctx context.Context, id uint64, likes, comments, shares, saves int64) error
	CountPostsCreatedBetween(ctx context.Context, userID uint64, from, to time.Time) (int64, error)
}

type contentRepoImpl struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepo {
	return &contentRepoImpl{db: db}
}

func (r *contentRepoImpl) GetPost(ctx context.Context, id uint64) (*model.ContentPost, error) {
	var post model.ContentPost
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = 0", id).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *contentRepoImpl) GetPostByIds(ctx context.Context, ids []uint64) ([]*model.ContentPost, error) {
	posts := make([]*model.ContentPost, 0, len(ids))
	err := r.db.WithContext(ctx).
		Where("id IN ? AND is_deleted = 0", ids).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *contentRepoImpl) ListActivePostIDs(ctx context.Context) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := r.db.WithContext(ctx).
		Model(&model.ContentPost{}).
		Where("is_deleted = 0").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *contentRepoImpl) GetUserPosts(ctx context.Context, userID uint64) ([]*model.ContentPost, error) {
	posts := make([]*model.ContentPost, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = 0", userID).
		Order("created_at ASC, id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *contentRepoImpl) ListUserIDsWithContent(ctx context.Context) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := r.db.WithContext(ctx).
		Model(&model.ContentPost{}).
		Distinct("user_id").
		Where("is_deleted = 0").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *contentRepoImpl) UpdatePostCounts(ctx context.Context, id uint64, likes, comments, shares, saves int64) error {
	return r.db.WithContext(ctx).
		Model(&model.ContentPost{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"likes_count":    likes,
			"comments_count": comments,
			"shares_count":   shares,
			"saves_count":    saves,
		}).Error
}

func (r *contentRepoImpl) CountPostsCreatedBetween(ctx context.Context, userID uint64, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ContentPost{}).
		Where("user_id = ? AND is_deleted = 0 AND created_at >= ? AND created_at < ?", userID, from, to).
		Count(&count).Error
	return count, err
}
