package repository

import (
	"SocialPulse/internal/model"
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HashtagRepo interface {
	GetOrCreateTags(ctx context.Context, tagNames []string) ([]*model.Hashtag, error)
	LinkContent(ctx context.Context, contentID uint64, hashtagIDs []uint64) error
	ListAll(ctx context.Context) ([]*model.Hashtag, error)
	// GetContentIDsInWindow 返回窗口 [from, to) 内使用该标签的内容 id（含重复使用）
	GetContentIDsInWindow(ctx context.Context, hashtagID uint64, from, to time.Time) ([]uint64, error)
	CountHashtagsOfContent(ctx context.Context, contentID uint64) (int64, error)
	// ListTagNamesOfContent 按标签 id 升序返回该内容使用的标签名
	ListTagNamesOfContent(ctx context.Context, contentID uint64) ([]string, error)
	TouchLastUsed(ctx context.Context, hashtagID uint64, usedAt time.Time) error
}

type hashtagRepoImpl struct {
	db *gorm.DB
}

func NewHashtagRepository(db *gorm.DB) HashtagRepo {
	return &hashtagRepoImpl{db: db}
}

func (r *hashtagRepoImpl) GetOrCreateTags(ctx context.Context, tagNames []string) ([]*model.Hashtag, error) {
	tags := make([]*model.Hashtag, 0, len(tagNames))
	for _, name := range tagNames {
		var tag model.Hashtag
		err := r.db.WithContext(ctx).
			Where("tag_name = ?", name).
			First(&tag).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			tag = model.Hashtag{TagName: name}
			if err = r.db.WithContext(ctx).Create(&tag).Error; err != nil {
				// 并发创建撞唯一索引时回读已存在的记录
				var mysqlErr *mysql.MySQLError
				if !errors.As(err, &mysqlErr) || mysqlErr.Number != 1062 {
					return nil, err
				}
				if err = r.db.WithContext(ctx).
					Where("tag_name = ?", name).
					First(&tag).Error; err != nil {
					return nil, err
				}
			}
		}
		tags = append(tags, &tag)
	}
	return tags, nil
}

func (r *hashtagRepoImpl) LinkContent(ctx context.Context, contentID uint64, hashtagIDs []uint64) error {
	if len(hashtagIDs) == 0 {
		return nil
	}
	links := make([]*model.ContentHashtag, 0, len(hashtagIDs))
	for _, hid := range hashtagIDs {
		links = append(links, &model.ContentHashtag{ContentID: contentID, HashtagID: hid})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(links).Error
}

func (r *hashtagRepoImpl) ListAll(ctx context.Context) ([]*model.Hashtag, error) {
	tags := make([]*model.Hashtag, 0)
	err := r.db.WithContext(ctx).Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *hashtagRepoImpl) GetContentIDsInWindow(ctx context.Context, hashtagID uint64, from, to time.Time) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := r.db.WithContext(ctx).
		Model(&model.ContentHashtag{}).
		Joins("JOIN content_posts cp ON cp.id = content_hashtags.content_id").
		Where("content_hashtags.hashtag_id = ?", hashtagID).
		Where("cp.is_deleted = 0 AND cp.created_at >= ? AND cp.created_at < ?", from, to).
		Pluck("content_hashtags.content_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *hashtagRepoImpl) CountHashtagsOfContent(ctx context.Context, contentID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ContentHashtag{}).
		Where("content_id = ?", contentID).
		Count(&count).Error
	return count, err
}

func (r *hashtagRepoImpl) ListTagNamesOfContent(ctx context.Context, contentID uint64) ([]string, error) {
	names := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&model.ContentHashtag{}).
		Joins("JOIN hashtags h ON h.id = content_hashtags.hashtag_id").
		Where("content_hashtags.content_id = ?", contentID).
		Order("h.id ASC").
		Pluck("h.tag_name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *hashtagRepoImpl) TouchLastUsed(ctx context.Context, hashtagID uint64, usedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Hashtag{}).
		Where("id = ?", hashtagID).
		Update("last_used_at", usedAt).Error
}
