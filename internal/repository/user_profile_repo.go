package repository

import (
	"SocialPulse/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserProfileRepo interface {
	// SaveProfile 整体覆盖该用户的画像快照，不做增量合并
	SaveProfile(ctx context.Context, snapshot *model.UserProfileSnapshot) error
	GetProfile(ctx context.Context, userID uint64) (*model.UserProfileSnapshot, error)
	DeleteProfile(ctx context.Context, userID uint64) error
}

type userProfileRepoImpl struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) UserProfileRepo {
	return &userProfileRepoImpl{db: db}
}

func (r *userProfileRepoImpl) SaveProfile(ctx context.Context, snapshot *model.UserProfileSnapshot) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"profile", "updated_at"}),
	}).Create(snapshot).Error
}

func (r *userProfileRepoImpl) GetProfile(ctx context.Context, userID uint64) (*model.UserProfileSnapshot, error) {
	var snapshot model.UserProfileSnapshot
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

func (r *userProfileRepoImpl) DeleteProfile(ctx context.Context, userID uint64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.UserProfileSnapshot{}).Error
}
