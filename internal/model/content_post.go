package model

import (
	"time"
)

type ContentPost struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	UserID          uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	ContentType     string    `gorm:"type:varchar(20);not null" json:"content_type"`      // photo / video / carousel / story
	ContentCategory string    `gorm:"type:varchar(50);not null" json:"content_category"`  // 为空时入库前统一为 Unknown
	Caption         string    `gorm:"type:varchar(2200)" json:"caption"`
	Location        *string   `gorm:"type:varchar(255)" json:"location"`
	IsPromoted      bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_promoted"`
	LikesCount      int       `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount   int       `gorm:"not null;default:0" json:"comments_count"`
	SharesCount     int       `gorm:"not null;default:0" json:"shares_count"`
	SavesCount      int       `gorm:"not null;default:0" json:"saves_count"`
	IsDeleted       bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// 关联关系
	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (ContentPost) TableName() string {
	return "content_posts"
}
