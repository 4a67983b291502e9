package model

import "time"

type ContentHashtag struct {
	ContentID uint64    `gorm:"primaryKey;autoIncrement:false" json:"content_id"`
	HashtagID uint64    `gorm:"primaryKey;autoIncrement:false;index:idx_hashtag_id" json:"hashtag_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContentHashtag) TableName() string {
	return "content_hashtags"
}
