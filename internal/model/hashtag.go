package model

import "time"

type Hashtag struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	TagName     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_tag_name" json:"tag_name"`
	Category    *string   `gorm:"type:varchar(50)" json:"category"` // 默认可为空
	LastUsedAt  time.Time `json:"last_used_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Hashtag) TableName() string {
	return "hashtags"
}
