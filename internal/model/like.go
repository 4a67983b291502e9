package model

import "time"

type Like struct {
	UserID    uint64    `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	ContentID uint64    `gorm:"primaryKey;autoIncrement:false;index:idx_content_id" json:"content_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
