package model

import "time"

type ProfileVisit struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null" json:"user_id"`
	ContentID uint64    `gorm:"not null;index:idx_content_id" json:"content_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (ProfileVisit) TableName() string {
	return "profile_visits"
}
