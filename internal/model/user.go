package model

import "time"

type User struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_username" json:"username"`
	AccountType    string    `gorm:"type:varchar(20);not null;default:'personal'" json:"account_type"` // personal / business / creator
	FollowerCount  int       `gorm:"not null;default:0" json:"follower_count"`
	FollowingCount int       `gorm:"not null;default:0" json:"following_count"`
	IsDeleted      bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
