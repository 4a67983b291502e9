package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type UserProfileSnapshot struct {
	UserID    uint64      `gorm:"primaryKey" json:"user_id"`
	Profile   ProfileData `gorm:"type:json;not null" json:"profile"` // 行为画像快照
	UpdatedAt time.Time   `json:"updated_at"`
}

func (UserProfileSnapshot) TableName() string {
	return "user_profile_snapshots"
}

// ProfileData 用户行为画像：各维度保序频次分布与平均互动率。
// SampleCount 为 0 的画像视为空画像，不落库。
type ProfileData struct {
	ContentTypes      *FrequencyMap `json:"content_types"`
	Categories        *FrequencyMap `json:"categories"`
	PostingHours      *FrequencyMap `json:"posting_hours"`
	Hashtags          *FrequencyMap `json:"hashtags"`
	AvgEngagementRate float64       `json:"avg_engagement_rate"`
	SampleCount       int           `json:"sample_count"`
}

func NewProfileData() ProfileData {
	return ProfileData{
		ContentTypes: NewFrequencyMap(),
		Categories:   NewFrequencyMap(),
		PostingHours: NewFrequencyMap(),
		Hashtags:     NewFrequencyMap(),
	}
}

func (p ProfileData) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *ProfileData) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}
	return json.Unmarshal(bytes, p)
}
