package model

import "time"

type SummaryRequest struct {
	MeetingId string    `gorm:"type:varchar(255);primaryKey;column:meeting_id"`
	Provider  string    `gorm:"type:varchar(64);not null"`
	Model     string    `gorm:"type:varchar(128);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SummaryRequest) TableName() string {
	return "summary_requests"
}
