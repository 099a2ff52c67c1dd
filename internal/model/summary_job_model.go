package model

import (
	"time"

	"gorm.io/datatypes"
)

type SummaryJob struct {
	MeetingId      string         `gorm:"type:varchar(255);primaryKey;column:meeting_id"`
	Status         string         `gorm:"type:varchar(32);not null;default:'PENDING';index"`
	Error          string         `gorm:"type:text"`
	Result         datatypes.JSON `gorm:"type:jsonb"`
	ChunkCount     int            `gorm:"not null;default:0"`
	ProcessingTime float64        `gorm:"not null;default:0"`
	Metadata       datatypes.JSON `gorm:"type:jsonb"`
	StartTime      *time.Time
	EndTime        *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (SummaryJob) TableName() string {
	return "summary_jobs"
}
