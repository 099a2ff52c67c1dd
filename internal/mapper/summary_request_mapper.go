package mapper

import (
	"time"

	"meeting-minutes-be/internal/entity"
	"meeting-minutes-be/internal/model"
)

type SummaryRequestMapper struct{}

func NewSummaryRequestMapper() *SummaryRequestMapper {
	return &SummaryRequestMapper{}
}

func (m *SummaryRequestMapper) ToEntity(r *model.SummaryRequest) *entity.SummaryRequest {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.SummaryRequest{
		MeetingId: r.MeetingId,
		Provider:  r.Provider,
		Model:     r.Model,
		CreatedAt: r.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *SummaryRequestMapper) ToModel(r *entity.SummaryRequest) *model.SummaryRequest {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.SummaryRequest{
		MeetingId: r.MeetingId,
		Provider:  r.Provider,
		Model:     r.Model,
		CreatedAt: r.CreatedAt,
		UpdatedAt: updatedAt,
	}
}
