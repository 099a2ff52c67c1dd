package mapper

import (
	"encoding/json"

	"meeting-minutes-be/internal/entity"
	"meeting-minutes-be/internal/model"

	"gorm.io/datatypes"
)

type SummaryJobMapper struct{}

func NewSummaryJobMapper() *SummaryJobMapper {
	return &SummaryJobMapper{}
}

func (m *SummaryJobMapper) ToEntity(j *model.SummaryJob) *entity.SummaryJob {
	if j == nil {
		return nil
	}

	return &entity.SummaryJob{
		MeetingId:      j.MeetingId,
		Status:         entity.JobStatus(j.Status),
		Error:          j.Error,
		Result:         json.RawMessage(j.Result),
		ChunkCount:     j.ChunkCount,
		ProcessingTime: j.ProcessingTime,
		Metadata:       json.RawMessage(j.Metadata),
		StartTime:      j.StartTime,
		EndTime:        j.EndTime,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

func (m *SummaryJobMapper) ToModel(j *entity.SummaryJob) *model.SummaryJob {
	if j == nil {
		return nil
	}

	return &model.SummaryJob{
		MeetingId:      j.MeetingId,
		Status:         string(j.Status),
		Error:          j.Error,
		Result:         datatypes.JSON(j.Result),
		ChunkCount:     j.ChunkCount,
		ProcessingTime: j.ProcessingTime,
		Metadata:       datatypes.JSON(j.Metadata),
		StartTime:      j.StartTime,
		EndTime:        j.EndTime,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

func (m *SummaryJobMapper) ToEntities(jobs []*model.SummaryJob) []*entity.SummaryJob {
	entities := make([]*entity.SummaryJob, len(jobs))
	for i, j := range jobs {
		entities[i] = m.ToEntity(j)
	}
	return entities
}
