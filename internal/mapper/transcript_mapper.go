package mapper

import (
	"meeting-minutes-be/internal/entity"
	"meeting-minutes-be/internal/model"
)

type TranscriptMapper struct{}

func NewTranscriptMapper() *TranscriptMapper {
	return &TranscriptMapper{}
}

func (m *TranscriptMapper) ToEntity(t *model.Transcript) *entity.Transcript {
	if t == nil {
		return nil
	}

	return &entity.Transcript{
		Id:          t.Id,
		MeetingId:   t.MeetingId,
		Transcript:  t.Transcript,
		Timestamp:   t.Timestamp,
		Summary:     t.Summary,
		ActionItems: t.ActionItems,
		KeyPoints:   t.KeyPoints,
		CreatedAt:   t.CreatedAt,
	}
}

func (m *TranscriptMapper) ToModel(t *entity.Transcript) *model.Transcript {
	if t == nil {
		return nil
	}

	return &model.Transcript{
		Id:          t.Id,
		MeetingId:   t.MeetingId,
		Transcript:  t.Transcript,
		Timestamp:   t.Timestamp,
		Summary:     t.Summary,
		ActionItems: t.ActionItems,
		KeyPoints:   t.KeyPoints,
		CreatedAt:   t.CreatedAt,
	}
}

func (m *TranscriptMapper) ToEntities(transcripts []*model.Transcript) []*entity.Transcript {
	entities := make([]*entity.Transcript, len(transcripts))
	for i, t := range transcripts {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
