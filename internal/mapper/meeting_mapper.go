package mapper

import (
	"time"

	"meeting-minutes-be/internal/entity"
	"meeting-minutes-be/internal/model"
)

type MeetingMapper struct{}

func NewMeetingMapper() *MeetingMapper {
	return &MeetingMapper{}
}

func (m *MeetingMapper) ToEntity(mt *model.Meeting) *entity.Meeting {
	if mt == nil {
		return nil
	}

	var updatedAt *time.Time
	if !mt.UpdatedAt.IsZero() {
		t := mt.UpdatedAt
		updatedAt = &t
	}

	return &entity.Meeting{
		Id:        mt.Id,
		Title:     mt.Title,
		CreatedAt: mt.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *MeetingMapper) ToModel(mt *entity.Meeting) *model.Meeting {
	if mt == nil {
		return nil
	}

	var updatedAt time.Time
	if mt.UpdatedAt != nil {
		updatedAt = *mt.UpdatedAt
	}

	return &model.Meeting{
		Id:        mt.Id,
		Title:     mt.Title,
		CreatedAt: mt.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *MeetingMapper) ToEntities(meetings []*model.Meeting) []*entity.Meeting {
	entities := make([]*entity.Meeting, len(meetings))
	for i, mt := range meetings {
		entities[i] = m.ToEntity(mt)
	}
	return entities
}
