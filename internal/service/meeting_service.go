package service

import (
	"context"
	"fmt"
	"time"

	"meeting-minutes-be/internal/constant"
	"meeting-minutes-be/internal/dto"
	"meeting-minutes-be/internal/entity"
	"meeting-minutes-be/internal/pkg/logger"
	"meeting-minutes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMeetingService interface {
	SaveTranscript(ctx context.Context, req *dto.SaveTranscriptRequest) error
	GetMeetings(ctx context.Context) ([]*dto.MeetingResponse, error)
	GetMeeting(ctx context.Context, meetingId string) (*dto.MeetingDetailResponse, error)
	UpdateTitle(ctx context.Context, meetingId string, req *dto.UpdateMeetingTitleRequest) error
	DeleteMeeting(ctx context.Context, meetingId string) error
}

type meetingService struct {
	uowFactory unitofwork.RepositoryFactory
	sysLogger  logger.ILogger
}

func NewMeetingService(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger) IMeetingService {
	return &meetingService{
		uowFactory: uowFactory,
		sysLogger:  sysLogger,
	}
}

func (s *meetingService) SaveTranscript(ctx context.Context, req *dto.SaveTranscriptRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	title := req.MeetingTitle
	if title == "" {
		title = fmt.Sprintf("Meeting %s", req.MeetingId)
	}
	meeting := entity.Meeting{
		Id:        req.MeetingId,
		Title:     title,
		CreatedAt: time.Now(),
	}
	if err := uow.MeetingRepository().Upsert(ctx, &meeting); err != nil {
		return err
	}

	for _, segment := range req.Transcripts {
		transcript := entity.Transcript{
			Id:         uuid.New(),
			MeetingId:  req.MeetingId,
			Transcript: segment.Text,
			Timestamp:  segment.Timestamp,
			CreatedAt:  time.Now(),
		}
		if err := uow.TranscriptRepository().Create(ctx, &transcript); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.sysLogger.Info(constant.ModuleMeetingService, "Transcript segments saved", map[string]interface{}{
		"meeting_id": req.MeetingId,
		"segments":   len(req.Transcripts),
	})
	return nil
}

func (s *meetingService) GetMeetings(ctx context.Context) ([]*dto.MeetingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	meetings, err := uow.MeetingRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.MeetingResponse, len(meetings))
	for i, m := range meetings {
		res[i] = toMeetingResponse(m)
	}
	return res, nil
}

func (s *meetingService) GetMeeting(ctx context.Context, meetingId string) (*dto.MeetingDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	meeting, err := uow.MeetingRepository().FindById(ctx, meetingId)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, nil
	}

	transcripts, err := uow.TranscriptRepository().FindByMeetingId(ctx, meetingId)
	if err != nil {
		return nil, err
	}

	res := &dto.MeetingDetailResponse{
		Meeting:     *toMeetingResponse(meeting),
		Transcripts: make([]dto.TranscriptResponse, len(transcripts)),
	}
	for i, t := range transcripts {
		res.Transcripts[i] = dto.TranscriptResponse{
			Id:        t.Id.String(),
			Text:      t.Transcript,
			Timestamp: t.Timestamp,
		}
	}
	return res, nil
}

func (s *meetingService) UpdateTitle(ctx context.Context, meetingId string, req *dto.UpdateMeetingTitleRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	meeting, err := uow.MeetingRepository().FindById(ctx, meetingId)
	if err != nil {
		return err
	}
	if meeting == nil {
		return fmt.Errorf("meeting not found: %s", meetingId)
	}

	return uow.MeetingRepository().UpdateTitle(ctx, meetingId, req.Title)
}

func (s *meetingService) DeleteMeeting(ctx context.Context, meetingId string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// The summary job and request rows go with the meeting; a deleted
	// meeting must not keep polling as COMPLETED with its old result.
	if err := uow.SummaryJobRepository().DeleteByMeetingId(ctx, meetingId); err != nil {
		return err
	}
	if err := uow.SummaryRequestRepository().DeleteByMeetingId(ctx, meetingId); err != nil {
		return err
	}
	if err := uow.TranscriptRepository().DeleteAllByMeetingId(ctx, meetingId); err != nil {
		return err
	}
	if err := uow.MeetingRepository().Delete(ctx, meetingId); err != nil {
		return err
	}

	return uow.Commit()
}

func toMeetingResponse(m *entity.Meeting) *dto.MeetingResponse {
	res := &dto.MeetingResponse{
		Id:        m.Id,
		Title:     m.Title,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
	if m.UpdatedAt != nil {
		res.UpdatedAt = m.UpdatedAt.Format(time.RFC3339)
	}
	return res
}
