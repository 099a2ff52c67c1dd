package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"meeting-minutes-be/internal/constant"
	"meeting-minutes-be/internal/dto"
	"meeting-minutes-be/internal/entity"
	"meeting-minutes-be/internal/pkg/logger"
	"meeting-minutes-be/internal/repository/unitofwork"
	"meeting-minutes-be/pkg/events"
	"meeting-minutes-be/pkg/llm/factory"
	pktNats "meeting-minutes-be/pkg/nats"
	"meeting-minutes-be/pkg/summary"

	"github.com/google/uuid"
)

type ISummaryService interface {
	Process(ctx context.Context, req *dto.ProcessTranscriptRequest) (*dto.ProcessTranscriptResponse, error)
	RunJob(ctx context.Context, meetingId string) error
	GetSummary(ctx context.Context, meetingId string) (*dto.SummaryStatusResponse, error)
	Cleanup(ctx context.Context, retention time.Duration) (int64, error)
}

// jobMetadata is persisted on the job row so the background worker can
// re-derive the run parameters without re-reading the original request.
type jobMetadata struct {
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	ChunkSize int    `json:"chunk_size"`
	Overlap   int    `json:"overlap"`
}

type SummaryOptions struct {
	DefaultChunkSize int
	DefaultOverlap   int
	MaxAttempts      int
	Workers          int
	CallTimeout      time.Duration
}

type summaryService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	configService    IConfigService
	eventPublisher   *pktNats.Publisher
	sysLogger        logger.ILogger
	opts             SummaryOptions

	// Indirection so tests can swap the real provider for a fake.
	newSummarizer func(provider, model, apiKey string) (summary.Summarizer, error)
}

func NewSummaryService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	configService IConfigService,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
	opts SummaryOptions,
) ISummaryService {
	s := &summaryService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		configService:    configService,
		eventPublisher:   eventPublisher,
		sysLogger:        sysLogger,
		opts:             opts,
	}
	s.newSummarizer = func(provider, model, apiKey string) (summary.Summarizer, error) {
		llmProvider, err := factory.NewLLMProvider(provider, model, s.configService.OllamaBaseURL(), apiKey)
		if err != nil {
			return nil, err
		}
		summarizer := summary.NewLLMSummarizer(llmProvider, model)
		if s.opts.CallTimeout > 0 {
			summarizer = summarizer.WithTimeout(s.opts.CallTimeout)
		}
		return summarizer, nil
	}
	return s
}

func (s *summaryService) Process(ctx context.Context, req *dto.ProcessTranscriptRequest) (*dto.ProcessTranscriptResponse, error) {
	// Fail fast on anything the background worker could only discover
	// after the caller has already been told "accepted".
	if !factory.IsSupported(req.Provider) {
		return nil, fmt.Errorf(constant.ErrMsgInvalidConfig, fmt.Errorf("unsupported provider: %s", req.Provider))
	}
	apiKey, err := s.configService.ResolveApiKey(ctx, req.Provider)
	if err != nil {
		return nil, fmt.Errorf(constant.ErrMsgInvalidConfig, err)
	}
	if factory.RequiresAPIKey(req.Provider) && apiKey == "" {
		return nil, fmt.Errorf(constant.ErrMsgInvalidConfig, fmt.Errorf("no API key configured for provider %s", req.Provider))
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf(constant.ErrMsgInvalidConfig, fmt.Errorf("transcript text is empty"))
	}

	chunkSize := req.ChunkSize
	if chunkSize <= 0 {
		chunkSize = s.opts.DefaultChunkSize
	}
	// An explicit overlap of 0 is a real request for non-overlapping
	// chunks; only an absent field falls back to the default. Negative
	// values are clamped to 0.
	overlap := s.opts.DefaultOverlap
	if req.Overlap != nil {
		overlap = *req.Overlap
	}
	overlap = summary.ClampOverlap(chunkSize, overlap)
	if _, err := summary.Split("probe", chunkSize, overlap); err != nil {
		return nil, fmt.Errorf(constant.ErrMsgInvalidConfig, err)
	}

	meta, _ := json.Marshal(jobMetadata{
		Provider:  req.Provider,
		Model:     req.Model,
		ChunkSize: chunkSize,
		Overlap:   overlap,
	})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := s.ensureMeeting(ctx, uow, req.MeetingId); err != nil {
		return nil, err
	}

	// The submitted text becomes the canonical transcript for the run.
	if err := uow.TranscriptRepository().DeleteAllByMeetingId(ctx, req.MeetingId); err != nil {
		return nil, err
	}
	transcript := entity.Transcript{
		Id:         uuid.New(),
		MeetingId:  req.MeetingId,
		Transcript: req.Text,
		CreatedAt:  time.Now(),
	}
	if err := uow.TranscriptRepository().Create(ctx, &transcript); err != nil {
		return nil, err
	}

	now := time.Now()
	job := entity.SummaryJob{
		MeetingId: req.MeetingId,
		Status:    entity.JobStatusPending,
		Metadata:  meta,
		StartTime: &now,
	}
	if err := s.upsertJobWithRetry(ctx, uow, &job); err != nil {
		return nil, err
	}

	request := entity.SummaryRequest{
		MeetingId: req.MeetingId,
		Provider:  req.Provider,
		Model:     req.Model,
		CreatedAt: now,
	}
	if err := uow.SummaryRequestRepository().Upsert(ctx, &request); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(dto.PublishSummaryJobMessage{MeetingId: req.MeetingId})
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.failJob(ctx, req.MeetingId, fmt.Sprintf(constant.ErrMsgInternalFmt, err))
		return nil, err
	}

	s.sysLogger.Info(constant.ModuleSummaryService, "Summary job accepted", map[string]interface{}{
		"meeting_id": req.MeetingId,
		"provider":   req.Provider,
		"model":      req.Model,
		"chunk_size": chunkSize,
		"overlap":    overlap,
	})

	return &dto.ProcessTranscriptResponse{ProcessId: req.MeetingId}, nil
}

func (s *summaryService) ensureMeeting(ctx context.Context, uow unitofwork.UnitOfWork, meetingId string) error {
	existing, err := uow.MeetingRepository().FindById(ctx, meetingId)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	meeting := entity.Meeting{
		Id:        meetingId,
		Title:     fmt.Sprintf("Meeting %s", meetingId),
		CreatedAt: time.Now(),
	}
	return uow.MeetingRepository().Upsert(ctx, &meeting)
}

// upsertJobWithRetry retries the job write once. A transient failure
// here would otherwise reject a submit the client cannot distinguish
// from a validation error.
func (s *summaryService) upsertJobWithRetry(ctx context.Context, uow unitofwork.UnitOfWork, job *entity.SummaryJob) error {
	err := uow.SummaryJobRepository().Upsert(ctx, job)
	if err == nil {
		return nil
	}
	s.sysLogger.Warn(constant.ModuleSummaryService, "Job upsert failed, retrying once", map[string]interface{}{
		"meeting_id": job.MeetingId,
		"error":      err.Error(),
	})
	return uow.SummaryJobRepository().Upsert(ctx, job)
}

func (s *summaryService) RunJob(ctx context.Context, meetingId string) (err error) {
	started := time.Now()

	defer func() {
		if r := recover(); r != nil {
			s.sysLogger.Error(constant.ModuleSummaryService, "Panic during summary job", map[string]interface{}{
				"meeting_id": meetingId,
				"panic":      fmt.Sprintf("%v", r),
			})
			s.failJob(ctx, meetingId, fmt.Sprintf(constant.ErrMsgInternalFmt, r))
			err = fmt.Errorf("summary job panicked: %v", r)
		}
	}()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	job, err := uow.SummaryJobRepository().FindByMeetingId(ctx, meetingId)
	if err != nil {
		return err
	}
	if job == nil {
		return fmt.Errorf("no summary job found for meeting %s", meetingId)
	}

	var meta jobMetadata
	if len(job.Metadata) > 0 {
		if err := json.Unmarshal(job.Metadata, &meta); err != nil {
			s.failJob(ctx, meetingId, fmt.Sprintf(constant.ErrMsgInternalFmt, err))
			return err
		}
	}
	if meta.ChunkSize <= 0 {
		meta.ChunkSize = s.opts.DefaultChunkSize
	}

	processing := entity.JobStatusProcessing
	if err := uow.SummaryJobRepository().Update(ctx, meetingId, &entity.SummaryJobUpdate{Status: &processing}); err != nil {
		return err
	}

	transcripts, err := uow.TranscriptRepository().FindByMeetingId(ctx, meetingId)
	if err != nil {
		s.failJob(ctx, meetingId, fmt.Sprintf(constant.ErrMsgInternalFmt, err))
		return err
	}
	var sb strings.Builder
	for _, t := range transcripts {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(t.Transcript)
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		s.failJob(ctx, meetingId, constant.ErrMsgNoContent)
		return nil
	}

	apiKey, err := s.configService.ResolveApiKey(ctx, meta.Provider)
	if err != nil {
		s.failJob(ctx, meetingId, fmt.Sprintf(constant.ErrMsgInvalidConfig, err))
		return err
	}
	summarizer, err := s.newSummarizer(meta.Provider, meta.Model, apiKey)
	if err != nil {
		s.failJob(ctx, meetingId, fmt.Sprintf(constant.ErrMsgInvalidConfig, err))
		return err
	}

	chunks, err := summary.Split(text, meta.ChunkSize, meta.Overlap)
	if err != nil {
		s.failJob(ctx, meetingId, fmt.Sprintf(constant.ErrMsgInvalidConfig, err))
		return err
	}

	s.sysLogger.Info(constant.ModuleSummaryService, "Summary job started", map[string]interface{}{
		"meeting_id":  meetingId,
		"chunk_count": len(chunks),
		"provider":    meta.Provider,
		"model":       meta.Model,
	})

	processor := summary.NewProcessor(summarizer, summary.ProcessorOptions{
		MaxAttempts: s.opts.MaxAttempts,
		Workers:     s.opts.Workers,
	})
	partials, failures := processor.Process(ctx, chunks)

	for _, f := range failures {
		s.sysLogger.Warn(constant.ModuleSummaryService, "Chunk permanently failed", map[string]interface{}{
			"meeting_id": meetingId,
			"chunk":      f.Index,
			"attempts":   f.Attempts,
			"error":      f.Err.Error(),
		})
	}

	elapsed := time.Since(started).Seconds()
	chunkCount := len(chunks)

	if len(partials) == 0 {
		s.failJobWithStats(ctx, meetingId, constant.ErrMsgNoContent, chunkCount, elapsed)
		s.publishEvent(ctx, events.NewSummaryFailedEvent(meetingId, constant.ErrMsgNoContent))
		return nil
	}

	doc := summary.Merge(partials)
	result, err := json.Marshal(doc)
	if err != nil {
		s.failJobWithStats(ctx, meetingId, fmt.Sprintf(constant.ErrMsgInternalFmt, err), chunkCount, elapsed)
		return err
	}

	if doc.MeetingName != "" {
		if err := uow.MeetingRepository().UpdateTitle(ctx, meetingId, doc.MeetingName); err != nil {
			s.sysLogger.Warn(constant.ModuleSummaryService, "Meeting title write-back failed", map[string]interface{}{
				"meeting_id": meetingId,
				"error":      err.Error(),
			})
		}
	}

	completed := entity.JobStatusCompleted
	update := &entity.SummaryJobUpdate{
		Status:         &completed,
		Result:         result,
		ChunkCount:     &chunkCount,
		ProcessingTime: &elapsed,
	}
	if err := s.updateJobWithRetry(ctx, meetingId, update); err != nil {
		// The summary exists but we could not record it. Surface the
		// error to the log and leave the job as-is; a re-submit will
		// regenerate it.
		s.sysLogger.Error(constant.ModuleSummaryService, "Failed to persist completed summary", map[string]interface{}{
			"meeting_id": meetingId,
			"error":      err.Error(),
		})
		return err
	}

	s.sysLogger.Info(constant.ModuleSummaryService, "Summary job completed", map[string]interface{}{
		"meeting_id":      meetingId,
		"chunk_count":     chunkCount,
		"failed_chunks":   len(failures),
		"processing_time": elapsed,
	})
	s.publishEvent(ctx, events.NewSummaryCompletedEvent(meetingId, chunkCount, elapsed))

	return nil
}

func (s *summaryService) GetSummary(ctx context.Context, meetingId string) (*dto.SummaryStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	job, err := uow.SummaryJobRepository().FindByMeetingId(ctx, meetingId)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, nil
	}

	res := &dto.SummaryStatusResponse{
		MeetingId:      job.MeetingId,
		Status:         string(job.Status),
		Error:          job.Error,
		ChunkCount:     job.ChunkCount,
		ProcessingTime: job.ProcessingTime,
	}
	if meeting, err := uow.MeetingRepository().FindById(ctx, meetingId); err != nil {
		return nil, err
	} else if meeting != nil {
		res.MeetingName = meeting.Title
	}
	if job.Status == entity.JobStatusCompleted {
		res.Result = job.Result
	}
	if job.StartTime != nil {
		res.StartTime = job.StartTime.Format(time.RFC3339)
	}
	if job.EndTime != nil {
		res.EndTime = job.EndTime.Format(time.RFC3339)
	}
	return res, nil
}

func (s *summaryService) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	cutoff := time.Now().Add(-retention)
	deleted, err := uow.SummaryJobRepository().DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		s.sysLogger.Info(constant.ModuleSummaryService, "Cleaned up old summary jobs", map[string]interface{}{
			"deleted": deleted,
			"cutoff":  cutoff.Format(time.RFC3339),
		})
	}
	return deleted, nil
}

func (s *summaryService) failJob(ctx context.Context, meetingId, message string) {
	s.failJobWithStats(ctx, meetingId, message, 0, 0)
}

func (s *summaryService) failJobWithStats(ctx context.Context, meetingId, message string, chunkCount int, elapsed float64) {
	failed := entity.JobStatusFailed
	update := &entity.SummaryJobUpdate{
		Status: &failed,
		Error:  &message,
	}
	if chunkCount > 0 {
		update.ChunkCount = &chunkCount
	}
	if elapsed > 0 {
		update.ProcessingTime = &elapsed
	}
	if err := s.updateJobWithRetry(ctx, meetingId, update); err != nil {
		s.sysLogger.Error(constant.ModuleSummaryService, "Failed to record job failure", map[string]interface{}{
			"meeting_id": meetingId,
			"error":      err.Error(),
		})
	}
}

// updateJobWithRetry retries a terminal status write once before giving
// up. The caller decides whether a persistent failure is fatal.
func (s *summaryService) updateJobWithRetry(ctx context.Context, meetingId string, update *entity.SummaryJobUpdate) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.SummaryJobRepository().Update(ctx, meetingId, update)
	if err == nil {
		return nil
	}
	s.sysLogger.Warn(constant.ModuleSummaryService, "Job update failed, retrying once", map[string]interface{}{
		"meeting_id": meetingId,
		"error":      err.Error(),
	})
	return uow.SummaryJobRepository().Update(ctx, meetingId, update)
}

func (s *summaryService) publishEvent(ctx context.Context, event events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.sysLogger.Warn(constant.ModuleSummaryService, "Event publish failed", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}
