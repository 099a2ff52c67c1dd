package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"meeting-minutes-be/internal/dto"
	"meeting-minutes-be/internal/entity"
	"meeting-minutes-be/internal/repository/contract"
	"meeting-minutes-be/internal/repository/unitofwork"
	"meeting-minutes-be/pkg/summary"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// --- In-memory fakes ---

type fakeLogger struct{}

func (fakeLogger) Debug(string, string, map[string]interface{}) {}
func (fakeLogger) Info(string, string, map[string]interface{})  {}
func (fakeLogger) Warn(string, string, map[string]interface{})  {}
func (fakeLogger) Error(string, string, map[string]interface{}) {}
func (fakeLogger) Sync() error                                  { return nil }

type fakePublisher struct {
	payloads [][]byte
	err      error
}

func (p *fakePublisher) Publish(_ context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

type fakeConfigService struct {
	apiKey string
}

func (f *fakeConfigService) GetModelConfig(context.Context) (*dto.ModelConfigResponse, error) {
	return nil, nil
}
func (f *fakeConfigService) SaveModelConfig(context.Context, *dto.SaveModelConfigRequest) error {
	return nil
}
func (f *fakeConfigService) SaveApiKey(context.Context, *dto.SaveApiKeyRequest) error { return nil }
func (f *fakeConfigService) GetTranscriptConfig(context.Context) (*dto.TranscriptConfigResponse, error) {
	return nil, nil
}
func (f *fakeConfigService) SaveTranscriptConfig(context.Context, *dto.SaveTranscriptConfigRequest) error {
	return nil
}
func (f *fakeConfigService) ResolveApiKey(context.Context, string) (string, error) {
	return f.apiKey, nil
}
func (f *fakeConfigService) OllamaBaseURL() string { return "http://localhost:11434" }

type fakeJobRepo struct {
	jobs        map[string]*entity.SummaryJob
	upsertFails int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*entity.SummaryJob{}}
}

func (r *fakeJobRepo) Upsert(_ context.Context, job *entity.SummaryJob) error {
	if r.upsertFails > 0 {
		r.upsertFails--
		return errors.New("transient db error")
	}
	stored := *job
	if existing, ok := r.jobs[job.MeetingId]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	stored.Status = entity.JobStatusPending
	stored.Error = ""
	stored.Result = nil
	stored.ChunkCount = 0
	stored.ProcessingTime = 0
	stored.EndTime = nil
	r.jobs[job.MeetingId] = &stored
	*job = stored
	return nil
}

func (r *fakeJobRepo) Update(_ context.Context, meetingId string, update *entity.SummaryJobUpdate) error {
	job, ok := r.jobs[meetingId]
	if !ok {
		return errors.New("record not found")
	}
	// Mirror the sticky-terminal rule
	if job.Status.Terminal() && (update.Status == nil || !update.Status.Terminal()) {
		return nil
	}
	if update.Status != nil {
		job.Status = *update.Status
		if update.Status.Terminal() {
			now := time.Now()
			job.EndTime = &now
		}
	}
	if update.Error != nil {
		job.Error = *update.Error
	}
	if update.Result != nil {
		job.Result = update.Result
	}
	if update.ChunkCount != nil {
		job.ChunkCount = *update.ChunkCount
	}
	if update.ProcessingTime != nil {
		job.ProcessingTime = *update.ProcessingTime
	}
	if update.Metadata != nil {
		job.Metadata = update.Metadata
	}
	return nil
}

func (r *fakeJobRepo) FindByMeetingId(_ context.Context, meetingId string) (*entity.SummaryJob, error) {
	job, ok := r.jobs[meetingId]
	if !ok {
		return nil, nil
	}
	cp := *job
	return &cp, nil
}

func (r *fakeJobRepo) DeleteByMeetingId(_ context.Context, meetingId string) error {
	delete(r.jobs, meetingId)
	return nil
}

func (r *fakeJobRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	for id, job := range r.jobs {
		if job.Status.Terminal() && job.CreatedAt.Before(cutoff) {
			delete(r.jobs, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeMeetingRepo struct {
	meetings map[string]*entity.Meeting
}

func (r *fakeMeetingRepo) Upsert(_ context.Context, m *entity.Meeting) error {
	cp := *m
	r.meetings[m.Id] = &cp
	return nil
}

func (r *fakeMeetingRepo) UpdateTitle(_ context.Context, meetingId, title string) error {
	if m, ok := r.meetings[meetingId]; ok {
		m.Title = title
	}
	return nil
}

func (r *fakeMeetingRepo) FindById(_ context.Context, meetingId string) (*entity.Meeting, error) {
	m, ok := r.meetings[meetingId]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMeetingRepo) FindAll(context.Context) ([]*entity.Meeting, error) { return nil, nil }
func (r *fakeMeetingRepo) Delete(_ context.Context, meetingId string) error {
	delete(r.meetings, meetingId)
	return nil
}

type fakeTranscriptRepo struct {
	transcripts map[string][]*entity.Transcript
}

func (r *fakeTranscriptRepo) Create(_ context.Context, t *entity.Transcript) error {
	cp := *t
	r.transcripts[t.MeetingId] = append(r.transcripts[t.MeetingId], &cp)
	return nil
}

func (r *fakeTranscriptRepo) FindByMeetingId(_ context.Context, meetingId string) ([]*entity.Transcript, error) {
	return r.transcripts[meetingId], nil
}

func (r *fakeTranscriptRepo) Delete(context.Context, uuid.UUID) error { return nil }
func (r *fakeTranscriptRepo) DeleteAllByMeetingId(_ context.Context, meetingId string) error {
	delete(r.transcripts, meetingId)
	return nil
}

type fakeRequestRepo struct {
	requests map[string]*entity.SummaryRequest
}

func (r *fakeRequestRepo) Upsert(_ context.Context, req *entity.SummaryRequest) error {
	cp := *req
	r.requests[req.MeetingId] = &cp
	return nil
}

func (r *fakeRequestRepo) FindByMeetingId(_ context.Context, meetingId string) (*entity.SummaryRequest, error) {
	return r.requests[meetingId], nil
}

func (r *fakeRequestRepo) DeleteByMeetingId(_ context.Context, meetingId string) error {
	delete(r.requests, meetingId)
	return nil
}

type fakeSettingsRepo struct{}

func (fakeSettingsRepo) GetModelConfig(context.Context) (*entity.ModelConfig, error) {
	return nil, nil
}
func (fakeSettingsRepo) SaveModelConfig(context.Context, *entity.ModelConfig) error { return nil }
func (fakeSettingsRepo) GetTranscriptConfig(context.Context) (*entity.TranscriptConfig, error) {
	return nil, nil
}
func (fakeSettingsRepo) SaveTranscriptConfig(context.Context, *entity.TranscriptConfig) error {
	return nil
}

type fakeUow struct {
	jobs        *fakeJobRepo
	meetings    *fakeMeetingRepo
	transcripts *fakeTranscriptRepo
	requests    *fakeRequestRepo
}

func (u *fakeUow) Begin(context.Context) error { return nil }
func (u *fakeUow) Commit() error               { return nil }
func (u *fakeUow) Rollback() error             { return nil }

func (u *fakeUow) SummaryJobRepository() contract.SummaryJobRepository { return u.jobs }
func (u *fakeUow) SummaryRequestRepository() contract.SummaryRequestRepository {
	return u.requests
}
func (u *fakeUow) MeetingRepository() contract.MeetingRepository       { return u.meetings }
func (u *fakeUow) TranscriptRepository() contract.TranscriptRepository { return u.transcripts }
func (u *fakeUow) SettingsRepository() contract.ISettingsRepository    { return fakeSettingsRepo{} }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

// --- Scripted summarizer ---

type scriptedSummarizer struct {
	behave func(chunkText string) (*summary.PartialSummary, error)
}

func (s *scriptedSummarizer) Summarize(_ context.Context, chunkText string) (*summary.PartialSummary, error) {
	return s.behave(chunkText)
}

// --- Test harness ---

type harness struct {
	svc       *summaryService
	uow       *fakeUow
	publisher *fakePublisher
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	uow := &fakeUow{
		jobs:        newFakeJobRepo(),
		meetings:    &fakeMeetingRepo{meetings: map[string]*entity.Meeting{}},
		transcripts: &fakeTranscriptRepo{transcripts: map[string][]*entity.Transcript{}},
		requests:    &fakeRequestRepo{requests: map[string]*entity.SummaryRequest{}},
	}
	publisher := &fakePublisher{}

	svc := NewSummaryService(
		&fakeFactory{uow: uow},
		publisher,
		&fakeConfigService{apiKey: "test-key"},
		nil, // no NATS in tests
		fakeLogger{},
		SummaryOptions{
			DefaultChunkSize: 20,
			DefaultOverlap:   5,
			MaxAttempts:      1,
			Workers:          1,
		},
	).(*summaryService)

	svc.newSummarizer = func(provider, model, apiKey string) (summary.Summarizer, error) {
		return &scriptedSummarizer{behave: func(chunkText string) (*summary.PartialSummary, error) {
			return &summary.PartialSummary{
				MeetingName:    "Weekly Sync",
				SectionSummary: summary.Section{Title: "Section Summary", Blocks: []summary.Block{{Id: "1", Content: chunkText}}},
			}, nil
		}}, nil
	}

	return &harness{svc: svc, uow: uow, publisher: publisher}
}

func processRequest(meetingId string) *dto.ProcessTranscriptRequest {
	return &dto.ProcessTranscriptRequest{
		Text:      "The team discussed the roadmap and agreed on next steps.",
		MeetingId: meetingId,
		Provider:  "ollama",
		Model:     "llama3",
	}
}

// --- Tests ---

func TestProcessAcceptsAndPublishes(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.svc.Process(ctx, processRequest("m-1"))
	assert.NoError(t, err)
	assert.Equal(t, "m-1", res.ProcessId)

	job, _ := h.uow.jobs.FindByMeetingId(ctx, "m-1")
	assert.NotNil(t, job)
	assert.Equal(t, entity.JobStatusPending, job.Status)
	assert.NotNil(t, job.StartTime)

	req, _ := h.uow.requests.FindByMeetingId(ctx, "m-1")
	assert.NotNil(t, req)
	assert.Equal(t, "ollama", req.Provider)

	assert.Len(t, h.publisher.payloads, 1)
	var msg dto.PublishSummaryJobMessage
	assert.NoError(t, json.Unmarshal(h.publisher.payloads[0], &msg))
	assert.Equal(t, "m-1", msg.MeetingId)

	// Meeting auto-created with a placeholder title
	meeting, _ := h.uow.meetings.FindById(ctx, "m-1")
	assert.NotNil(t, meeting)
}

func TestProcessRejectsInvalidConfig(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*dto.ProcessTranscriptRequest)
	}{
		{"unsupported provider", func(r *dto.ProcessTranscriptRequest) { r.Provider = "bedrock" }},
		{"empty text", func(r *dto.ProcessTranscriptRequest) { r.Text = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := processRequest("m-bad")
			tt.mutate(req)
			_, err := h.svc.Process(ctx, req)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}

	// Nothing accepted, nothing published
	job, _ := h.uow.jobs.FindByMeetingId(ctx, "m-bad")
	assert.Nil(t, job)
	assert.Empty(t, h.publisher.payloads)
}

func TestProcessMissingApiKeyRejected(t *testing.T) {
	h := newHarness(t)
	h.svc.configService = &fakeConfigService{apiKey: ""}

	req := processRequest("m-key")
	req.Provider = "anthropic"

	_, err := h.svc.Process(context.Background(), req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no API key configured")
}

func TestProcessUpsertRetriesOnce(t *testing.T) {
	h := newHarness(t)
	h.uow.jobs.upsertFails = 1

	_, err := h.svc.Process(context.Background(), processRequest("m-retry"))
	assert.NoError(t, err)

	job, _ := h.uow.jobs.FindByMeetingId(context.Background(), "m-retry")
	assert.NotNil(t, job)
}

func TestProcessPublishFailureFailsJob(t *testing.T) {
	h := newHarness(t)
	h.publisher.err = errors.New("bus down")

	_, err := h.svc.Process(context.Background(), processRequest("m-pub"))
	assert.Error(t, err)

	job, _ := h.uow.jobs.FindByMeetingId(context.Background(), "m-pub")
	assert.NotNil(t, job)
	assert.Equal(t, entity.JobStatusFailed, job.Status)
	assert.Contains(t, job.Error, "internal processing error")
}

func TestRunJobCompletes(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.svc.Process(ctx, processRequest("m-run"))
	assert.NoError(t, err)

	assert.NoError(t, h.svc.RunJob(ctx, "m-run"))

	job, _ := h.uow.jobs.FindByMeetingId(ctx, "m-run")
	assert.Equal(t, entity.JobStatusCompleted, job.Status)
	assert.NotNil(t, job.EndTime)
	assert.Greater(t, job.ChunkCount, 1) // chunk size 20 splits the transcript

	var doc summary.Document
	assert.NoError(t, json.Unmarshal(job.Result, &doc))
	assert.Equal(t, "Weekly Sync", doc.MeetingName)
	assert.Contains(t, doc.SectionOrder, "section_summary")

	// Title write-back from the merged document
	meeting, _ := h.uow.meetings.FindById(ctx, "m-run")
	assert.Equal(t, "Weekly Sync", meeting.Title)
}

func TestRunJobNoContentFails(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.svc.Process(ctx, processRequest("m-empty"))
	assert.NoError(t, err)

	h.svc.newSummarizer = func(provider, model, apiKey string) (summary.Summarizer, error) {
		return &scriptedSummarizer{behave: func(string) (*summary.PartialSummary, error) {
			return nil, fmt.Errorf("model unavailable")
		}}, nil
	}

	assert.NoError(t, h.svc.RunJob(ctx, "m-empty"))

	job, _ := h.uow.jobs.FindByMeetingId(ctx, "m-empty")
	assert.Equal(t, entity.JobStatusFailed, job.Status)
	assert.Equal(t, "no content extracted from any transcript chunk", job.Error)
	assert.Greater(t, job.ChunkCount, 0)
	assert.Nil(t, job.Result)
}

func TestRunJobUnknownMeeting(t *testing.T) {
	h := newHarness(t)
	assert.Error(t, h.svc.RunJob(context.Background(), "never-submitted"))
}

func TestTerminalStatusIsSticky(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.svc.Process(ctx, processRequest("m-sticky"))
	assert.NoError(t, err)
	assert.NoError(t, h.svc.RunJob(ctx, "m-sticky"))

	// A late PROCESSING report must not revive the finished job
	processing := entity.JobStatusProcessing
	assert.NoError(t, h.uow.jobs.Update(ctx, "m-sticky", &entity.SummaryJobUpdate{Status: &processing}))

	job, _ := h.uow.jobs.FindByMeetingId(ctx, "m-sticky")
	assert.Equal(t, entity.JobStatusCompleted, job.Status)
}

func TestResubmitResetsJob(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.svc.Process(ctx, processRequest("m-again"))
	assert.NoError(t, err)
	assert.NoError(t, h.svc.RunJob(ctx, "m-again"))

	job, _ := h.uow.jobs.FindByMeetingId(ctx, "m-again")
	assert.Equal(t, entity.JobStatusCompleted, job.Status)

	// Re-submit: fresh PENDING run, previous verdict wiped
	_, err = h.svc.Process(ctx, processRequest("m-again"))
	assert.NoError(t, err)

	job, _ = h.uow.jobs.FindByMeetingId(ctx, "m-again")
	assert.Equal(t, entity.JobStatusPending, job.Status)
	assert.Empty(t, job.Error)
	assert.Nil(t, job.Result)
	assert.Nil(t, job.EndTime)
}

func TestGetSummaryMapsJob(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.svc.GetSummary(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, res)

	_, err = h.svc.Process(ctx, processRequest("m-get"))
	assert.NoError(t, err)

	res, err = h.svc.GetSummary(ctx, "m-get")
	assert.NoError(t, err)
	assert.Equal(t, string(entity.JobStatusPending), res.Status)
	assert.Empty(t, res.Result) // result only exposed once COMPLETED

	assert.NoError(t, h.svc.RunJob(ctx, "m-get"))

	res, err = h.svc.GetSummary(ctx, "m-get")
	assert.NoError(t, err)
	assert.Equal(t, string(entity.JobStatusCompleted), res.Status)
	assert.NotEmpty(t, res.Result)
	assert.NotEmpty(t, res.EndTime)

	// Poll responses carry the meeting title, which by now is the
	// merged meeting name
	assert.Equal(t, "Weekly Sync", res.MeetingName)
}

func TestProcessOverlapDefaultsAndExplicitZero(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	jobOverlap := func(meetingId string) int {
		t.Helper()
		job, _ := h.uow.jobs.FindByMeetingId(ctx, meetingId)
		assert.NotNil(t, job)
		var meta jobMetadata
		assert.NoError(t, json.Unmarshal(job.Metadata, &meta))
		return meta.Overlap
	}

	// Absent overlap falls back to the server default
	_, err := h.svc.Process(ctx, processRequest("m-default"))
	assert.NoError(t, err)
	assert.Equal(t, 5, jobOverlap("m-default"))

	// An explicit zero means non-overlapping chunks, not "use default"
	zero := 0
	req := processRequest("m-zero")
	req.Overlap = &zero
	_, err = h.svc.Process(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, 0, jobOverlap("m-zero"))

	// Negative overlap clamps to zero
	negative := -3
	req = processRequest("m-neg")
	req.Overlap = &negative
	_, err = h.svc.Process(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, 0, jobOverlap("m-neg"))
}

func TestCleanupDeletesByCreationAge(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.svc.Process(ctx, processRequest("m-old"))
	assert.NoError(t, err)
	assert.NoError(t, h.svc.RunJob(ctx, "m-old"))

	_, err = h.svc.Process(ctx, processRequest("m-fresh"))
	assert.NoError(t, err)
	assert.NoError(t, h.svc.RunJob(ctx, "m-fresh"))

	// Age the first job past the retention window; a later write must
	// not rejuvenate it
	h.uow.jobs.jobs["m-old"].CreatedAt = time.Now().Add(-40 * 24 * time.Hour)
	h.uow.jobs.jobs["m-old"].UpdatedAt = time.Now()

	deleted, err := h.svc.Cleanup(ctx, 30*24*time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	job, _ := h.uow.jobs.FindByMeetingId(ctx, "m-old")
	assert.Nil(t, job)
	job, _ = h.uow.jobs.FindByMeetingId(ctx, "m-fresh")
	assert.NotNil(t, job)
}
