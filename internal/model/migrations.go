package model

import "meeting-minutes-be/pkg/database"

// SchemaMigrations is the additive column history replayed by
// database.ValidateSchema on startup. Append-only: never reorder or
// rewrite past versions, databases in the wild have already applied
// them.
var SchemaMigrations = []database.ColumnMigration{
	// v2: job telemetry added after the first release
	{Version: 2, Table: "summary_jobs", Model: &SummaryJob{}, Column: "ChunkCount"},
	{Version: 2, Table: "summary_jobs", Model: &SummaryJob{}, Column: "ProcessingTime"},

	// v3: free-form job metadata
	{Version: 3, Table: "summary_jobs", Model: &SummaryJob{}, Column: "Metadata"},

	// v4: per-transcript enrichment fields
	{Version: 4, Table: "transcripts", Model: &Transcript{}, Column: "Summary"},
	{Version: 4, Table: "transcripts", Model: &Transcript{}, Column: "ActionItems"},
	{Version: 4, Table: "transcripts", Model: &Transcript{}, Column: "KeyPoints"},

	// v5: API keys moved into settings so the UI can manage them
	{Version: 5, Table: "settings", Model: &ModelConfig{}, Column: "AnthropicApiKey"},
	{Version: 5, Table: "settings", Model: &ModelConfig{}, Column: "OpenaiApiKey"},
	{Version: 5, Table: "settings", Model: &ModelConfig{}, Column: "GroqApiKey"},
	{Version: 5, Table: "settings", Model: &ModelConfig{}, Column: "OllamaApiKey"},
}
