package summary

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Block is a single unit of extracted content inside a section. Ids are
// assigned by the model per chunk; duplicates across chunks are allowed
// and never deduplicated.
type Block struct {
	Id      string `json:"id"`
	Type    string `json:"type"`
	Content string `json:"content"`
	Color   string `json:"color"`
}

// Section is a titled, ordered list of blocks.
type Section struct {
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// PartialSummary is the structured output expected from one chunk. The
// known sections are fixed fields so the merge stays exhaustive;
// anything the model emits outside the known keys lands in
// ExtraSections rather than being dropped.
type PartialSummary struct {
	MeetingName          string    `json:"MeetingName"`
	SectionSummary       Section   `json:"SectionSummary"`
	CriticalDeadlines    Section   `json:"CriticalDeadlines"`
	KeyItemsDecisions    Section   `json:"KeyItemsDecisions"`
	ImmediateActionItems Section   `json:"ImmediateActionItems"`
	NextSteps            Section   `json:"NextSteps"`
	OtherImportantPoints Section   `json:"OtherImportantPoints"`
	ClosingRemarks       Section   `json:"ClosingRemarks"`
	ExtraSections        []Section `json:"ExtraSections,omitempty"`
}

// Sections returns the partial's sections in schema order, known keys
// first, then extras in their emitted order.
func (p *PartialSummary) Sections() []Section {
	sections := []Section{
		p.SectionSummary,
		p.CriticalDeadlines,
		p.KeyItemsDecisions,
		p.ImmediateActionItems,
		p.NextSteps,
		p.OtherImportantPoints,
		p.ClosingRemarks,
	}
	return append(sections, p.ExtraSections...)
}

// HasContent reports whether at least one section carries a non-empty
// block list. A syntactically valid but all-empty response is treated
// as a failed extraction by the processor.
func (p *PartialSummary) HasContent() bool {
	for _, sec := range p.Sections() {
		if len(sec.Blocks) > 0 {
			return true
		}
	}
	return false
}

// Document is the canonical merged result. SectionOrder records the
// first-seen order of derived section keys; Sections maps each key to
// its merged section.
type Document struct {
	MeetingName  string              `json:"meeting_name"`
	SectionOrder []string            `json:"section_order"`
	Sections     map[string]*Section `json:"sections"`
}

// SectionKey derives the canonical key for a section title: lower-cased,
// whitespace-collapsed, "&" folded away, words joined by underscores.
// "Key Items & Decisions" -> "key_items_decisions".
func SectionKey(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))
	lower = strings.ReplaceAll(lower, "&", " ")
	return strings.Join(strings.Fields(lower), "_")
}

// ParsePartialSummary decodes a model response into a PartialSummary.
// Markdown code fences around the JSON payload are tolerated since
// several models insist on them even when asked not to.
func ParsePartialSummary(raw string) (*PartialSummary, error) {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty response")
	}

	var p PartialSummary
	if err := json.Unmarshal([]byte(cleaned), &p); err != nil {
		return nil, fmt.Errorf("decode summary response: %w", err)
	}
	return &p, nil
}

func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		return strings.TrimSpace(s)
	}
	// Some models prepend prose before the JSON object
	if start := strings.Index(s, "{"); start > 0 {
		if end := strings.LastIndex(s, "}"); end > start {
			return s[start : end+1]
		}
	}
	return s
}
