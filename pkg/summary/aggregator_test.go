package summary

import (
	"reflect"
	"testing"
)

func section(title string, contents ...string) Section {
	blocks := make([]Block, len(contents))
	for i, c := range contents {
		blocks[i] = Block{Id: c, Type: "text", Content: c}
	}
	return Section{Title: title, Blocks: blocks}
}

func TestMergePreservesFirstSeenOrder(t *testing.T) {
	partials := []*PartialSummary{
		{ExtraSections: []Section{section("Agenda", "a1"), section("Decisions", "d1")}},
		{ExtraSections: []Section{section("Notes", "n1"), section("Agenda", "a2")}},
	}

	doc := Merge(partials)

	wantOrder := []string{"agenda", "decisions", "notes"}
	if !reflect.DeepEqual(doc.SectionOrder, wantOrder) {
		t.Fatalf("SectionOrder = %v, want %v", doc.SectionOrder, wantOrder)
	}
}

func TestMergeDeduplicatesTitles(t *testing.T) {
	partials := []*PartialSummary{
		{ExtraSections: []Section{section("Key Items & Decisions", "first")}},
		{ExtraSections: []Section{section("key items  decisions", "second")}},
	}

	doc := Merge(partials)

	sec, ok := doc.Sections["key_items_decisions"]
	if !ok {
		t.Fatalf("merged key missing, got keys %v", doc.SectionOrder)
	}
	if len(doc.SectionOrder) != 1 {
		t.Errorf("SectionOrder = %v, want one entry", doc.SectionOrder)
	}
	// First occurrence fixes the display title
	if sec.Title != "Key Items & Decisions" {
		t.Errorf("Title = %q", sec.Title)
	}
	if len(sec.Blocks) != 2 || sec.Blocks[0].Content != "first" || sec.Blocks[1].Content != "second" {
		t.Errorf("blocks merged out of order: %+v", sec.Blocks)
	}
}

func TestMergeMeetingNameFirstNonEmpty(t *testing.T) {
	partials := []*PartialSummary{
		{},
		{MeetingName: "Q3 Planning"},
		{MeetingName: "Ignored Later Name"},
	}

	doc := Merge(partials)
	if doc.MeetingName != "Q3 Planning" {
		t.Errorf("MeetingName = %q, want %q", doc.MeetingName, "Q3 Planning")
	}
}

func TestMergeKnownSections(t *testing.T) {
	p := &PartialSummary{
		SectionSummary: section("Section Summary", "s1"),
		NextSteps:      section("Next Steps", "n1"),
	}

	doc := Merge([]*PartialSummary{p})

	wantOrder := []string{"section_summary", "next_steps"}
	if !reflect.DeepEqual(doc.SectionOrder, wantOrder) {
		t.Fatalf("SectionOrder = %v, want %v", doc.SectionOrder, wantOrder)
	}
}

func TestMergeSkipsUntitledSections(t *testing.T) {
	p := &PartialSummary{
		SectionSummary: Section{Title: "", Blocks: []Block{{Content: "orphan"}}},
		NextSteps:      section("Next Steps", "n1"),
	}

	doc := Merge([]*PartialSummary{p})
	if len(doc.SectionOrder) != 1 || doc.SectionOrder[0] != "next_steps" {
		t.Errorf("SectionOrder = %v", doc.SectionOrder)
	}
}

func TestMergeEmptyInput(t *testing.T) {
	doc := Merge(nil)

	if doc.MeetingName != "" {
		t.Errorf("MeetingName = %q, want empty", doc.MeetingName)
	}
	if len(doc.SectionOrder) != 0 || len(doc.Sections) != 0 {
		t.Errorf("expected empty document, got order=%v sections=%v", doc.SectionOrder, doc.Sections)
	}
}

func TestSectionKey(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Key Items & Decisions", "key_items_decisions"},
		{"  Next   Steps  ", "next_steps"},
		{"CLOSING REMARKS", "closing_remarks"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SectionKey(tt.title); got != tt.want {
			t.Errorf("SectionKey(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
