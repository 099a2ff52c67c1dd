package summary

// Merge folds an ordered list of partial summaries into one canonical
// document. The meeting name is the first non-empty one seen in chunk
// order. Sections are keyed by their normalized title: the first
// occurrence fixes the key's position in SectionOrder and its display
// title; later sections with the same derived title append their blocks
// to it instead of creating a duplicate entry. Blocks keep their chunk
// order and their ids.
//
// Merge is pure and total: an empty input yields an empty document.
func Merge(partials []*PartialSummary) *Document {
	doc := &Document{
		SectionOrder: []string{},
		Sections:     map[string]*Section{},
	}

	for _, p := range partials {
		if p == nil {
			continue
		}
		if doc.MeetingName == "" && p.MeetingName != "" {
			doc.MeetingName = p.MeetingName
		}

		for _, sec := range p.Sections() {
			key := SectionKey(sec.Title)
			if key == "" {
				continue
			}

			existing, ok := doc.Sections[key]
			if !ok {
				existing = &Section{Title: sec.Title}
				doc.Sections[key] = existing
				doc.SectionOrder = append(doc.SectionOrder, key)
			}
			existing.Blocks = append(existing.Blocks, sec.Blocks...)
		}
	}

	return doc
}
