package summary

import "fmt"

// Instruction template sent with every chunk. The section list must stay
// in sync with the PartialSummary schema.
const chunkInstructions = `Given the following meeting transcript chunk, extract the relevant information as a single JSON object with these keys: "MeetingName" (string, empty if not mentioned), and the sections "SectionSummary", "CriticalDeadlines", "KeyItemsDecisions", "ImmediateActionItems", "NextSteps", "OtherImportantPoints", "ClosingRemarks". Each section is an object {"title": string, "blocks": [{"id": string, "type": string, "content": string, "color": string}]}. If a section has no relevant information in this chunk, return an empty list for its "blocks". Respond with only the JSON data, no prose and no code fences.`

// BuildChunkPrompt assembles the per-chunk prompt.
func BuildChunkPrompt(chunkText string) string {
	return fmt.Sprintf("%s\n\nTranscript Chunk:\n---\n%s\n---", chunkInstructions, chunkText)
}
