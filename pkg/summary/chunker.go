package summary

import "fmt"

// Chunk is one window over the transcript. Offset is the rune offset of
// the window start; chunks are ordered by Index.
type Chunk struct {
	Index  int
	Offset int
	Text   string
}

// ErrInvalidChunking is returned when no positive step size can be derived.
type ErrInvalidChunking struct {
	ChunkSize int
	Overlap   int
}

func (e *ErrInvalidChunking) Error() string {
	return fmt.Sprintf("invalid chunking configuration: chunk_size=%d overlap=%d yields non-positive step", e.ChunkSize, e.Overlap)
}

// ClampOverlap applies the windowing policy: negative overlap becomes 0,
// overlap >= chunkSize is pulled back to chunkSize-1 so the step stays
// positive.
func ClampOverlap(chunkSize, overlap int) int {
	if overlap < 0 {
		return 0
	}
	if overlap >= chunkSize {
		return chunkSize - 1
	}
	return overlap
}

// Split windows text into overlapping chunks of up to chunkSize runes,
// advancing chunkSize-overlap runes at a time. The final window may be
// shorter; together the windows always cover the whole text. Same
// inputs always yield the same chunk sequence.
func Split(text string, chunkSize, overlap int) ([]Chunk, error) {
	if chunkSize <= 0 {
		return nil, &ErrInvalidChunking{ChunkSize: chunkSize, Overlap: overlap}
	}
	overlap = ClampOverlap(chunkSize, overlap)

	step := chunkSize - overlap
	if step <= 0 {
		return nil, &ErrInvalidChunking{ChunkSize: chunkSize, Overlap: overlap}
	}

	runes := []rune(text)
	totalLen := len(runes)

	var chunks []Chunk
	for offset := 0; offset < totalLen; offset += step {
		end := offset + chunkSize
		if end > totalLen {
			end = totalLen
		}
		chunks = append(chunks, Chunk{
			Index:  len(chunks),
			Offset: offset,
			Text:   string(runes[offset:end]),
		})
	}

	return chunks, nil
}
