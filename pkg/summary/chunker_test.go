package summary

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitWindowing(t *testing.T) {
	// 22 runes, chunk size 10, overlap 4 -> step 6
	text := "abcdefghijklmnopqrstuv"

	chunks, err := Split(text, 10, 4)
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}

	wantOffsets := []int{0, 6, 12, 18}
	if len(chunks) != len(wantOffsets) {
		t.Fatalf("chunk count = %d, want %d", len(chunks), len(wantOffsets))
	}

	for i, c := range chunks {
		if c.Index != i {
			t.Errorf("chunk %d: Index = %d, want %d", i, c.Index, i)
		}
		if c.Offset != wantOffsets[i] {
			t.Errorf("chunk %d: Offset = %d, want %d", i, c.Offset, wantOffsets[i])
		}
	}

	if chunks[0].Text != "abcdefghij" {
		t.Errorf("first chunk = %q", chunks[0].Text)
	}
	if chunks[1].Text != "ghijklmnop" {
		t.Errorf("second chunk = %q", chunks[1].Text)
	}
	// Final window is shorter but still covers the tail
	if chunks[3].Text != "stuv" {
		t.Errorf("last chunk = %q", chunks[3].Text)
	}
}

func TestSplitCoversWholeText(t *testing.T) {
	text := strings.Repeat("meeting transcript text ", 50)

	chunks, err := Split(text, 100, 20)
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}

	runes := []rune(text)
	covered := make([]bool, len(runes))
	for _, c := range chunks {
		for i := range []rune(c.Text) {
			covered[c.Offset+i] = true
		}
	}
	for i, ok := range covered {
		if !ok {
			t.Fatalf("rune %d not covered by any chunk", i)
		}
	}
}

func TestSplitShortText(t *testing.T) {
	chunks, err := Split("short", 1000, 100)
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("chunk count = %d, want 1", len(chunks))
	}
	if chunks[0].Text != "short" {
		t.Errorf("chunk text = %q", chunks[0].Text)
	}
}

func TestSplitEmptyText(t *testing.T) {
	chunks, err := Split("", 100, 10)
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}
	if len(chunks) != 0 {
		t.Fatalf("chunk count = %d, want 0", len(chunks))
	}
}

func TestSplitDeterministic(t *testing.T) {
	text := strings.Repeat("déjà vu ünïcode ", 30)

	first, err := Split(text, 37, 11)
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}
	second, err := Split(text, 37, 11)
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("same input produced different chunk sequences")
	}
}

func TestSplitInvalidChunkSize(t *testing.T) {
	for _, size := range []int{0, -5} {
		if _, err := Split("text", size, 0); err == nil {
			t.Errorf("chunk size %d: expected error", size)
		}
	}
}

func TestClampOverlap(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int
		overlap   int
		want      int
	}{
		{"negative overlap becomes zero", 10, -3, 0},
		{"overlap equal to size pulled back", 10, 10, 9},
		{"overlap above size pulled back", 10, 25, 9},
		{"valid overlap unchanged", 10, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampOverlap(tt.chunkSize, tt.overlap); got != tt.want {
				t.Errorf("ClampOverlap(%d, %d) = %d, want %d", tt.chunkSize, tt.overlap, got, tt.want)
			}
		})
	}
}
