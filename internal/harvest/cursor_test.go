package harvest

import (
	"fmt"
	"testing"

	"github.com/releasewatch/releasewatch/internal/model"
)

func artistList(n int) []model.Artist {
	artists := make([]model.Artist, n)
	for i := range artists {
		artists[i] = model.Artist{ID: fmt.Sprintf("a%d", i), Name: fmt.Sprintf("Artist %d", i)}
	}
	return artists
}

func TestNextBatch(t *testing.T) {
	artists := artistList(5)

	tests := []struct {
		name          string
		index         int
		size          int
		wantFirst     string
		wantLen       int
		wantExhausted bool
	}{
		{"first batch", 0, 2, "a0", 2, false},
		{"middle batch", 1, 2, "a2", 2, false},
		{"final short batch", 2, 2, "a4", 1, false},
		{"past the end", 3, 2, "", 0, true},
		{"far past the end", 100, 2, "", 0, true},
		{"size covers whole list", 0, 10, "a0", 5, false},
		{"negative index", -1, 2, "", 0, true},
		{"zero size", 0, 0, "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch, exhausted := NextBatch(artists, tt.index, tt.size)

			if exhausted != tt.wantExhausted {
				t.Fatalf("got exhausted=%v, want %v", exhausted, tt.wantExhausted)
			}
			if len(batch) != tt.wantLen {
				t.Fatalf("got %d artists, want %d", len(batch), tt.wantLen)
			}
			if tt.wantLen > 0 && batch[0].ID != tt.wantFirst {
				t.Errorf("got first artist %q, want %q", batch[0].ID, tt.wantFirst)
			}
		})
	}
}

func TestNextBatch_EmptyList(t *testing.T) {
	if _, exhausted := NextBatch(nil, 0, 10); !exhausted {
		t.Error("index 0 on an empty list should be exhausted")
	}
}

// Incrementing the index over ceil(len/size) calls must partition the
// list exactly: every artist exactly once, in order, and the call after
// the last non-empty slice is exhausted.
func TestNextBatch_PartitionsList(t *testing.T) {
	for _, size := range []int{1, 2, 3, 7, 50} {
		t.Run(fmt.Sprintf("size %d", size), func(t *testing.T) {
			artists := artistList(17)

			var seen []model.Artist
			index := 0
			for {
				batch, exhausted := NextBatch(artists, index, size)
				if exhausted {
					break
				}
				if len(batch) > size {
					t.Fatalf("batch %d has %d artists, exceeds size %d", index, len(batch), size)
				}
				seen = append(seen, batch...)
				index++
			}

			if len(seen) != len(artists) {
				t.Fatalf("partition covered %d artists, want %d", len(seen), len(artists))
			}
			for i := range artists {
				if seen[i].ID != artists[i].ID {
					t.Errorf("position %d: got %q, want %q", i, seen[i].ID, artists[i].ID)
				}
			}

			wantCalls := (len(artists) + size - 1) / size
			if index != wantCalls {
				t.Errorf("took %d non-empty batches, want %d", index, wantCalls)
			}
		})
	}
}
