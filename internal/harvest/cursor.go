package harvest

import "github.com/releasewatch/releasewatch/internal/model"

// NextBatch computes the contiguous slice of artists denoted by the given
// batch index: positions [index*size, (index+1)*size), clamped to the
// list. exhausted is true iff the slice is empty, i.e. the cursor has
// walked past the end of the list.
//
// NextBatch is pure. Advancing the cursor and wrapping it around on
// exhaustion are the Manager's responsibility. Successive indexes
// partition the list exactly: no artist is omitted or duplicated within
// one cycle, provided the list order is stable across runs.
func NextBatch(artists []model.Artist, index, size int) (batch []model.Artist, exhausted bool) {
	if index < 0 || size <= 0 {
		return nil, true
	}

	start := index * size
	if start >= len(artists) {
		return nil, true
	}

	end := start + size
	if end > len(artists) {
		end = len(artists)
	}
	return artists[start:end], false
}
