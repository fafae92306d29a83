// Package model defines the core data structures used throughout
// releasewatch.
//
// # Artist
//
// Artist is a read-only input record identifying one artist to harvest.
// The artist list is owned externally; releasewatch never mutates it and
// never reorders it, because batch partitioning depends on a stable order.
//
// # Release
//
// Release is one album or single harvested from the catalog. Identity is
// the catalog ID; the accumulated collection is a set keyed by it.
//
// # Collection
//
// Collection is the id-keyed release set with last-write-wins merging:
//
//	merged := prior.Merge(fetchedThisRun)
//	// re-fetched releases overwrite their earlier entries in place
//
// # RunMetadata
//
// RunMetadata is the checkpoint record persisted between invocations. Its
// batch index is the only cursor: it names the next contiguous slice of
// the artist list due for processing.
package model
