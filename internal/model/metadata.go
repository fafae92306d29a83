package model

import "time"

// DateFormat is the layout used for the dates persisted in RunMetadata.
const DateFormat = "2006-01-02"

// RunMetadata is the checkpoint record persisted between invocations.
//
// BatchIndex is the only cursor the system keeps: it identifies which
// contiguous slice of the artist list is next due for processing. When the
// slice it denotes is empty the cursor resets to 0 and LastFullCycle is
// stamped; that is the entire lifecycle of the "full cycle" concept.
type RunMetadata struct {
	// LastRun is the date of the most recent invocation, nil if the
	// system has never run.
	LastRun *string `json:"last_run"`

	// LastFullCycle is the date the artist list was last covered end to
	// end, nil if no cycle has completed yet.
	LastFullCycle *string `json:"last_full_cycle_completed"`

	// ArtistsChecked is the number of artists attempted in the most
	// recent invocation (including ones whose fetch failed).
	ArtistsChecked int `json:"artists_checked_this_run"`

	// BatchIndex is the index of the next batch due for processing.
	// Always >= 0.
	BatchIndex int `json:"last_batch_index"`
}

// DefaultMetadata returns the metadata used when no checkpoint file
// exists yet: cursor at 0, counts at 0, completion dates unset.
func DefaultMetadata() RunMetadata {
	return RunMetadata{}
}

// Today formats now as a RunMetadata date string.
func Today(now time.Time) string {
	return now.Format(DateFormat)
}
