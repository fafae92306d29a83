package model

// Artist identifies one artist in the harvest list.
//
// The list is loaded in full at run start and treated as read-only input.
// Its order must not change between runs: the batch cursor partitions the
// list by position, so reordering would make batches overlap or skip
// artists across a cycle.
type Artist struct {
	// ID is the catalog's identifier for the artist.
	ID string `json:"id"`

	// Name is the artist's display name, used only for log output.
	Name string `json:"name"`
}
