package model

// Release types returned by the catalog. Compilations are filtered out
// before a Release is ever constructed.
const (
	TypeAlbum  = "album"
	TypeSingle = "single"
)

// Release represents one album or single harvested from the catalog.
//
// Identity is ID. Two Release values with the same ID describe the same
// catalog entry, possibly at different points in time (e.g., a corrected
// cover URL); merging keeps the newer one.
type Release struct {
	// ID is the catalog-unique identifier and the deduplication key.
	ID string `json:"id"`

	// Title is the release title.
	Title string `json:"title"`

	// ArtistCredit is the joined display names of all credited artists,
	// e.g. "Artist A, Artist B".
	ArtistCredit string `json:"artist_credit"`

	// ReleaseDate is the catalog's release date string. It may be a full
	// ISO date ("2019-03-01") or partial ("2019-03", "2019") and is
	// stored verbatim.
	ReleaseDate string `json:"release_date"`

	// CoverURL is the URL of the primary cover image. Empty string means
	// the catalog supplied no images.
	CoverURL string `json:"cover_url"`

	// ExternalURL links to the release on the catalog's public site.
	ExternalURL string `json:"external_url"`

	// Type is TypeAlbum or TypeSingle.
	Type string `json:"release_type"`

	// TotalTracks is the track count reported by the catalog.
	TotalTracks int `json:"total_tracks"`
}

// Collection is an ordered, id-keyed set of releases.
//
// Order is first-seen order: merging newer data for a known ID updates the
// entry in place rather than moving it, so persisted output stays stable
// across runs that change nothing.
type Collection []Release

// Merge returns a new Collection containing every release of c plus every
// release of newer, deduplicated by ID with last-write-wins semantics:
// a release in newer replaces any earlier entry sharing its ID, including
// duplicates within newer itself.
//
// Merge is idempotent: c.Merge(c) equals c.
func (c Collection) Merge(newer []Release) Collection {
	merged := make(Collection, 0, len(c)+len(newer))
	index := make(map[string]int, len(c)+len(newer))

	for _, batch := range [][]Release{c, newer} {
		for _, r := range batch {
			if i, ok := index[r.ID]; ok {
				merged[i] = r
				continue
			}
			index[r.ID] = len(merged)
			merged = append(merged, r)
		}
	}

	return merged
}

// Has reports whether the collection contains a release with the given ID.
func (c Collection) Has(id string) bool {
	for _, r := range c {
		if r.ID == id {
			return true
		}
	}
	return false
}
