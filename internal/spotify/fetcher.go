package spotify

import (
	"context"
	"fmt"

	"github.com/releasewatch/releasewatch/internal/http"
	"github.com/releasewatch/releasewatch/internal/model"
	"github.com/releasewatch/releasewatch/internal/spotify/dto"
)

// APIBaseURL is the fixed base of the catalog API.
const APIBaseURL = "https://api.spotify.com/v1"

// PageSize is the number of items requested per page, the endpoint's
// maximum.
const PageSize = 50

// Fetcher retrieves every page of an artist's release list.
//
// The fetch is strictly sequential: one page at a time, following the
// API's server-supplied "next page" URL until none remains. Fetcher does
// no caching, retrying, or rate limiting.
//
// Example usage:
//
//	fetcher := NewFetcher(client)
//	releases, err := fetcher.ArtistReleases(ctx, "4tZwfgrHOc3mvqYlEYSvVi", token)
type Fetcher struct {
	client *http.Client

	// BaseURL is the API root. Overridable for tests; defaults to
	// APIBaseURL.
	BaseURL string
}

// NewFetcher creates a Fetcher using the given client.
func NewFetcher(client *http.Client) *Fetcher {
	return &Fetcher{
		client:  client,
		BaseURL: APIBaseURL,
	}
}

// ArtistReleases returns every album and single credited to the artist,
// in the order the API lists them.
//
// Only album and single release groups are requested. Two further filters
// apply per item:
//   - compilations are excluded
//   - entries that do not credit the queried artist are excluded
//     (these are "appears on" releases belonging to other artists)
//
// A page with a missing or empty item list contributes nothing and is not
// an error. Any fetch or decode error aborts this artist's fetch and is
// returned; the caller decides whether that aborts the run (it does not:
// the orchestrator logs per-artist failures and continues).
func (f *Fetcher) ArtistReleases(ctx context.Context, artistID, token string) ([]model.Release, error) {
	pageURL := fmt.Sprintf("%s/artists/%s/albums?include_groups=album,single&limit=%d", f.BaseURL, artistID, PageSize)

	var releases []model.Release
	for pageURL != "" {
		var page dto.AlbumsPage
		if err := f.client.GetJSON(ctx, pageURL, token, &page); err != nil {
			return nil, fmt.Errorf("fetching releases for artist %s: %w", artistID, err)
		}

		for _, item := range page.Items {
			if item.AlbumType == "compilation" {
				continue
			}
			if !item.CreditedTo(artistID) {
				continue
			}
			releases = append(releases, item.ToRelease())
		}

		pageURL = ""
		if page.Next != nil {
			pageURL = *page.Next
		}
	}

	return releases, nil
}
