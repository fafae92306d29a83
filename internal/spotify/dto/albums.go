package dto

import (
	"strings"

	"github.com/releasewatch/releasewatch/internal/model"
)

// Provider is the external_urls key whose value becomes the release's
// public link.
const Provider = "spotify"

// AlbumsPage is one page of the artist-albums endpoint.
//
// Next is the server-supplied URL of the following page, null on the last
// one. A missing or empty Items list is a valid (empty) page.
type AlbumsPage struct {
	Items []Album `json:"items"`
	Next  *string `json:"next"`
}

// Album is one entry of an albums page.
type Album struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	AlbumType    string            `json:"album_type"`
	AlbumGroup   string            `json:"album_group"`
	ReleaseDate  string            `json:"release_date"`
	TotalTracks  int               `json:"total_tracks"`
	Artists      []ArtistRef       `json:"artists"`
	Images       []Image           `json:"images"`
	ExternalURLs map[string]string `json:"external_urls"`
}

// ArtistRef is a credited artist on an album entry.
type ArtistRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Image is one cover image variant. The API lists variants largest first.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// CreditedTo reports whether the given artist appears in the album's
// credit list. Album pages include "appears on" entries from other
// artists; those fail this check.
func (a *Album) CreditedTo(artistID string) bool {
	for _, ref := range a.Artists {
		if ref.ID == artistID {
			return true
		}
	}
	return false
}

// ToRelease converts the wire representation to a model.Release.
//
// The first image URL becomes the cover (empty string when the entry has
// no images), and the provider's external URL becomes the public link.
// The release date string is copied verbatim; it may be partial.
func (a *Album) ToRelease() model.Release {
	coverURL := ""
	if len(a.Images) > 0 {
		coverURL = a.Images[0].URL
	}

	names := make([]string, 0, len(a.Artists))
	for _, ref := range a.Artists {
		names = append(names, ref.Name)
	}

	return model.Release{
		ID:           a.ID,
		Title:        a.Name,
		ArtistCredit: strings.Join(names, ", "),
		ReleaseDate:  a.ReleaseDate,
		CoverURL:     coverURL,
		ExternalURL:  a.ExternalURLs[Provider],
		Type:         a.AlbumType,
		TotalTracks:  a.TotalTracks,
	}
}
