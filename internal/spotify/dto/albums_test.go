package dto

import "testing"

func TestAlbum_ToRelease(t *testing.T) {
	album := Album{
		ID:          "abc123",
		Name:        "Night Drive",
		AlbumType:   "album",
		ReleaseDate: "2019-03",
		TotalTracks: 12,
		Artists: []ArtistRef{
			{ID: "a1", Name: "First Artist"},
			{ID: "a2", Name: "Second Artist"},
		},
		Images: []Image{
			{URL: "https://img/large.jpg", Width: 640, Height: 640},
			{URL: "https://img/small.jpg", Width: 64, Height: 64},
		},
		ExternalURLs: map[string]string{"spotify": "https://open.spotify.com/album/abc123"},
	}

	r := album.ToRelease()

	if r.ID != "abc123" || r.Title != "Night Drive" {
		t.Errorf("identity fields wrong: %+v", r)
	}
	if r.ArtistCredit != "First Artist, Second Artist" {
		t.Errorf("got artist credit %q", r.ArtistCredit)
	}
	if r.ReleaseDate != "2019-03" {
		t.Errorf("partial release date not kept verbatim: %q", r.ReleaseDate)
	}
	if r.CoverURL != "https://img/large.jpg" {
		t.Errorf("got cover %q, want first image", r.CoverURL)
	}
	if r.ExternalURL != "https://open.spotify.com/album/abc123" {
		t.Errorf("got external URL %q", r.ExternalURL)
	}
	if r.Type != "album" || r.TotalTracks != 12 {
		t.Errorf("type/tracks wrong: %+v", r)
	}
}

func TestAlbum_ToRelease_NoImages(t *testing.T) {
	album := Album{ID: "x", Artists: []ArtistRef{{ID: "a1", Name: "Solo"}}}

	if got := album.ToRelease().CoverURL; got != "" {
		t.Errorf("got cover %q, want empty string", got)
	}
}

func TestAlbum_CreditedTo(t *testing.T) {
	album := Album{Artists: []ArtistRef{{ID: "a1"}, {ID: "a2"}}}

	if !album.CreditedTo("a2") {
		t.Error("expected a2 to be credited")
	}
	if album.CreditedTo("a3") {
		t.Error("did not expect a3 to be credited")
	}
}
