package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/releasewatch/releasewatch/internal/config"
	internalhttp "github.com/releasewatch/releasewatch/internal/http"
)

func testClient() *internalhttp.Client {
	return internalhttp.NewClient(5 * time.Second)
}

func TestAuthenticator_Token(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("got method %s, want POST", r.Method)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client-id" || pass != "client-secret" {
			t.Errorf("unexpected basic auth: %q %q", user, pass)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.PostForm.Get("grant_type"); got != "client_credentials" {
			t.Errorf("got grant_type %q, want client_credentials", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "the-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
	defer server.Close()

	auth := NewAuthenticator(testClient())
	auth.Endpoint = server.URL

	creds := config.Credentials{ClientID: "client-id", ClientSecret: "client-secret"}
	token, err := auth.Token(context.Background(), creds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "the-token" {
		t.Errorf("got token %q, want the-token", token)
	}
}

func TestAuthenticator_Token_EmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"token_type": "Bearer"})
	}))
	defer server.Close()

	auth := NewAuthenticator(testClient())
	auth.Endpoint = server.URL

	_, err := auth.Token(context.Background(), config.Credentials{ClientID: "id", ClientSecret: "s"})
	if !errors.Is(err, ErrNoToken) {
		t.Errorf("got error %v, want ErrNoToken", err)
	}
}

func TestAuthenticator_Token_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad client", http.StatusBadRequest)
	}))
	defer server.Close()

	auth := NewAuthenticator(testClient())
	auth.Endpoint = server.URL

	_, err := auth.Token(context.Background(), config.Credentials{ClientID: "id", ClientSecret: "s"})
	var statusErr *internalhttp.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("got error %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", statusErr.StatusCode)
	}
}

// albumItem builds a minimal albums-page item as raw JSON-able data.
func albumItem(id, albumType, artistID, artistName string) map[string]any {
	return map[string]any{
		"id":           id,
		"name":         "Release " + id,
		"album_type":   albumType,
		"release_date": "2024-01-15",
		"total_tracks": 10,
		"artists": []map[string]any{
			{"id": artistID, "name": artistName},
		},
		"images": []map[string]any{
			{"url": "https://img/" + id + ".jpg", "width": 640, "height": 640},
		},
		"external_urls": map[string]string{"spotify": "https://open.spotify.com/album/" + id},
	}
}

func TestFetcher_ArtistReleases_Pagination(t *testing.T) {
	var requests int
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("got Authorization %q, want Bearer tok", got)
		}

		switch requests {
		case 1:
			next := server.URL + "/page2"
			json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{albumItem("r1", "album", "artist1", "Artist One")},
				"next":  next,
			})
		case 2:
			json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{albumItem("r2", "single", "artist1", "Artist One")},
				"next":  nil,
			})
		default:
			t.Errorf("unexpected request %d to %s", requests, r.URL)
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	fetcher := NewFetcher(testClient())
	fetcher.BaseURL = server.URL

	releases, err := fetcher.ArtistReleases(context.Background(), "artist1", "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if requests != 2 {
		t.Errorf("issued %d requests, want 2", requests)
	}
	if len(releases) != 2 {
		t.Fatalf("got %d releases, want 2", len(releases))
	}
	if releases[0].ID != "r1" || releases[1].ID != "r2" {
		t.Errorf("pages not concatenated in order: %q, %q", releases[0].ID, releases[1].ID)
	}
	if releases[0].CoverURL != "https://img/r1.jpg" {
		t.Errorf("got cover %q", releases[0].CoverURL)
	}
	if releases[0].ExternalURL != "https://open.spotify.com/album/r1" {
		t.Errorf("got external URL %q", releases[0].ExternalURL)
	}
}

func TestFetcher_ArtistReleases_Filtering(t *testing.T) {
	items := []map[string]any{
		albumItem("keep-album", "album", "artist1", "Artist One"),
		albumItem("keep-single", "single", "artist1", "Artist One"),
		albumItem("drop-compilation", "compilation", "artist1", "Artist One"),
		albumItem("drop-appears-on", "album", "someone-else", "Other Artist"),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("include_groups"); got != "album,single" {
			t.Errorf("got include_groups %q, want album,single", got)
		}
		if got := r.URL.Query().Get("limit"); got != fmt.Sprint(PageSize) {
			t.Errorf("got limit %q, want %d", got, PageSize)
		}
		json.NewEncoder(w).Encode(map[string]any{"items": items, "next": nil})
	}))
	defer server.Close()

	fetcher := NewFetcher(testClient())
	fetcher.BaseURL = server.URL

	releases, err := fetcher.ArtistReleases(context.Background(), "artist1", "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(releases) != 2 {
		t.Fatalf("got %d releases, want 2: %+v", len(releases), releases)
	}
	for _, r := range releases {
		if r.ID == "drop-compilation" || r.ID == "drop-appears-on" {
			t.Errorf("release %q should have been filtered out", r.ID)
		}
	}
}

func TestFetcher_ArtistReleases_MissingItemsIsEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"next": nil})
	}))
	defer server.Close()

	fetcher := NewFetcher(testClient())
	fetcher.BaseURL = server.URL

	releases, err := fetcher.ArtistReleases(context.Background(), "artist1", "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(releases) != 0 {
		t.Errorf("got %d releases, want 0", len(releases))
	}
}

func TestFetcher_ArtistReleases_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	fetcher := NewFetcher(testClient())
	fetcher.BaseURL = server.URL

	if _, err := fetcher.ArtistReleases(context.Background(), "artist1", "tok"); err == nil {
		t.Error("expected error for non-2xx page response")
	}
}
