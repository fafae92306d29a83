package harvest

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/releasewatch/releasewatch/internal/config"
	"github.com/releasewatch/releasewatch/internal/http"
	"github.com/releasewatch/releasewatch/internal/model"
	"github.com/releasewatch/releasewatch/internal/spotify"
	"github.com/releasewatch/releasewatch/internal/store"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a harvest progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// TokenSource exchanges credentials for a bearer token.
type TokenSource interface {
	Token(ctx context.Context, creds config.Credentials) (string, error)
}

// Fetcher retrieves every release credited to one artist.
type Fetcher interface {
	ArtistReleases(ctx context.Context, artistID, token string) ([]model.Release, error)
}

// ArtistResult is the typed outcome of fetching one artist. Exactly one
// of Releases and Err is meaningful: a failed artist contributes zero
// releases and the reason, a successful one its releases.
type ArtistResult struct {
	Artist   model.Artist
	Releases []model.Release
	Err      error
}

// Report summarizes one completed invocation.
type Report struct {
	// TotalReleases is the size of the persisted collection after the
	// merge.
	TotalReleases int

	// ArtistsChecked is the number of artists attempted this run,
	// including ones whose fetch failed.
	ArtistsChecked int

	// FailedArtists is the number of artists whose fetch failed.
	FailedArtists int

	// CycleCompleted is true when this invocation exhausted the artist
	// list and wrapped the cursor back to 0.
	CycleCompleted bool

	// NewReleases are the releases fetched this run that were not in the
	// prior collection. Input for the optional cover mirror.
	NewReleases []model.Release

	// ChangedPaths are the state files whose on-disk content changed,
	// the candidates for publishing.
	ChangedPaths []string
}

// Manager coordinates one harvest invocation.
//
// State lives entirely in files loaded at the start of Run and rewritten
// at its end; the Manager itself only carries wiring plus live counters
// for progress display.
type Manager struct {
	settings *config.Settings
	creds    config.Credentials
	tokens   TokenSource
	fetcher  Fetcher
	now      func() time.Time

	artistsChecked int32
	artistsPlanned int32

	onProgress func(ProgressEvent)
}

// NewManager creates a Manager wired to the real catalog API.
//
// onProgress receives every log-worthy event of the run; pass nil to
// discard them.
func NewManager(settings *config.Settings, creds config.Credentials, onProgress func(ProgressEvent)) *Manager {
	client := http.NewClient(time.Duration(settings.RequestTimeoutSeconds) * time.Second)

	return &Manager{
		settings:   settings,
		creds:      creds,
		tokens:     spotify.NewAuthenticator(client),
		fetcher:    spotify.NewFetcher(client),
		now:        time.Now,
		onProgress: onProgress,
	}
}

// Run executes one invocation: load state, obtain a token, process up to
// the configured number of batches, merge, persist, and report.
//
// Per-artist fetch failures are logged and skipped. A failed token
// exchange or unreadable/unwritable state is fatal and returned.
func (m *Manager) Run(ctx context.Context) (*Report, error) {
	artists, err := store.Artists(m.settings.ArtistsPath())
	if err != nil {
		return nil, err
	}
	prior, err := store.Releases(m.settings.ReleasesPath())
	if err != nil {
		return nil, err
	}
	meta, err := store.Metadata(m.settings.MetadataPath())
	if err != nil {
		return nil, err
	}

	m.planProgress(len(artists), meta.BatchIndex)

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Loaded %d artists, %d known releases, cursor at batch %d", len(artists), len(prior), meta.BatchIndex),
		Level:   LevelInfo,
	})

	token, err := m.tokens.Token(ctx, m.creds)
	if err != nil {
		return nil, fmt.Errorf("token exchange: %w", err)
	}

	report := &Report{}
	var fetched []model.Release

	for i := 0; i < m.settings.BatchesPerRun; i++ {
		batch, exhausted := NextBatch(artists, meta.BatchIndex, m.settings.BatchSize)
		if exhausted {
			// Full cycle complete: wrap the cursor and forfeit the
			// remaining batch allowance of this invocation.
			meta.BatchIndex = 0
			today := model.Today(m.now())
			meta.LastFullCycle = &today
			report.CycleCompleted = true
			m.progress(ProgressEvent{Message: "Artist list exhausted; cycle complete, cursor reset to 0", Level: LevelSuccess})
			break
		}

		m.progress(ProgressEvent{
			Message: fmt.Sprintf("Batch %d: %d artists", meta.BatchIndex, len(batch)),
			Level:   LevelInfo,
		})

		for _, result := range m.fetchBatch(ctx, batch, token) {
			report.ArtistsChecked++
			atomic.AddInt32(&m.artistsChecked, 1)

			if result.Err != nil {
				report.FailedArtists++
				m.progress(ProgressEvent{
					Message: fmt.Sprintf("Error fetching %s (%s): %v", result.Artist.Name, result.Artist.ID, result.Err),
					Level:   LevelError,
				})
				continue
			}

			fetched = append(fetched, result.Releases...)
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("%s: %d releases", result.Artist.Name, len(result.Releases)),
				Level:   LevelVerbose,
			})
		}

		meta.BatchIndex++
	}

	for _, r := range fetched {
		if !prior.Has(r.ID) {
			report.NewReleases = append(report.NewReleases, r)
		}
	}

	merged := prior.Merge(fetched)
	report.TotalReleases = len(merged)

	today := model.Today(m.now())
	meta.LastRun = &today
	meta.ArtistsChecked = report.ArtistsChecked

	releasesChanged, err := store.SaveReleases(m.settings.ReleasesPath(), merged)
	if err != nil {
		return nil, err
	}
	if releasesChanged {
		report.ChangedPaths = append(report.ChangedPaths, m.settings.ReleasesPath())
	}

	metadataChanged, err := store.SaveMetadata(m.settings.MetadataPath(), meta)
	if err != nil {
		return nil, err
	}
	if metadataChanged {
		report.ChangedPaths = append(report.ChangedPaths, m.settings.MetadataPath())
	}

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Done: %d artists checked (%d failed), %d new releases, %d total", report.ArtistsChecked, report.FailedArtists, len(report.NewReleases), report.TotalReleases),
		Level:   LevelSuccess,
	})

	return report, nil
}

// fetchBatch fetches every artist of one batch sequentially, converting
// each outcome into an ArtistResult so errors never cross the batch
// boundary.
func (m *Manager) fetchBatch(ctx context.Context, batch []model.Artist, token string) []ArtistResult {
	results := make([]ArtistResult, 0, len(batch))
	for _, artist := range batch {
		releases, err := m.fetcher.ArtistReleases(ctx, artist.ID, token)
		results = append(results, ArtistResult{Artist: artist, Releases: releases, Err: err})
	}
	return results
}

// planProgress computes how many artists this invocation will attempt,
// for percentage display.
func (m *Manager) planProgress(totalArtists, cursor int) {
	remaining := totalArtists - cursor*m.settings.BatchSize
	if remaining < 0 {
		remaining = 0
	}
	planned := m.settings.BatchesPerRun * m.settings.BatchSize
	if remaining < planned {
		planned = remaining
	}
	atomic.StoreInt32(&m.artistsPlanned, int32(planned))
	atomic.StoreInt32(&m.artistsChecked, 0)
}

// GetProgress returns the number of artists checked so far and the number
// planned for this invocation.
func (m *Manager) GetProgress() (checked, planned int32) {
	return atomic.LoadInt32(&m.artistsChecked), atomic.LoadInt32(&m.artistsPlanned)
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
