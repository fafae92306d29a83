package covers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/releasewatch/releasewatch/internal/harvest"
	ioutils "github.com/releasewatch/releasewatch/internal/io"
	"github.com/releasewatch/releasewatch/internal/model"
)

// Downloader fetches raw bytes from a URL. The API client satisfies it.
type Downloader interface {
	DownloadBytes(ctx context.Context, url string) ([]byte, error)
}

// Mirror downloads and normalizes cover art into a local directory.
type Mirror struct {
	downloader  Downloader
	images      *ioutils.ImageService
	dir         string
	maxSize     int
	concurrency int

	onProgress func(harvest.ProgressEvent)
}

// NewMirror creates a Mirror writing into dir.
//
// maxSize caps the longer image side in pixels; concurrency bounds the
// parallel downloads (values below 1 are treated as 1).
func NewMirror(downloader Downloader, dir string, maxSize, concurrency int, onProgress func(harvest.ProgressEvent)) *Mirror {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Mirror{
		downloader:  downloader,
		images:      ioutils.NewImageService(),
		dir:         dir,
		maxSize:     maxSize,
		concurrency: concurrency,
		onProgress:  onProgress,
	}
}

// Sync downloads cover art for the given releases, skipping releases
// without a cover URL and covers already present on disk. It returns the
// number of covers written.
//
// Individual failures are reported as warnings and skipped; Sync only
// returns an error when the mirror directory itself cannot be created or
// the context is cancelled.
func (m *Mirror) Sync(ctx context.Context, releases []model.Release) (int, error) {
	if err := ioutils.EnsureDir(m.dir); err != nil {
		return 0, fmt.Errorf("creating cover directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	written := make(chan string, len(releases))
	for _, release := range releases {
		release := release
		if release.CoverURL == "" {
			continue
		}

		path := m.coverPath(release.ID)
		if _, err := os.Stat(path); err == nil {
			continue
		}

		g.Go(func() error {
			if err := m.fetchCover(ctx, release, path); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				m.progress(harvest.ProgressEvent{
					Message: fmt.Sprintf("Cover for %s (%s): %v", release.Title, release.ID, err),
					Level:   harvest.LevelWarning,
				})
				return nil
			}
			written <- release.ID
			return nil
		})
	}

	err := g.Wait()
	close(written)

	count := 0
	for range written {
		count++
	}
	if count > 0 {
		m.progress(harvest.ProgressEvent{
			Message: fmt.Sprintf("Mirrored %d cover(s) to %s", count, m.dir),
			Level:   harvest.LevelInfo,
		})
	}
	return count, err
}

func (m *Mirror) fetchCover(ctx context.Context, release model.Release, path string) error {
	data, err := m.downloader.DownloadBytes(ctx, release.CoverURL)
	if err != nil {
		return err
	}

	thumb, err := m.images.JPEGThumbnail(data, m.maxSize)
	if err != nil {
		return err
	}

	return ioutils.WriteFileAtomic(path, thumb, 0644)
}

// coverPath maps a release ID to its file in the mirror directory. The
// ID comes from the API and is not trusted as a path component.
func (m *Mirror) coverPath(releaseID string) string {
	return filepath.Join(m.dir, ioutils.SanitizeFileName(releaseID)+".jpg")
}

func (m *Mirror) progress(event harvest.ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
