package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	ioutils "github.com/releasewatch/releasewatch/internal/io"
	"github.com/releasewatch/releasewatch/internal/model"
)

// Artists loads the read-only artist list.
//
// The list is required input: a missing or unreadable file is an error.
// Order is preserved exactly as persisted.
func Artists(path string) ([]model.Artist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading artist list: %w", err)
	}

	var artists []model.Artist
	if err := json.Unmarshal(data, &artists); err != nil {
		return nil, fmt.Errorf("parsing artist list %s: %w", path, err)
	}
	return artists, nil
}

// Releases loads the accumulated release collection. An absent file is an
// empty collection, not an error.
func Releases(path string) (model.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading releases: %w", err)
	}

	var releases model.Collection
	if err := json.Unmarshal(data, &releases); err != nil {
		return nil, fmt.Errorf("parsing releases %s: %w", path, err)
	}
	return releases, nil
}

// SaveReleases rewrites the release collection wholesale. It reports
// whether the file content actually changed.
func SaveReleases(path string, releases model.Collection) (changed bool, err error) {
	if releases == nil {
		releases = model.Collection{}
	}
	return saveJSON(path, releases)
}

// Metadata loads the run metadata record. An absent file yields the
// defaults: cursor at 0, counts at 0, completion dates unset.
func Metadata(path string) (model.RunMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultMetadata(), nil
		}
		return model.RunMetadata{}, fmt.Errorf("loading metadata: %w", err)
	}

	var meta model.RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return model.RunMetadata{}, fmt.Errorf("parsing metadata %s: %w", path, err)
	}
	if meta.BatchIndex < 0 {
		meta.BatchIndex = 0
	}
	return meta, nil
}

// SaveMetadata rewrites the run metadata wholesale. It reports whether
// the file content actually changed.
func SaveMetadata(path string, meta model.RunMetadata) (changed bool, err error) {
	return saveJSON(path, meta)
}

// saveJSON marshals v with stable two-space indentation and writes it
// atomically, comparing against the prior content first.
func saveJSON(path string, v any) (changed bool, err error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return false, err
	}
	data = append(data, '\n')

	prior, readErr := os.ReadFile(path)
	if readErr == nil && bytes.Equal(prior, data) {
		return false, nil
	}

	if err := ioutils.WriteFileAtomic(path, data, 0644); err != nil {
		return false, err
	}
	return true, nil
}
