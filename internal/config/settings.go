package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Data settings
	DataDir       string `json:"data_dir"`
	ArtistsFile   string `json:"artists_file"`
	ReleasesFile  string `json:"releases_file"`
	MetadataFile  string `json:"metadata_file"`

	// Harvest settings
	BatchSize     int `json:"batch_size"`
	BatchesPerRun int `json:"batches_per_run"`

	// Publish settings
	Publish       bool   `json:"publish"`
	PublishRemote string `json:"publish_remote"`
	PublishBranch string `json:"publish_branch"`

	// Cover mirror settings
	MirrorCovers     bool   `json:"mirror_covers"`
	CoversDir        string `json:"covers_dir"`
	CoverMaxSize     int    `json:"cover_max_size"`
	CoverConcurrency int    `json:"cover_concurrency"`

	// Network settings
	RequestTimeoutSeconds int `json:"request_timeout_seconds"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DataDir:      "data",
		ArtistsFile:  "artists.json",
		ReleasesFile: "releases.json",
		MetadataFile: "metadata.json",

		BatchSize:     1000,
		BatchesPerRun: 5,

		Publish:       false,
		PublishRemote: "origin",
		PublishBranch: "main",

		MirrorCovers:     false,
		CoversDir:        "covers",
		CoverMaxSize:     640,
		CoverConcurrency: 4,

		RequestTimeoutSeconds: 60,
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: defaults are returned so the tool works
// without any configuration. Fields absent from the file keep their
// default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ArtistsPath returns the full path of the artist list file.
func (s *Settings) ArtistsPath() string {
	return filepath.Join(s.DataDir, s.ArtistsFile)
}

// ReleasesPath returns the full path of the release collection file.
func (s *Settings) ReleasesPath() string {
	return filepath.Join(s.DataDir, s.ReleasesFile)
}

// MetadataPath returns the full path of the run metadata file.
func (s *Settings) MetadataPath() string {
	return filepath.Join(s.DataDir, s.MetadataFile)
}

// CoversPath returns the full path of the cover mirror directory.
func (s *Settings) CoversPath() string {
	return filepath.Join(s.DataDir, s.CoversDir)
}
