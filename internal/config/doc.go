// Package config provides configuration management for releasewatch.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Reading API credentials from the environment
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// State files under ./data
//	// 1000 artists per batch, 5 batches per run
//	// Publishing and the cover mirror disabled
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Credentials
//
// API credentials are secrets and never live in the settings file. They
// are read from the environment (optionally via a .env file):
//
//	creds, err := config.LoadCredentials()
//	if err != nil {
//	    // A credential is missing; abort before any network call.
//	}
package config
