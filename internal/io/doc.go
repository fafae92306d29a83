// Package ioutils provides file system utilities for releasewatch.
//
// This package contains functions for:
//   - Atomic file writing (temp file + rename)
//   - Directory creation
//   - Cover image processing
//
// State files are always rewritten in full; WriteFileAtomic guarantees a
// reader never observes a half-written file even if the process dies
// mid-write.
package ioutils
