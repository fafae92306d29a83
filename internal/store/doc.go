// Package store persists releasewatch state as JSON files.
//
// Three documents exist:
//
//   - the artist list: read-only input, loaded in full at run start, in
//     file order (never sorted; batch partitioning depends on it)
//   - the release collection: a JSON array owned by this system,
//     rewritten wholesale at the end of each run
//   - the run metadata: the cursor/checkpoint record, also rewritten
//     wholesale; absent file loads as defaults
//
// Writes go through an atomic temp-file-and-rename, so a crash mid-run
// leaves the previously persisted state untouched. Save functions report
// whether the on-disk content actually changed, which feeds the decision
// to publish.
package store
