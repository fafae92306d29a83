// Package covers maintains an optional local mirror of release cover
// art.
//
// The harvest itself only records cover URLs; when the mirror is enabled,
// releases that entered the collection this run get their cover image
// downloaded, scaled to a configured maximum size, converted to JPEG, and
// saved as <release id>.jpg. Releases without a cover, and covers already
// on disk, are skipped.
//
// Downloads run with bounded concurrency. Failures are reported as
// warnings and never affect the harvested state: the mirror is strictly
// derived data that a later run can fill in.
package covers
