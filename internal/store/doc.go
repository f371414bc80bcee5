// Package store persists benchmark reports as JSON files.
//
// Writes go through a temporary file in the target directory followed by a
// rename, so a reader never observes a partially written report.
package store
