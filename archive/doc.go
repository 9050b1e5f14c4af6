// Package archive implements a content-addressed genome -> identifier
// mapping: a mutex-guarded in-memory index backed
// by the portable ".arc" text format, with conflict-checked inserts,
// alias-concatenating merges, and an optional fsnotify-driven reload
// for operators who regenerate the shared archive out-of-band.
package archive
