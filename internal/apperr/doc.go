// Package apperr defines the error markers shared by the organizer, its
// collaborators, and the CLI.
//
// Only directory-level failures (ErrDirectoryNotFound, ErrScan) and setup
// failures (configuration, locking) abort a run. Per-entry filesystem failures
// carry ErrMoveFailed and are recorded against the entry instead of being
// returned. Use Wrap so every message carries the same component/operation
// prefix.
package apperr
