// Package journal persists the moves of real organizer runs in SQLite so they
// can be listed and undone later.
//
// The database lives at <state_dir>/journal.db and is opened in WAL mode with
// a busy timeout; writes retry briefly on SQLITE_BUSY. The schema is created
// from the embedded schema.sql on first use and version-checked afterwards.
// Dry runs never reach this package.
package journal
