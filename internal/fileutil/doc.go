// Package fileutil holds the filesystem helpers shared by the organizer, the
// undo path, and the CLI.
//
// FS is the narrow interface the organizer is written against; OS is the real
// implementation. MoveNoClobber never replaces an existing destination: on
// Linux it uses renameat2(RENAME_NOREPLACE), elsewhere (or on filesystems
// that reject the flag) a stat-then-rename, and across devices a verified
// copy followed by removal of the source.
package fileutil
