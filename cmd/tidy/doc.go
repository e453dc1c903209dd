// Command tidy sorts the top level of a directory into category folders.
//
// Usage:
//
//	tidy [directory] [--dry-run] [--yes] [--report] [--json]
//	tidy categories
//	tidy history [--limit N]
//	tidy undo [run-id]
//	tidy config init|validate
//
// The directory defaults to the current working directory. A directory whose
// name matches a subcommand must be given as a path (./history).
package main
