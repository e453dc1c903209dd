// Package preflight provides readiness checks for the filesystem paths tidy
// depends on.
//
// The CLI runs them before a real organize run. Failures are reported as
// warnings only: the organizer still records an outcome for every entry, so
// a permission problem shows up per file instead of aborting the run.
package preflight
