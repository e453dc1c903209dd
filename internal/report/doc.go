// Package report holds the organizer.Reporter implementations: structured
// log lines, an in-memory collector that also renders the optional report
// file, and a fan-out.
package report
