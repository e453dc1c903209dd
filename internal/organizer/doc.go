// Package organizer sorts the top level of a directory into category
// subdirectories.
//
// Rules classifies a file name by extension. Scan lists the regular entries of
// the target directory in name order. PlanOrExecute decides where a single
// entry goes and, outside dry runs, moves it there without ever overwriting an
// existing file; name collisions resolve to "name (n).ext". Run ties these
// together and hands one Record per entry to a Reporter. Undo reverses a list
// of journaled moves.
//
// Per-entry problems never abort a run: they become a failed MoveOutcome. Only
// a target directory that cannot be found or listed is fatal.
package organizer
