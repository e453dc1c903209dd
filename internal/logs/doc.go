// Package logs reads back the JSON log file written when paths.log_dir is
// set.
//
// Tail keeps memory bounded with a ring of the last N matching lines and can
// narrow the output to a single run by its run_id prefix. Follow polls the
// file for appended lines until the context ends; `tidy logs --follow` uses it
// to watch a run from another terminal.
package logs
