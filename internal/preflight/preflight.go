package preflight

import (
	"tidy/internal/config"
)

// minStateFree is the space the journal needs to keep writing.
const minStateFree = 1 << 20

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks for a real run over target.
func RunAll(cfg *config.Config, target string) []Result {
	results := []Result{CheckDirectoryAccess("Target directory", target)}
	if cfg == nil {
		return results
	}
	if cfg.Journal.Enabled {
		results = append(results,
			CheckDirectoryAccess("State directory", cfg.Paths.StateDir),
			CheckFreeSpace("State filesystem", cfg.Paths.StateDir, minStateFree),
		)
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}
