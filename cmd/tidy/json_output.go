package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"tidy/internal/journal"
	"tidy/internal/organizer"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type runCountsJSON struct {
	Total   int `json:"total"`
	Moved   int `json:"moved"`
	Renamed int `json:"renamed"`
	Planned int `json:"planned"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

type recordJSON struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Outcome     string `json:"outcome"`
	Destination string `json:"destination,omitempty"`
	FinalName   string `json:"final_name,omitempty"`
	Error       string `json:"error,omitempty"`
}

type runJSON struct {
	RunID       string        `json:"run_id,omitempty"`
	Dir         string        `json:"dir"`
	DryRun      bool          `json:"dry_run"`
	Interrupted bool          `json:"interrupted,omitempty"`
	StartedAt   time.Time     `json:"started_at"`
	FinishedAt  time.Time     `json:"finished_at"`
	Summary     runCountsJSON `json:"summary"`
	Records     []recordJSON  `json:"records"`
	ReportPath  string        `json:"report_path,omitempty"`
}

func newRunJSON(runID string, summary organizer.Summary, started, finished time.Time, reportPath string) runJSON {
	out := runJSON{
		RunID:       runID,
		Dir:         summary.Dir,
		DryRun:      summary.DryRun,
		Interrupted: summary.Interrupted,
		StartedAt:   started.UTC(),
		FinishedAt:  finished.UTC(),
		Summary: runCountsJSON{
			Total:   summary.Total,
			Moved:   summary.Moved,
			Renamed: summary.Renamed,
			Planned: summary.Planned,
			Skipped: summary.Skipped,
			Failed:  summary.Failed,
		},
		Records:    make([]recordJSON, 0, len(summary.Records)),
		ReportPath: reportPath,
	}
	for _, rec := range summary.Records {
		out.Records = append(out.Records, recordJSON{
			Name:        rec.Name,
			Category:    rec.Category,
			Outcome:     string(rec.Outcome.Kind),
			Destination: rec.Outcome.Destination,
			FinalName:   rec.Outcome.FinalName,
			Error:       rec.Outcome.ErrorText(),
		})
	}
	return out
}

type historyRunJSON struct {
	ID         string     `json:"id"`
	Dir        string     `json:"dir"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Moved      int        `json:"moved"`
	Failed     int        `json:"failed"`
	Undone     int        `json:"undone"`
}

func newHistoryJSON(runs []journal.Run) []historyRunJSON {
	out := make([]historyRunJSON, 0, len(runs))
	for _, run := range runs {
		out = append(out, historyRunJSON{
			ID:         run.ID,
			Dir:        run.Dir,
			StartedAt:  run.StartedAt,
			FinishedAt: run.FinishedAt,
			Moved:      run.Moved,
			Failed:     run.Failed,
			Undone:     run.Undone,
		})
	}
	return out
}
