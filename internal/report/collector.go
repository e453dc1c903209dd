package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"tidy/internal/organizer"
)

// Collector keeps every record of a run in memory.
type Collector struct {
	mu      sync.Mutex
	started time.Time
	records []organizer.Record
}

// NewCollector returns a collector whose report duration starts at started.
func NewCollector(started time.Time) *Collector {
	return &Collector{started: started}
}

// Record implements organizer.Reporter.
func (c *Collector) Record(_ context.Context, rec organizer.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, rec)
}

// Records returns a copy of the collected records.
func (c *Collector) Records() []organizer.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]organizer.Record(nil), c.records...)
}

// WriteReport renders the plain-text organization report:
// header, totals, one MOVED line per relocation and one ERROR line per
// failure.
func (c *Collector) WriteReport(w io.Writer, finished time.Time) error {
	records := c.Records()
	var moves, failures []string
	for _, rec := range records {
		switch {
		case rec.Outcome.Kind.Relocated():
			line := fmt.Sprintf("MOVED: %s -> %s/", rec.Name, rec.Category)
			if rec.Outcome.FinalName != "" && rec.Outcome.FinalName != rec.Name {
				line += rec.Outcome.FinalName
			}
			moves = append(moves, line)
		case rec.Outcome.Kind == organizer.OutcomeFailed:
			failures = append(failures, fmt.Sprintf("ERROR: %s - %s", rec.Name, rec.Outcome.ErrorText()))
		}
	}

	rule := strings.Repeat("-", 20)
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "FILE ORGANIZATION REPORT")
	fmt.Fprintln(bw, "========================")
	fmt.Fprintf(bw, "Date: %s\n", finished.Format(time.RFC3339))
	fmt.Fprintf(bw, "Duration: %s\n", finished.Sub(c.started).Round(time.Millisecond))
	fmt.Fprintf(bw, "Total Moves: %d\n", len(moves))
	fmt.Fprintf(bw, "Total Errors: %d\n\n", len(failures))
	fmt.Fprintln(bw, "DETAILS:")
	fmt.Fprintln(bw, rule)
	for _, line := range moves {
		fmt.Fprintln(bw, line)
	}
	if len(failures) > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "ERRORS:")
		fmt.Fprintln(bw, rule)
		for _, line := range failures {
			fmt.Fprintln(bw, line)
		}
	}
	return bw.Flush()
}

// SaveReport writes the report to dir/name, replacing an earlier report.
// It returns the written path.
func (c *Collector) SaveReport(dir, name string, finished time.Time) (string, error) {
	path := filepath.Join(dir, name)
	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := c.WriteReport(tmp, finished); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("chmod report: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return path, nil
}
