package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"tidy/internal/organizer"
)

func renderPlan(out io.Writer, summary organizer.Summary, colorize bool) {
	for _, line := range renderSectionHeader("Plan", colorize) {
		fmt.Fprintln(out, line)
	}
	if len(summary.Records) == 0 {
		fmt.Fprintln(out, "No files to organize.")
		return
	}
	rows := make([][]string, 0, len(summary.Records))
	for _, rec := range summary.Records {
		target := "-"
		switch {
		case rec.Outcome.Kind == organizer.OutcomeDryRun:
			target = filepath.Join(rec.Category, rec.Outcome.FinalName)
		case rec.Outcome.Kind == organizer.OutcomeFailed:
			target = rec.Outcome.ErrorText()
		case rec.Outcome.Kind.Skipped():
			target = string(rec.Outcome.Kind)
		}
		category := rec.Category
		if category == "" {
			category = "-"
		}
		rows = append(rows, []string{rec.Name, category, target})
	}
	fmt.Fprintln(out, renderTable(tableSpec{
		headers: []string{"Entry", "Category", "Destination"},
		rows:    rows,
	}))
}

func renderSummary(out io.Writer, summary organizer.Summary, colorize bool) {
	for _, line := range renderSectionHeader("Summary", colorize) {
		fmt.Fprintln(out, line)
	}
	headers := []string{"Moved", "Renamed", "Skipped", "Failed", "Total"}
	row := []string{
		strconv.Itoa(summary.Moved),
		strconv.Itoa(summary.Renamed),
		strconv.Itoa(summary.Skipped),
		strconv.Itoa(summary.Failed),
		strconv.Itoa(summary.Total),
	}
	if summary.DryRun {
		headers = []string{"Planned", "Skipped", "Failed", "Total"}
		row = []string{
			strconv.Itoa(summary.Planned),
			strconv.Itoa(summary.Skipped),
			strconv.Itoa(summary.Failed),
			strconv.Itoa(summary.Total),
		}
	}
	aligns := make([]columnAlignment, len(headers))
	for i := range aligns {
		aligns[i] = alignRight
	}
	fmt.Fprintln(out, renderTable(tableSpec{headers: headers, rows: [][]string{row}, aligns: aligns}))
}
