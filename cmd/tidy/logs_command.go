package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tidy/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var runID string
	var follow bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show entries from the log file",
		Long: "Prints the most recent entries of the JSON log file written when\n" +
			"paths.log_dir is set. --run narrows the output to one run.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			path := cfg.LogPath()
			if path == "" {
				fmt.Fprintln(out, "File logging is disabled (paths.log_dir is not set).")
				return nil
			}

			entries, offset, err := logs.Tail(path, logs.TailOptions{Limit: lines, RunID: runID})
			if err != nil {
				return err
			}
			colorize := shouldColorize(out)
			for _, entry := range entries {
				fmt.Fprintln(out, formatLogEntry(entry, colorize))
			}
			if !follow {
				if len(entries) == 0 {
					fmt.Fprintln(out, "No log entries found.")
				}
				return nil
			}
			err = logs.Follow(cmd.Context(), path, offset, runID, 500*time.Millisecond, func(entry logs.Entry) {
				fmt.Fprintln(out, formatLogEntry(entry, colorize))
			})
			if errors.Is(err, cmd.Context().Err()) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of entries to show (0 for all)")
	cmd.Flags().StringVar(&runID, "run", "", "Only show entries of the run with this ID or prefix")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing new entries until interrupted")
	return cmd
}

func formatLogEntry(entry logs.Entry, colorize bool) string {
	if entry.Level == "" && entry.Fields == nil {
		return entry.Raw
	}
	var b strings.Builder
	if !entry.Time.IsZero() {
		b.WriteString(entry.Time.Local().Format("2006-01-02 15:04:05"))
		b.WriteByte(' ')
	}
	level := strings.ToUpper(entry.Level)
	if colorize {
		if color := levelColor(entry.Level); color != "" {
			level = color + level + ansiReset
		}
	}
	fmt.Fprintf(&b, "%-5s ", level)
	if entry.RunID != "" {
		b.WriteString(shortID(entry.RunID))
		b.WriteByte(' ')
	}
	if entry.Component != "" {
		b.WriteString(entry.Component)
		b.WriteString(": ")
	}
	b.WriteString(entry.Message)
	writeFields(&b, entry.Fields)
	return b.String()
}

func writeFields(w io.Writer, fields map[string]any) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		if key == "target" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(w, " %s=%v", key, fields[key])
	}
}

func levelColor(level string) string {
	switch level {
	case "error":
		return ansiRed
	case "warn":
		return ansiYellow
	case "info":
		return ansiBlue
	default:
		return ""
	}
}
