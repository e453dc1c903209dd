package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"tidy/internal/journal"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List journaled runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !cfg.Journal.Enabled {
				fmt.Fprintln(out, "The move journal is disabled (journal.enabled = false).")
				return nil
			}
			if _, err := os.Stat(cfg.JournalPath()); errors.Is(err, fs.ErrNotExist) {
				if asJSON {
					return writeJSON(cmd, []historyRunJSON{})
				}
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			store, err := journal.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, newHistoryJSON(runs))
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				status := "finished"
				switch {
				case run.FinishedAt == nil:
					status = "incomplete"
				case run.Undone > 0 && run.Undone >= run.Moved:
					status = "undone"
				case run.Undone > 0:
					status = "partly undone"
				}
				rows = append(rows, []string{
					shortID(run.ID),
					humanize.Time(run.StartedAt),
					run.Dir,
					strconv.Itoa(run.Moved),
					strconv.Itoa(run.Failed),
					status,
				})
			}
			fmt.Fprintln(out, renderTable(tableSpec{
				headers: []string{"Run", "Started", "Directory", "Moved", "Failed", "Status"},
				rows:    rows,
				aligns:  []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			}))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Maximum number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print runs as JSON")
	return cmd
}
