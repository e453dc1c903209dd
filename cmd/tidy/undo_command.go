package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tidy/internal/apperr"
	"tidy/internal/journal"
	"tidy/internal/logging"
	"tidy/internal/organizer"
	"tidy/internal/runlock"
)

func newUndoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "undo [run-id]",
		Short: "Move the files of a run back where they came from",
		Long: "Reverses the journaled moves of a run, newest move first. The run\n" +
			"defaults to the latest one; a unique prefix of a run ID is enough.\n" +
			"Files whose original name has been taken again are left in place.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if !cfg.Journal.Enabled {
				return apperr.Wrap(apperr.ErrConfiguration, "cli", "undo", "the move journal is disabled (journal.enabled = false)", nil)
			}
			if _, err := os.Stat(cfg.JournalPath()); errors.Is(err, fs.ErrNotExist) {
				return apperr.Wrap(apperr.ErrNotFound, "cli", "undo", "no runs recorded yet", nil)
			}

			store, err := journal.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			runCtx := cmd.Context()
			var run *journal.Run
			if len(args) == 1 {
				run, err = store.FindRun(runCtx, args[0])
			} else {
				run, err = store.LatestRun(runCtx)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			moves, err := store.Moves(runCtx, run.ID, true)
			if err != nil {
				return err
			}
			reversals := journal.Reversals(moves)
			if len(reversals) == 0 {
				fmt.Fprintf(out, "Nothing to undo for run %s.\n", shortID(run.ID))
				return nil
			}

			lock, err := runlock.Acquire(cfg.LockDir(), run.Dir)
			if err != nil {
				return err
			}
			defer lock.Release()

			runCtx = logging.WithTarget(logging.WithRunID(runCtx, run.ID), run.Dir)
			org, err := organizer.NewOrganizer(cfg, nil, logger)
			if err != nil {
				return err
			}
			results, undoErr := org.Undo(runCtx, reversals)

			rows := make([][]string, 0, len(results))
			restored := 0
			for _, res := range results {
				status := "restored"
				if res.Err != nil {
					status = res.Err.Error()
				} else {
					restored++
					if err := store.MarkUndone(context.WithoutCancel(runCtx), run.ID, res.Seq); err != nil {
						logging.WithContext(runCtx, logger).Warn("journal update failed", logging.Error(err))
					}
				}
				rows = append(rows, []string{
					relativeTo(run.Dir, res.Current),
					relativeTo(run.Dir, res.Original),
					status,
				})
			}
			fmt.Fprintln(out, renderTable(tableSpec{
				headers: []string{"File", "Restored to", "Status"},
				rows:    rows,
			}))
			fmt.Fprintf(out, "Restored %d of %d files from run %s.\n", restored, len(reversals), shortID(run.ID))
			return undoErr
		},
	}
}

func relativeTo(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil {
		return rel
	}
	return path
}
