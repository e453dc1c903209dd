package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tidy/internal/config"
	"tidy/internal/fileutil"
	"tidy/internal/journal"
	"tidy/internal/logging"
	"tidy/internal/organizer"
	"tidy/internal/preflight"
	"tidy/internal/report"
	"tidy/internal/runlock"
)

type organizeOptions struct {
	dryRun bool
	yes    bool
	report bool
	json   bool
}

func runOrganize(cmd *cobra.Command, cmdCtx *commandContext, opts organizeOptions, args []string) error {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := cmdCtx.ensureLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	dir, err := config.ExpandPath(target)
	if err != nil {
		return fmt.Errorf("resolve directory: %w", err)
	}

	// The directory check comes before any prompt, lock, or journal entry.
	if _, err := organizer.Scan(fileutil.OS{}, dir); err != nil {
		return err
	}

	runID := uuid.NewString()
	ctx := logging.WithRunID(cmd.Context(), runID)
	ctx = logging.WithTarget(ctx, dir)
	runLogger := logging.WithContext(ctx, logger)
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	if !opts.dryRun && cfg.Organize.Confirm && !opts.yes && isInteractive(cmd.InOrStdin()) {
		ok, err := confirm(cmd.InOrStdin(), out, fmt.Sprintf("Organize %s into category folders? Type 'yes' to proceed: ", dir))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Aborted; nothing was changed.")
			return nil
		}
	}

	collector := report.NewCollector(time.Now())
	reporters := []organizer.Reporter{report.NewLogReporter(logger), collector}
	if !opts.json && !opts.dryRun {
		reporters = append(reporters, newStatusReporter(out, colorize))
	}

	var store *journal.Store
	if !opts.dryRun {
		if err := cfg.EnsureDirectories(); err != nil {
			return err
		}
		lock, err := runlock.Acquire(cfg.LockDir(), dir)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				runLogger.Warn("run lock release failed", logging.Error(err))
			}
		}()
		for _, result := range preflight.Failed(preflight.RunAll(cfg, dir)) {
			runLogger.Warn("preflight check failed",
				logging.String("check", result.Name),
				logging.String("detail", result.Detail),
			)
		}
		if cfg.Journal.Enabled {
			store = openRunJournal(ctx, cfg, runID, dir, runLogger)
			if store != nil {
				defer store.Close()
				reporters = append(reporters, journal.NewRecorder(store, runID, dir, logger))
			}
		}
	}

	org, err := organizer.NewOrganizer(cfg, report.Multi(reporters...), logger)
	if err != nil {
		return err
	}
	started := time.Now()
	summary, runErr := org.Run(ctx, organizer.RunConfig{Dir: dir, DryRun: opts.dryRun})
	finished := time.Now()
	if runErr != nil && !summary.Interrupted {
		return runErr
	}

	if store != nil {
		if err := store.FinishRun(context.WithoutCancel(ctx), runID, finished, summary.Moved+summary.Renamed, summary.Failed); err != nil {
			runLogger.Warn("journal finish failed", logging.Error(err))
		}
	}

	var reportPath string
	if opts.report && !opts.dryRun {
		reportPath, err = collector.SaveReport(dir, cfg.Organize.ReportFile, finished)
		if err != nil {
			runLogger.Warn("report not written", logging.Error(err))
		}
	}

	if opts.json {
		if err := writeJSON(cmd, newRunJSON(runID, summary, started, finished, reportPath)); err != nil {
			return err
		}
		return runErr
	}

	if opts.dryRun {
		renderPlan(out, summary, colorize)
	}
	renderSummary(out, summary, colorize)
	switch {
	case summary.Interrupted:
		fmt.Fprintln(out, "Interrupted; files already moved stay in their category folders.")
	case opts.dryRun:
		fmt.Fprintln(out, "Dry run: nothing was changed.")
	case store != nil && summary.Moved+summary.Renamed > 0:
		fmt.Fprintf(out, "Run %s recorded; undo with: tidy undo %s\n", shortID(runID), shortID(runID))
	}
	if reportPath != "" {
		fmt.Fprintf(out, "Report saved to %s\n", reportPath)
	}
	return runErr
}

// openRunJournal opens the journal and registers the run. Journal problems
// are logged and the run proceeds without one.
func openRunJournal(ctx context.Context, cfg *config.Config, runID, dir string, logger *slog.Logger) *journal.Store {
	store, err := journal.Open(cfg)
	if err != nil {
		logger.Warn("journal unavailable; this run cannot be undone", logging.Error(err))
		return nil
	}
	if err := store.BeginRun(ctx, runID, dir, false, time.Now()); err != nil {
		logger.Warn("journal unavailable; this run cannot be undone", logging.Error(err))
		_ = store.Close()
		return nil
	}
	return store
}

func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok || f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes"), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
