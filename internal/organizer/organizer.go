package organizer

import (
	"context"
	"log/slog"

	"tidy/internal/apperr"
	"tidy/internal/config"
	"tidy/internal/fileutil"
	"tidy/internal/logging"
)

// RunConfig holds the resolved parameters of one invocation.
type RunConfig struct {
	Dir    string
	DryRun bool
}

// Organizer classifies and relocates the files of one directory.
type Organizer struct {
	fs       fileutil.FS
	rules    *Rules
	ignore   *Matcher
	reporter Reporter
	logger   *slog.Logger
}

// NewOrganizer constructs an organizer from configuration using the host
// filesystem.
func NewOrganizer(cfg *config.Config, reporter Reporter, logger *slog.Logger) (*Organizer, error) {
	rules, err := NewRules(cfg.Categories, cfg.Organize.FallbackCategory)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrConfiguration, "organizer", "build rules", "invalid category table", err)
	}
	matcher := NewMatcher(cfg.Organize.IgnoredFiles, cfg.Organize.IgnorePatterns, cfg.Organize.SkipHidden)
	return NewOrganizerWithDependencies(rules, matcher, fileutil.OS{}, reporter, logger), nil
}

// NewOrganizerWithDependencies allows injecting collaborators (used in tests).
func NewOrganizerWithDependencies(rules *Rules, matcher *Matcher, fsys fileutil.FS, reporter Reporter, logger *slog.Logger) *Organizer {
	if rules == nil {
		rules = DefaultRules()
	}
	if fsys == nil {
		fsys = fileutil.OS{}
	}
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Organizer{
		fs:       fsys,
		rules:    rules,
		ignore:   matcher,
		reporter: reporter,
		logger:   logging.NewComponentLogger(logger, "organizer"),
	}
}

// Rules returns the category rules in use.
func (o *Organizer) Rules() *Rules {
	return o.rules
}

// Run scans rc.Dir and processes every entry in name order. Scan failures
// are returned before anything is touched; per-entry failures are recorded
// and the run continues. Cancellation is honoured between entries, in which
// case the partial summary is returned together with the context error.
func (o *Organizer) Run(ctx context.Context, rc RunConfig) (Summary, error) {
	logger := logging.WithContext(ctx, o.logger)
	summary := Summary{Dir: rc.Dir, DryRun: rc.DryRun}

	entries, err := Scan(o.fs, rc.Dir)
	if err != nil {
		return summary, err
	}
	logger.Info("organizing directory",
		logging.String("dir", rc.Dir),
		logging.Bool("dry_run", rc.DryRun),
	)

	for entry := range entries {
		if err := ctx.Err(); err != nil {
			summary.Interrupted = true
			logger.Warn("run interrupted", logging.Int("processed", summary.Total), logging.Error(err))
			return summary, err
		}
		rec := o.process(ctx, entry, rc.DryRun)
		summary.add(rec)
		o.reporter.Record(ctx, rec)
	}

	logger.Info("organizing finished",
		logging.Int("total", summary.Total),
		logging.Int("moved", summary.Moved),
		logging.Int("renamed", summary.Renamed),
		logging.Int("planned", summary.Planned),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
	)
	return summary, nil
}

func (o *Organizer) process(ctx context.Context, entry ScanEntry, dryRun bool) Record {
	if o.ignore.Match(entry.Name) {
		return Record{Name: entry.Name, Outcome: MoveOutcome{Kind: OutcomeSkippedIgnored}}
	}
	category := o.rules.Classify(entry.Name)
	return Record{
		Name:     entry.Name,
		Category: category,
		Outcome:  o.PlanOrExecute(ctx, entry, category, dryRun),
	}
}
