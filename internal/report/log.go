package report

import (
	"context"
	"log/slog"

	"tidy/internal/logging"
	"tidy/internal/organizer"
)

// LogReporter writes one structured log line per record.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter returns a reporter logging through logger.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	return &LogReporter{logger: logging.NewComponentLogger(logger, "report")}
}

// Record implements organizer.Reporter.
func (r *LogReporter) Record(ctx context.Context, rec organizer.Record) {
	logger := logging.WithContext(ctx, r.logger)
	attrs := []logging.Attr{
		logging.String("entry", rec.Name),
		logging.String("outcome", string(rec.Outcome.Kind)),
	}
	if rec.Category != "" {
		attrs = append(attrs, logging.String("category", rec.Category))
	}
	if rec.Outcome.Destination != "" {
		attrs = append(attrs, logging.String("destination", rec.Outcome.Destination))
	}
	if rec.Outcome.FinalName != "" && rec.Outcome.FinalName != rec.Name {
		attrs = append(attrs, logging.String("final_name", rec.Outcome.FinalName))
	}
	if rec.Outcome.Err != nil {
		attrs = append(attrs, logging.Error(rec.Outcome.Err))
	}

	switch kind := rec.Outcome.Kind; {
	case kind == organizer.OutcomeFailed:
		logger.Error("entry failed", logging.Args(attrs...)...)
	case kind == organizer.OutcomeRenamed:
		logger.Warn("entry renamed to avoid collision", logging.Args(attrs...)...)
	case kind == organizer.OutcomeMoved:
		logger.Info("entry moved", logging.Args(attrs...)...)
	case kind == organizer.OutcomeDryRun:
		logger.Info("entry planned", logging.Args(attrs...)...)
	default:
		logger.Debug("entry skipped", logging.Args(attrs...)...)
	}
}
