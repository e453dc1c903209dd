package journal

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"tidy/internal/logging"
	"tidy/internal/organizer"
)

// Recorder is an organizer.Reporter that journals relocations and failures
// of one run. Journal write errors are logged and kept; they never stop the
// run itself.
type Recorder struct {
	store  *Store
	runID  string
	dir    string
	logger *slog.Logger

	mu  sync.Mutex
	seq int
	err error
}

// NewRecorder returns a recorder for run runID over target directory dir.
func NewRecorder(store *Store, runID, dir string, logger *slog.Logger) *Recorder {
	return &Recorder{
		store:  store,
		runID:  runID,
		dir:    dir,
		logger: logging.NewComponentLogger(logger, "journal"),
	}
}

// Record implements organizer.Reporter.
func (r *Recorder) Record(ctx context.Context, rec organizer.Record) {
	kind := rec.Outcome.Kind
	if !kind.Relocated() && kind != organizer.OutcomeFailed {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	move := Move{
		RunID:       r.runID,
		Seq:         r.seq,
		Source:      filepath.Join(r.dir, rec.Name),
		Destination: rec.Outcome.Destination,
		Category:    rec.Category,
		Outcome:     string(kind),
		Error:       rec.Outcome.ErrorText(),
	}
	r.seq++
	if err := r.store.RecordMove(ctx, move); err != nil {
		logging.WithContext(ctx, r.logger).Warn("journal write failed",
			logging.String("entry", rec.Name),
			logging.Error(err),
		)
		if r.err == nil {
			r.err = err
		}
	}
}

// Err returns the first journal write error, if any.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Reversals converts the pending moves of a run into organizer reversals.
func Reversals(moves []Move) []organizer.Reversal {
	out := make([]organizer.Reversal, 0, len(moves))
	for _, m := range moves {
		if m.Undone || m.Destination == "" || m.Error != "" {
			continue
		}
		out = append(out, organizer.Reversal{Seq: m.Seq, Original: m.Source, Current: m.Destination})
	}
	return out
}
