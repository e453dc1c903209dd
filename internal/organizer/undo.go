package organizer

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"tidy/internal/apperr"
	"tidy/internal/logging"
)

// Reversal describes one journaled move to take back: the file currently at
// Current goes back to Original.
type Reversal struct {
	Seq      int
	Original string
	Current  string
}

// ReversalResult pairs a reversal with its error, nil on success.
type ReversalResult struct {
	Reversal
	Err error
}

// Undo moves files back to where they came from, last move first. An
// occupied original path is never overwritten; that reversal fails and the
// file stays put. Category directories emptied by the undo are removed.
// Cancellation stops the loop and returns the results gathered so far.
func (o *Organizer) Undo(ctx context.Context, reversals []Reversal) ([]ReversalResult, error) {
	logger := logging.WithContext(ctx, o.logger)
	results := make([]ReversalResult, 0, len(reversals))
	touched := make(map[string]struct{})

	for i := len(reversals) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			o.pruneEmptyDirs(touched)
			return results, err
		}
		rev := reversals[i]
		err := o.fs.MoveNoClobber(rev.Current, rev.Original)
		switch {
		case err == nil:
			touched[filepath.Dir(rev.Current)] = struct{}{}
			logger.Debug("move reversed", logging.String("from", rev.Current), logging.String("to", rev.Original))
		case errors.Is(err, fs.ErrExist):
			err = apperr.Wrap(apperr.ErrMoveFailed, "organizer", "undo", "original path is occupied: "+rev.Original, err)
		case errors.Is(err, fs.ErrNotExist):
			err = apperr.Wrap(apperr.ErrMoveFailed, "organizer", "undo", "file is no longer at "+rev.Current, err)
		default:
			err = apperr.Wrap(apperr.ErrMoveFailed, "organizer", "undo", filepath.Base(rev.Current), err)
		}
		if err != nil {
			logger.Warn("move not reversed", logging.String("file", rev.Current), logging.Error(err))
		}
		results = append(results, ReversalResult{Reversal: rev, Err: err})
	}
	o.pruneEmptyDirs(touched)
	return results, nil
}

func (o *Organizer) pruneEmptyDirs(dirs map[string]struct{}) {
	for dir := range dirs {
		entries, err := o.fs.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			continue
		}
		if err := o.fs.Remove(dir); err != nil {
			o.logger.Debug("category directory not removed", logging.String("dir", dir), logging.Error(err))
		}
	}
}
