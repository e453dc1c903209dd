package organizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"tidy/internal/apperr"
	"tidy/internal/fileutil"
	"tidy/internal/logging"
)

const maxCollisionAttempts = 10000

// PlanOrExecute moves entry into <target>/<category>, where target is the
// directory holding entry. In dry-run mode only read-only calls are made and
// the would-be destination is reported. A taken name is never overwritten:
// the next free "name (n).ext" is used instead.
func (o *Organizer) PlanOrExecute(ctx context.Context, entry ScanEntry, category string, dryRun bool) MoveOutcome {
	logger := logging.WithContext(ctx, o.logger)
	destDir := filepath.Join(filepath.Dir(entry.Path), category)

	info, err := o.fs.Lstat(entry.Path)
	if err != nil {
		return failed(entry, "inspect entry", err)
	}
	switch mode := info.Mode(); {
	case mode.IsDir():
		return MoveOutcome{Kind: OutcomeSkippedDirectory}
	case !mode.IsRegular() && mode&fs.ModeSymlink == 0:
		return MoveOutcome{Kind: OutcomeSkippedIrregular}
	}

	if dryRun {
		name, err := o.plannedName(destDir, entry.Name)
		if err != nil {
			return failed(entry, "plan destination", err)
		}
		return MoveOutcome{Kind: OutcomeDryRun, Destination: filepath.Join(destDir, name), FinalName: name}
	}

	if err := fileutil.EnsureDir(o.fs, destDir); err != nil {
		return failed(entry, "ensure category directory", err)
	}
	for attempt := 0; attempt <= maxCollisionAttempts; attempt++ {
		name := collisionName(entry.Name, attempt)
		dst := filepath.Join(destDir, name)
		err := o.fs.MoveNoClobber(entry.Path, dst)
		if err == nil {
			kind := OutcomeMoved
			if attempt > 0 {
				kind = OutcomeRenamed
			}
			return MoveOutcome{Kind: kind, Destination: dst, FinalName: name}
		}
		if !errors.Is(err, fs.ErrExist) {
			return failed(entry, "move", err)
		}
		logger.Debug("destination taken", logging.String("candidate", dst))
	}
	return failed(entry, "resolve collision", fmt.Errorf("no free name in %s after %d attempts", destDir, maxCollisionAttempts))
}

// plannedName returns the name a real run would pick, probing with Lstat only.
func (o *Organizer) plannedName(destDir, name string) (string, error) {
	for attempt := 0; attempt <= maxCollisionAttempts; attempt++ {
		candidate := collisionName(name, attempt)
		taken, err := fileutil.Exists(o.fs, filepath.Join(destDir, candidate))
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free name in %s after %d attempts", destDir, maxCollisionAttempts)
}

// collisionName returns name for attempt 0 and "base (n).ext" afterwards. A
// dot file with no other dot keeps its whole name as the base.
func collisionName(name string, attempt int) string {
	if attempt == 0 {
		return name
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if base == "" {
		base, ext = name, ""
	}
	return fmt.Sprintf("%s (%d)%s", base, attempt, ext)
}

func failed(entry ScanEntry, operation string, err error) MoveOutcome {
	return MoveOutcome{
		Kind: OutcomeFailed,
		Err:  apperr.Wrap(apperr.ErrMoveFailed, "organizer", operation, entry.Name, err),
	}
}
