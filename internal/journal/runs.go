package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"tidy/internal/apperr"
)

// Run is one journaled organizer invocation.
type Run struct {
	ID         string
	Dir        string
	StartedAt  time.Time
	FinishedAt *time.Time
	DryRun     bool
	Moved      int
	Failed     int
	// Undone counts moves of this run that have been reversed.
	Undone int
}

// Move is one journaled entry of a run.
type Move struct {
	RunID       string
	Seq         int
	Source      string
	Destination string
	Category    string
	Outcome     string
	Error       string
	Undone      bool
}

const runColumns = `r.id, r.dir, r.started_at, r.finished_at, r.dry_run, r.moved, r.failed,
	(SELECT COUNT(1) FROM moves m WHERE m.run_id = r.id AND m.undone = 1)`

// BeginRun inserts a run row before any move is recorded.
func (s *Store) BeginRun(ctx context.Context, id, dir string, dryRun bool, started time.Time) error {
	_, err := s.exec(ctx,
		`INSERT INTO runs (id, dir, started_at, dry_run) VALUES (?, ?, ?, ?)`,
		id, dir, formatTime(started), boolToInt(dryRun),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// FinishRun stores the final counters of a run.
func (s *Store) FinishRun(ctx context.Context, id string, finished time.Time, moved, failed int) error {
	res, err := s.exec(ctx,
		`UPDATE runs SET finished_at = ?, moved = ?, failed = ? WHERE id = ?`,
		formatTime(finished), moved, failed, id,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.Wrap(apperr.ErrNotFound, "journal", "finish run", "unknown run "+id, nil)
	}
	return nil
}

// RecordMove appends one move to a run.
func (s *Store) RecordMove(ctx context.Context, m Move) error {
	_, err := s.exec(ctx,
		`INSERT INTO moves (run_id, seq, source, destination, category, outcome, error)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.RunID, m.Seq, m.Source, nullableString(m.Destination), m.Category, m.Outcome, nullableString(m.Error),
	)
	if err != nil {
		return fmt.Errorf("insert move: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs first. A limit <= 0 returns all runs.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs r ORDER BY r.rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// LatestRun returns the most recent run, or an apperr.ErrNotFound error when
// the journal is empty.
func (s *Store) LatestRun(ctx context.Context) (*Run, error) {
	runs, err := s.ListRuns(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, apperr.Wrap(apperr.ErrNotFound, "journal", "latest run", "no runs recorded", nil)
	}
	return &runs[0], nil
}

// FindRun resolves a full run ID or a unique prefix of one.
func (s *Store) FindRun(ctx context.Context, idOrPrefix string) (*Run, error) {
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return nil, apperr.Wrap(apperr.ErrValidation, "journal", "find run", "run id must not be empty", nil)
	}
	run, err := scanRun(s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs r WHERE r.id = ?`, idOrPrefix))
	if err == nil {
		return run, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	pattern := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(idOrPrefix) + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs r WHERE r.id LIKE ? ESCAPE '\' ORDER BY r.rowid DESC LIMIT 2`,
		pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("find run: %w", err)
	}
	defer rows.Close()

	var found []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		found = append(found, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	switch len(found) {
	case 0:
		return nil, apperr.Wrap(apperr.ErrNotFound, "journal", "find run", "no run matches "+idOrPrefix, nil)
	case 1:
		return &found[0], nil
	default:
		return nil, apperr.Wrap(apperr.ErrValidation, "journal", "find run", "run id prefix is ambiguous: "+idOrPrefix, nil)
	}
}

// Moves returns the moves of a run in the order they happened. With
// pendingOnly, only relocations that have not been undone are returned.
func (s *Store) Moves(ctx context.Context, runID string, pendingOnly bool) ([]Move, error) {
	query := `SELECT run_id, seq, source, destination, category, outcome, error, undone
        FROM moves WHERE run_id = ?`
	if pendingOnly {
		query += ` AND undone = 0 AND destination IS NOT NULL AND error IS NULL`
	}
	query += ` ORDER BY seq`

	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("list moves: %w", err)
	}
	defer rows.Close()

	var moves []Move
	for rows.Next() {
		var (
			m           Move
			destination sql.NullString
			errText     sql.NullString
			undone      int
		)
		if err := rows.Scan(&m.RunID, &m.Seq, &m.Source, &destination, &m.Category, &m.Outcome, &errText, &undone); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		m.Destination = destination.String
		m.Error = errText.String
		m.Undone = undone != 0
		moves = append(moves, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate moves: %w", err)
	}
	return moves, nil
}

// MarkUndone flags a move as reversed.
func (s *Store) MarkUndone(ctx context.Context, runID string, seq int) error {
	res, err := s.exec(ctx, `UPDATE moves SET undone = 1 WHERE run_id = ? AND seq = ?`, runID, seq)
	if err != nil {
		return fmt.Errorf("mark undone: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.Wrap(apperr.ErrNotFound, "journal", "mark undone", fmt.Sprintf("no move %s/%d", runID, seq), nil)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var (
		run      Run
		started  string
		finished sql.NullString
		dryRun   int
	)
	if err := row.Scan(&run.ID, &run.Dir, &started, &finished, &dryRun, &run.Moved, &run.Failed, &run.Undone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Wrap(apperr.ErrNotFound, "journal", "scan run", "", err)
		}
		return nil, fmt.Errorf("scan run: %w", err)
	}
	var err error
	if run.StartedAt, err = parseTime(started); err != nil {
		return nil, fmt.Errorf("parse started_at: %w", err)
	}
	if finished.Valid {
		t, err := parseTime(finished.String)
		if err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		run.FinishedAt = &t
	}
	run.DryRun = dryRun != 0
	return &run, nil
}
