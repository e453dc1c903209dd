package organizer

import "context"

// OutcomeKind names what happened to a single entry.
type OutcomeKind string

const (
	OutcomeMoved            OutcomeKind = "moved"
	OutcomeRenamed          OutcomeKind = "renamed-due-to-collision"
	OutcomeDryRun           OutcomeKind = "skipped-dry-run"
	OutcomeSkippedDirectory OutcomeKind = "skipped-is-directory"
	OutcomeSkippedIgnored   OutcomeKind = "skipped-ignored"
	OutcomeSkippedIrregular OutcomeKind = "skipped-not-regular"
	OutcomeFailed           OutcomeKind = "failed"
)

// Relocated reports whether the entry now lives in a category directory.
func (k OutcomeKind) Relocated() bool {
	return k == OutcomeMoved || k == OutcomeRenamed
}

// Skipped reports whether the entry was deliberately left in place.
func (k OutcomeKind) Skipped() bool {
	switch k {
	case OutcomeSkippedDirectory, OutcomeSkippedIgnored, OutcomeSkippedIrregular:
		return true
	default:
		return false
	}
}

// MoveOutcome is the result of planning or executing one move. Destination
// is the full path the entry was (or would be) moved to; FinalName is its
// base name there.
type MoveOutcome struct {
	Kind        OutcomeKind
	Destination string
	FinalName   string
	Err         error
}

// ErrorText returns the attached error message, if any.
func (o MoveOutcome) ErrorText() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// Record is what the organizer reports for every scanned entry.
type Record struct {
	Name     string
	Category string
	Outcome  MoveOutcome
}

// Reporter consumes records as a run progresses. Implementations must not
// block for long: the organizer calls Record synchronously.
type Reporter interface {
	Record(ctx context.Context, rec Record)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(ctx context.Context, rec Record)

// Record calls f.
func (f ReporterFunc) Record(ctx context.Context, rec Record) { f(ctx, rec) }

type nopReporter struct{}

func (nopReporter) Record(context.Context, Record) {}

// Summary aggregates the records of one run.
type Summary struct {
	Dir         string
	DryRun      bool
	Interrupted bool
	Total       int
	Moved       int
	Renamed     int
	Planned     int
	Skipped     int
	Failed      int
	Records     []Record
}

func (s *Summary) add(rec Record) {
	s.Total++
	switch kind := rec.Outcome.Kind; {
	case kind == OutcomeMoved:
		s.Moved++
	case kind == OutcomeRenamed:
		s.Renamed++
	case kind == OutcomeDryRun:
		s.Planned++
	case kind == OutcomeFailed:
		s.Failed++
	case kind.Skipped():
		s.Skipped++
	}
	s.Records = append(s.Records, rec)
}
