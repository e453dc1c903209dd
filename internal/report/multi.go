package report

import (
	"context"

	"tidy/internal/organizer"
)

type multi []organizer.Reporter

// Multi fans each record out to every non-nil reporter, in order.
func Multi(reporters ...organizer.Reporter) organizer.Reporter {
	out := make(multi, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (m multi) Record(ctx context.Context, rec organizer.Record) {
	for _, r := range m {
		r.Record(ctx, rec)
	}
}
