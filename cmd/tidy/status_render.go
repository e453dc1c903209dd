package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"tidy/internal/organizer"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 28
	statusIndent     = "  "
)

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := statusKindLabel(kind)
	if message != "" {
		statusText = fmt.Sprintf("[%s] %s", statusText, message)
	} else {
		statusText = fmt.Sprintf("[%s]", statusText)
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label, statusText)
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// outcomeStatus maps a record to its status line kind and message.
func outcomeStatus(rec organizer.Record) (statusKind, string) {
	out := rec.Outcome
	switch out.Kind {
	case organizer.OutcomeMoved:
		return statusOK, "-> " + filepath.Join(rec.Category, out.FinalName)
	case organizer.OutcomeRenamed:
		return statusWarn, "-> " + filepath.Join(rec.Category, out.FinalName) + " (name taken)"
	case organizer.OutcomeDryRun:
		return statusInfo, "would move to " + filepath.Join(rec.Category, out.FinalName)
	case organizer.OutcomeFailed:
		return statusError, out.ErrorText()
	case organizer.OutcomeSkippedIgnored:
		return statusInfo, "ignored"
	case organizer.OutcomeSkippedDirectory:
		return statusInfo, "directory, left in place"
	case organizer.OutcomeSkippedIrregular:
		return statusInfo, "not a regular file, left in place"
	default:
		return statusInfo, string(out.Kind)
	}
}

// statusReporter prints one status line per record as a run progresses.
type statusReporter struct {
	mu       sync.Mutex
	out      io.Writer
	colorize bool
}

func newStatusReporter(out io.Writer, colorize bool) *statusReporter {
	return &statusReporter{out: out, colorize: colorize}
}

func (r *statusReporter) Record(_ context.Context, rec organizer.Record) {
	kind, message := outcomeStatus(rec)
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, renderStatusLine(rec.Name, kind, message, r.colorize))
}
