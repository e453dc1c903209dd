package logs

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"tidy/internal/logging"
)

// Entry is one line of the JSON log file.
type Entry struct {
	Time      time.Time
	Level     string
	Message   string
	Component string
	RunID     string
	Fields    map[string]any
	// Raw holds the undecoded line; lines that are not JSON keep only Raw.
	Raw string
}

// TailOptions narrows what Tail returns.
type TailOptions struct {
	// Limit caps the number of entries; <= 0 returns all matches.
	Limit int
	// RunID keeps entries whose run_id starts with it.
	RunID string
}

// Tail returns the last matching entries of the log at path, oldest first,
// and the offset just past the last byte read. A missing file yields no
// entries.
func Tail(path string, opts TailOptions) ([]Entry, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, 0, fmt.Errorf("stat log file: %w", err)
	}
	if info.IsDir() {
		return nil, 0, fmt.Errorf("log path %q is a directory", path)
	}

	var ring []Entry
	next := 0
	full := false
	offset, err := scanEntries(file, opts.RunID, func(entry Entry) {
		if opts.Limit <= 0 {
			ring = append(ring, entry)
			return
		}
		if len(ring) < opts.Limit {
			ring = append(ring, entry)
			return
		}
		full = true
		ring[next] = entry
		next = (next + 1) % opts.Limit
	})
	if err != nil {
		return nil, 0, err
	}
	if !full {
		return ring, offset, nil
	}
	return slices.Concat(ring[next:], ring[:next]), offset, nil
}

// Follow reports entries appended after offset until ctx ends, polling every
// interval. Truncation restarts reading from the beginning of the file.
func Follow(ctx context.Context, path string, offset int64, runID string, interval time.Duration, emit func(Entry)) error {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		next, err := readFrom(path, offset, runID, emit)
		if err != nil {
			return err
		}
		offset = next
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func readFrom(path string, offset int64, runID string, emit func(Entry)) (int64, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return offset, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return offset, fmt.Errorf("stat log file: %w", err)
	}
	if offset > info.Size() {
		offset = 0
	}
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return offset, fmt.Errorf("seek log file: %w", err)
	}
	read, err := scanEntries(file, runID, emit)
	return offset + read, err
}

// scanEntries decodes complete lines from r and returns the number of bytes
// consumed. A trailing line without a newline is left for the next read.
func scanEntries(r io.Reader, runID string, emit func(Entry)) (int64, error) {
	reader := bufio.NewReaderSize(r, 64*1024)
	var consumed int64
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return consumed, nil
			}
			return consumed, fmt.Errorf("read log file: %w", err)
		}
		consumed += int64(len(line))
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry := Parse(line)
		if runID != "" && !strings.HasPrefix(entry.RunID, runID) {
			continue
		}
		emit(entry)
	}
}

// Parse decodes one JSON log line. Lines that fail to decode come back with
// only Raw and Message set.
func Parse(line string) Entry {
	entry := Entry{Raw: line}
	var fields map[string]any
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		entry.Message = line
		return entry
	}
	entry.Level = takeString(fields, "level")
	entry.Message = takeString(fields, "msg")
	entry.Component = takeString(fields, logging.FieldComponent)
	entry.RunID = takeString(fields, logging.FieldRunID)
	if ts := takeString(fields, "ts"); ts != "" {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			entry.Time = parsed
		}
	}
	entry.Fields = fields
	return entry
}

func takeString(fields map[string]any, key string) string {
	value, ok := fields[key].(string)
	if ok {
		delete(fields, key)
	}
	return value
}
