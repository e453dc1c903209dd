package logs_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"tidy/internal/logs"
)

const sampleLog = `{"ts":"2026-03-01T10:00:00Z","level":"info","msg":"organizing directory","component":"organizer","run_id":"aaaa1111","dir":"/tmp/x"}
{"ts":"2026-03-01T10:00:01Z","level":"info","msg":"moved","component":"report","run_id":"aaaa1111","entry":"a.jpg"}
not json at all
{"ts":"2026-03-01T11:00:00Z","level":"warn","msg":"renamed","component":"report","run_id":"bbbb2222","entry":"b.jpg"}
`

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tidy.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestTailLastEntries(t *testing.T) {
	path := writeLog(t, sampleLog)

	entries, offset, err := logs.Tail(path, logs.TailOptions{Limit: 2})
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Raw != "not json at all" || entries[0].Message != "not json at all" {
		t.Fatalf("expected raw line first, got %+v", entries[0])
	}
	if entries[1].RunID != "bbbb2222" || entries[1].Level != "warn" || entries[1].Fields["entry"] != "b.jpg" {
		t.Fatalf("unexpected last entry %+v", entries[1])
	}
	if offset != int64(len(sampleLog)) {
		t.Fatalf("expected offset at end of file, got %d", offset)
	}
}

func TestTailFiltersByRunPrefix(t *testing.T) {
	path := writeLog(t, sampleLog)

	entries, _, err := logs.Tail(path, logs.TailOptions{RunID: "aaaa"})
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected both entries of the run, got %d", len(entries))
	}
	if entries[0].Component != "organizer" || entries[0].Time.IsZero() {
		t.Fatalf("unexpected decoded entry %+v", entries[0])
	}
	if _, ok := entries[0].Fields["msg"]; ok {
		t.Fatal("well-known keys should be removed from Fields")
	}
}

func TestTailMissingFile(t *testing.T) {
	entries, offset, err := logs.Tail(filepath.Join(t.TempDir(), "absent.log"), logs.TailOptions{Limit: 5})
	if err != nil || len(entries) != 0 || offset != 0 {
		t.Fatalf("expected empty result, got %v %d %v", entries, offset, err)
	}
}

func TestTailLeavesPartialLine(t *testing.T) {
	path := writeLog(t, "{\"msg\":\"done\"}\n{\"msg\":\"half")

	entries, offset, err := logs.Tail(path, logs.TailOptions{})
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(entries) != 1 || offset != int64(len("{\"msg\":\"done\"}\n")) {
		t.Fatalf("expected only the complete line, got %v offset=%d", entries, offset)
	}
}

func TestFollowEmitsAppendedEntries(t *testing.T) {
	path := writeLog(t, sampleLog)
	_, offset, err := logs.Tail(path, logs.TailOptions{Limit: 1})
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var got []logs.Entry
	done := make(chan error, 1)
	go func() {
		done <- logs.Follow(ctx, path, offset, "", 10*time.Millisecond, func(e logs.Entry) {
			mu.Lock()
			got = append(got, e)
			mu.Unlock()
		})
	}()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.WriteString("{\"msg\":\"appended\"}\n"); err != nil {
		t.Fatalf("append: %v", err)
	}
	f.Close()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		n := len(got)
		mu.Unlock()
		if n > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 || got[0].Message != "appended" {
		t.Fatalf("expected only the appended entry, got %+v", got)
	}
}
