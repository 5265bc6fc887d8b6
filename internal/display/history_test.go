package display

import (
	"path/filepath"
	"testing"

	"github.com/saltytine/csnap/internal/tracking"
)

func testTracker(t *testing.T) *tracking.Tracker {
	t.Helper()
	tracker, err := tracking.NewTracker(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	t.Cleanup(func() { tracker.Close() })
	return tracker
}

func TestRunHistoryNilTracker(t *testing.T) {
	if err := RunHistory(nil, nil); err != nil {
		t.Errorf("nil tracker should not error, got %v", err)
	}
}

func TestRunHistoryEmpty(t *testing.T) {
	if err := RunHistory(testTracker(t), nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunHistoryWithRecords(t *testing.T) {
	tracker := testTracker(t)
	err := tracker.Record(tracking.Snapshot{
		Source: "main.go", Language: "Go", Style: "dracula",
		Lines: 10, Images: 1, Bytes: 1000, Destination: "clipboard",
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	if err := RunHistory(tracker, []string{"--recent", "5"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := RunHistory(tracker, []string{"--langs"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
