package logging_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gorender/internal/logging"
)

func mustParseUTC(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.UTC)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func TestRecordLastPlayedWritesSingleLine(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "last_played")
	f := logging.New(logging.Options{LastPlayedPath: statePath})

	f.RecordLastPlayed(mustParseUTC(t, "2024-05-01 17:30:09"))

	content := readFile(t, statePath)
	if content != "UPNP_LAST_PLAYED='2024-05-01 17:30:09'\n" {
		t.Fatalf("unexpected state line: %q", content)
	}
}

func TestRecordLastPlayedOverwrites(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "last_played")
	f := logging.New(logging.Options{LastPlayedPath: statePath})

	f.RecordLastPlayed(mustParseUTC(t, "2024-05-01 17:30:09"))
	f.RecordLastPlayed(mustParseUTC(t, "2024-06-02 08:01:00"))

	content := readFile(t, statePath)
	if content != "UPNP_LAST_PLAYED='2024-06-02 08:01:00'\n" {
		t.Fatalf("second write must replace the first, got %q", content)
	}
}

func TestRecordLastPlayedUsesUTC(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "last_played")
	f := logging.New(logging.Options{LastPlayedPath: statePath})

	local := time.Date(2024, 5, 1, 17, 30, 9, 0, time.FixedZone("plus2", 2*3600))
	f.RecordLastPlayed(local)

	content := readFile(t, statePath)
	if content != "UPNP_LAST_PLAYED='2024-05-01 15:30:09'\n" {
		t.Fatalf("expected UTC timestamp, got %q", content)
	}
}

func TestRecordPlaybackDurationWritesSecondsAndSummary(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "render.log")
	statePath := filepath.Join(dir, "playback_time")
	f := logging.New(logging.Options{LogPath: logPath, PlaybackTimePath: statePath})

	start := mustParseUTC(t, "2024-05-01 12:00:00")
	f.RecordPlaybackDuration(start, start.Add(3725*time.Second))

	if content := readFile(t, statePath); content != "UPNP_TOTAL=3725\n" {
		t.Fatalf("unexpected duration line: %q", content)
	}
	summary := readFile(t, logPath)
	if !strings.Contains(summary, "Total playing time 01:02:05") {
		t.Fatalf("expected HH:MM:SS summary, got %q", summary)
	}
	if !strings.Contains(summary, " | transport]") {
		t.Fatalf("summary must carry the transport category, got %q", summary)
	}
}

func TestRecordPlaybackDurationOverwrites(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "playback_time")
	f := logging.New(logging.Options{PlaybackTimePath: statePath})

	start := mustParseUTC(t, "2024-05-01 12:00:00")
	f.RecordPlaybackDuration(start, start.Add(100000*time.Second))
	f.RecordPlaybackDuration(start, start.Add(5*time.Second))

	if content := readFile(t, statePath); content != "UPNP_TOTAL=5\n" {
		t.Fatalf("expected shorter overwrite, got %q", content)
	}
}

func TestRecordPlaybackDurationClampsNegative(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "playback_time")
	f := logging.New(logging.Options{PlaybackTimePath: statePath})

	start := mustParseUTC(t, "2024-05-01 12:00:00")
	f.RecordPlaybackDuration(start, start.Add(-30*time.Second))

	if content := readFile(t, statePath); content != "UPNP_TOTAL=0\n" {
		t.Fatalf("end before start must clamp to zero, got %q", content)
	}
}

func TestRecordLastPlayedNoDestinationIsNoop(t *testing.T) {
	f := logging.New(logging.Options{})
	// Must not panic or create files.
	f.RecordLastPlayed(time.Now())
}
