package transport_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gorender/internal/history"
	"gorender/internal/logging"
	"gorender/internal/transport"
)

type fixture struct {
	observer *transport.Observer
	logPath  string
	lastPath string
	timePath string
	store    *history.Store
	instants []time.Time
	nextRead int
	t        *testing.T
}

func newFixture(t *testing.T, instants ...time.Time) *fixture {
	t.Helper()
	dir := t.TempDir()

	fx := &fixture{
		logPath:  filepath.Join(dir, "render.log"),
		lastPath: filepath.Join(dir, "last_played"),
		timePath: filepath.Join(dir, "playback_time"),
		instants: instants,
		t:        t,
	}

	facility := logging.New(logging.Options{
		LogPath:          fx.logPath,
		LastPlayedPath:   fx.lastPath,
		PlaybackTimePath: fx.timePath,
		DebugLevel:       1,
	})

	store, err := history.Open(filepath.Join(dir, "history.db"))
	if err != nil {
		t.Fatalf("open history store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	fx.store = store

	fx.observer = transport.NewObserver(facility, store, "transport")
	fx.observer.SetClock(fx.next)
	return fx
}

func (fx *fixture) next() time.Time {
	if fx.nextRead >= len(fx.instants) {
		fx.t.Fatalf("clock read %d exceeds scripted instants", fx.nextRead)
	}
	instant := fx.instants[fx.nextRead]
	fx.nextRead++
	return instant
}

func (fx *fixture) read(path string) string {
	fx.t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		fx.t.Fatalf("read %s: %v", path, err)
	}
	return string(content)
}

func TestPlayingStampsLastPlayed(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fx := newFixture(t, start)

	fx.observer.OnVariableChange("TransportState", transport.StatePlaying)

	if got := fx.read(fx.lastPath); got != "UPNP_LAST_PLAYED='2024-05-01 12:00:00'\n" {
		t.Fatalf("unexpected last-played line: %q", got)
	}
	logContent := fx.read(fx.logPath)
	if !strings.Contains(logContent, "TransportState: PLAYING") {
		t.Fatalf("expected transition echo, got %q", logContent)
	}
}

func TestStopWritesDurationAndSession(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fx := newFixture(t, start, start.Add(3725*time.Second))

	fx.observer.OnVariableChange("TransportState", transport.StatePlaying)
	fx.observer.OnVariableChange("TransportState", transport.StateStopped)

	if got := fx.read(fx.timePath); got != "UPNP_TOTAL=3725\n" {
		t.Fatalf("unexpected duration line: %q", got)
	}
	logContent := fx.read(fx.logPath)
	if !strings.Contains(logContent, "Total playing time 01:02:05") {
		t.Fatalf("expected duration summary, got %q", logContent)
	}

	sessions, err := fx.store.RecentSessions(context.Background(), 5)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Seconds != 3725 {
		t.Fatalf("unexpected sessions: %#v", sessions)
	}
}

func TestStopWithoutStartSkipsDuration(t *testing.T) {
	end := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fx := newFixture(t, end)

	fx.observer.OnVariableChange("TransportState", transport.StateStopped)

	if got := fx.read(fx.timePath); got != "" {
		t.Fatalf("expected no duration write, got %q", got)
	}
	sessions, err := fx.store.RecentSessions(context.Background(), 5)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("expected no sessions, got %d", len(sessions))
	}
	if !strings.Contains(fx.read(fx.logPath), "TransportState: STOPPED") {
		t.Fatal("stop transition must still be echoed")
	}
}

func TestPausedOnlyEchoes(t *testing.T) {
	fx := newFixture(t)

	fx.observer.OnVariableChange("TransportState", transport.StatePaused)

	if got := fx.read(fx.lastPath); got != "" {
		t.Fatalf("pause must not touch state files, got %q", got)
	}
	if !strings.Contains(fx.read(fx.logPath), "TransportState: PAUSED_PLAYBACK") {
		t.Fatal("expected pause echo")
	}
}

func TestOtherVariablesEchoAtDetailLevel(t *testing.T) {
	fx := newFixture(t)

	// DebugLevel is 1, so the level-2 echo for uninteresting values is dropped.
	fx.observer.OnVariableChange("CurrentTrackURI", "http://example/stream.mp3")

	if got := fx.read(fx.logPath); got != "" {
		t.Fatalf("expected gated echo to be dropped, got %q", got)
	}
}

func TestSecondPlayOverwritesState(t *testing.T) {
	first := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)
	fx := newFixture(t, first, first.Add(time.Minute), second)

	fx.observer.OnVariableChange("TransportState", transport.StatePlaying)
	fx.observer.OnVariableChange("TransportState", transport.StateStopped)
	fx.observer.OnVariableChange("TransportState", transport.StatePlaying)

	if got := fx.read(fx.lastPath); got != "UPNP_LAST_PLAYED='2024-05-01 14:00:00'\n" {
		t.Fatalf("expected overwritten last-played line, got %q", got)
	}
}
