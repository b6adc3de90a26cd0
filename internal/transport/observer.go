// Package transport turns playback state-variable changes into log records,
// state-file updates, and history sessions. It consumes variable-change
// callbacks from whatever is driving the renderer; it does not speak UPnP
// itself.
package transport

import (
	"context"
	"strings"
	"sync"
	"time"

	"gorender/internal/history"
	"gorender/internal/logging"
)

// Transport state values of interest, as delivered by the control layer.
const (
	StatePlaying = "PLAYING"
	StateStopped = "STOPPED"
	StatePaused  = "PAUSED_PLAYBACK"
)

const (
	varHighlight = "\x1b[1m\x1b[34m"
	varReset     = "\x1b[0m"
)

// Observer tracks playback start/stop transitions for one variable source.
// A nil history store disables session recording.
type Observer struct {
	facility *logging.Facility
	store    *history.Store
	category string
	now      func() time.Time

	mu        sync.Mutex
	playStart time.Time
	playing   bool
}

// NewObserver builds an observer that logs under the given category tag
// ("transport", "control").
func NewObserver(facility *logging.Facility, store *history.Store, category string) *Observer {
	return &Observer{
		facility: facility,
		store:    store,
		category: category,
		now:      time.Now,
	}
}

// OnVariableChange handles one state-variable transition. Playback starts
// stamp the last-played state file; stops stamp the playback duration and
// record a history session. Uninteresting variables are echoed at a more
// detailed level only.
func (o *Observer) OnVariableChange(name, value string) {
	switch value {
	case StatePlaying:
		start := o.now()
		o.mu.Lock()
		o.playStart = start
		o.playing = true
		o.mu.Unlock()

		o.facility.RecordLastPlayed(start)
		o.echo(0, name, value)

	case StateStopped:
		end := o.now()
		o.mu.Lock()
		start := o.playStart
		wasPlaying := o.playing
		o.playing = false
		o.mu.Unlock()

		// A stop without a preceding start has no meaningful duration.
		if wasPlaying {
			o.facility.RecordPlaybackDuration(start, end)
			o.recordSession(start, end)
		}
		o.echo(0, name, value)

	case StatePaused:
		o.echo(0, name, value)

	default:
		o.echo(2, name, value)
	}
}

func (o *Observer) recordSession(start, end time.Time) {
	if o.store == nil {
		return
	}
	if _, err := o.store.RecordSession(context.Background(), start, end); err != nil {
		o.facility.Error(o.category, "record playback session: %v", err)
	}
}

// echo mirrors the variable transition into the log, wrapping the variable
// name in bold blue when the log destination supports color.
func (o *Observer) echo(level int, name, value string) {
	varStart, varEnd := "", ""
	if o.facility.ColorEnabled() {
		varStart, varEnd = varHighlight, varReset
	}
	o.facility.Printf(level, o.category, "%s%s%s: %s",
		varStart, name, varEnd, strings.TrimSuffix(value, "\n"))
}
