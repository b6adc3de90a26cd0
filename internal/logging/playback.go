package logging

import (
	"fmt"
	"os"
	"time"
)

// RecordLastPlayed overwrites the last-played state file with a single
// shell-assignment line carrying the UTC play-start timestamp. No-op when
// that destination was never configured.
func (f *Facility) RecordLastPlayed(start time.Time) {
	if f.lastPlayed == nil {
		return
	}
	line := fmt.Sprintf("UPNP_LAST_PLAYED='%s'\n", start.UTC().Format(timeLayout))
	f.overwrite(f.lastPlayed, line)
}

// RecordPlaybackDuration overwrites the playback-time state file with the
// elapsed whole seconds between start and end, then echoes a human-readable
// HH:MM:SS summary through Printf. An end before start counts as zero.
func (f *Facility) RecordPlaybackDuration(start, end time.Time) {
	seconds := int64(end.Sub(start) / time.Second)
	if seconds < 0 {
		seconds = 0
	}

	if f.playback != nil {
		f.overwrite(f.playback, fmt.Sprintf("UPNP_TOTAL=%d\n", seconds))
	}

	f.Printf(0, "transport", "Total playing time %02d:%02d:%02d\n",
		seconds/3600, (seconds/60)%60, seconds%60)
}

// overwrite truncates the state file and writes one fresh line. With the
// destination open in append mode the write lands at the new end, offset
// zero. Failures are dropped like any other write.
func (f *Facility) overwrite(dst *os.File, line string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_ = dst.Truncate(0)
	_, _ = dst.WriteString(line)
}
