package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

const (
	plainInfoPrefix  = "INFO  "
	plainErrorPrefix = "ERROR "

	boldInfoPrefix  = "\x1b[1mINFO  "
	boldErrorPrefix = "\x1b[1m\x1b[31mERROR "
	termReset       = "\x1b[0m"
)

// markup wraps a record header in terminal highlighting. Both strings are
// empty-suffix plain text when color is disabled.
type markup struct {
	prefix string
	suffix string
}

// Options describes facility construction parameters. An empty path leaves
// that destination absent.
type Options struct {
	// LogPath is the primary log destination.
	LogPath string
	// LastPlayedPath receives the UPNP_LAST_PLAYED state line.
	LastPlayedPath string
	// PlaybackTimePath receives the UPNP_TOTAL state line.
	PlaybackTimePath string
	// DebugLevel is the threshold for Printf; messages with a level above it
	// are dropped (lower levels are more important).
	DebugLevel int
	// ErrorStream receives open failures and records that fall back from an
	// absent primary log. Defaults to os.Stderr.
	ErrorStream io.Writer
}

// Facility holds the destination registry and markup selection. All fields
// are fixed at construction; the mutex only serializes record writes.
type Facility struct {
	mu sync.Mutex

	log        *os.File
	lastPlayed *os.File
	playback   *os.File

	errStream io.Writer

	color       bool
	infoMarkup  markup
	errorMarkup markup
	debugLevel  int
}

// New opens the configured destinations and selects markup once. A
// destination that fails to open is reported to the error stream and left
// absent; construction always succeeds with the destinations that remain.
func New(opts Options) *Facility {
	f := &Facility{
		errStream:  opts.ErrorStream,
		debugLevel: opts.DebugLevel,
	}
	if f.errStream == nil {
		f.errStream = os.Stderr
	}

	f.log = f.openDestination(opts.LogPath, "log file")
	f.lastPlayed = f.openDestination(opts.LastPlayedPath, "last played file")
	f.playback = f.openDestination(opts.PlaybackTimePath, "playback time file")

	if f.log != nil {
		fd := f.log.Fd()
		f.color = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	if f.color {
		f.infoMarkup = markup{prefix: boldInfoPrefix, suffix: termReset}
		f.errorMarkup = markup{prefix: boldErrorPrefix, suffix: termReset}
	} else {
		f.infoMarkup = markup{prefix: plainInfoPrefix}
		f.errorMarkup = markup{prefix: plainErrorPrefix}
	}
	return f
}

func (f *Facility) openDestination(path, label string) *os.File {
	if path == "" {
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(f.errStream, "cannot open %s %s: %v\n", label, path, err)
		return nil
	}
	return file
}

// ColorEnabled reports whether the primary log was an interactive terminal
// at construction time.
func (f *Facility) ColorEnabled() bool {
	return f.color
}

// InfoEnabled reports whether the primary log destination is present.
func (f *Facility) InfoEnabled() bool {
	return f.log != nil
}

// target selects the destination for records that must not be lost when the
// primary log is absent.
func (f *Facility) target() io.Writer {
	if f.log != nil {
		return f.log
	}
	return f.errStream
}
