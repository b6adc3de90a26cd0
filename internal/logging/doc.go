// Package logging implements the renderer's logging and playback-state
// facility.
//
// A Facility owns up to three long-lived destinations opened once at startup:
// the primary log, the last-played state file, and the playback-time state
// file. Log records carry a timestamp and category tag, use terminal color
// markup when the primary log is an interactive terminal, and are written
// atomically so concurrent callers never interleave within one record. The
// two state files are overwritten with a single shell-assignment line that
// external tools poll.
//
// The facility is fail-silent: a destination that cannot be opened is
// reported to the error stream and disabled, and a failed write is dropped.
// No entry point ever returns an error to its caller.
package logging
