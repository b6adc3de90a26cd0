// Package history persists completed playback sessions in SQLite so the CLI
// can report what the renderer has played beyond the two single-line state
// files.
package history
