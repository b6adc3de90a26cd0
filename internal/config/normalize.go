package config

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeRenderer()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogFile, err = expandOptional(c.Paths.LogFile); err != nil {
		return fmt.Errorf("paths.log_file: %w", err)
	}
	if c.Paths.LastPlayedFile, err = expandOptional(c.Paths.LastPlayedFile); err != nil {
		return fmt.Errorf("paths.last_played_file: %w", err)
	}
	if c.Paths.PlaybackTimeFile, err = expandOptional(c.Paths.PlaybackTimeFile); err != nil {
		return fmt.Errorf("paths.playback_time_file: %w", err)
	}
	if c.Paths.HistoryDB, err = expandOptional(c.Paths.HistoryDB); err != nil {
		return fmt.Errorf("paths.history_db: %w", err)
	}
	if c.Paths.PIDFile, err = expandOptional(c.Paths.PIDFile); err != nil {
		return fmt.Errorf("paths.pid_file: %w", err)
	}
	c.Paths.LockFile = strings.TrimSpace(c.Paths.LockFile)
	if c.Paths.LockFile == "" {
		c.Paths.LockFile = defaultLockFile
	}
	if c.Paths.LockFile, err = expandPath(c.Paths.LockFile); err != nil {
		return fmt.Errorf("paths.lock_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeRenderer() {
	c.Renderer.FriendlyName = strings.TrimSpace(c.Renderer.FriendlyName)
	if c.Renderer.FriendlyName == "" {
		c.Renderer.FriendlyName = defaultFriendlyName
	}
	c.Renderer.UUID = strings.TrimSpace(c.Renderer.UUID)
	if c.Renderer.UUID == "" {
		c.Renderer.UUID = uuid.NewString()
	}
}

// expandOptional expands a path while keeping the empty string as the
// "feature disabled" marker.
func expandOptional(pathValue string) (string, error) {
	trimmed := strings.TrimSpace(pathValue)
	if trimmed == "" {
		return "", nil
	}
	return expandPath(trimmed)
}
