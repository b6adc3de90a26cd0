package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRenderer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validatePaths()
}

func (c *Config) validateRenderer() error {
	if c.Renderer.FriendlyName == "" {
		return errors.New("renderer.friendly_name must be set")
	}
	if c.Renderer.UUID == "" {
		return errors.New("renderer.uuid must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if c.Logging.DebugLevel < 0 {
		return fmt.Errorf("logging.debug_level must not be negative (got %d)", c.Logging.DebugLevel)
	}
	return nil
}

func (c *Config) validatePaths() error {
	// The state writers truncate their destinations, so sharing a path with
	// the append-mode log would corrupt it.
	named := map[string]string{
		"paths.log_file":           c.Paths.LogFile,
		"paths.last_played_file":   c.Paths.LastPlayedFile,
		"paths.playback_time_file": c.Paths.PlaybackTimeFile,
		"paths.history_db":         c.Paths.HistoryDB,
		"paths.pid_file":           c.Paths.PIDFile,
		"paths.lock_file":          c.Paths.LockFile,
	}
	used := map[string]string{}
	for key, path := range named {
		if path == "" {
			continue
		}
		if other, ok := used[path]; ok {
			return fmt.Errorf("%s and %s must not share the path %q", other, key, path)
		}
		used[path] = key
	}
	return nil
}
