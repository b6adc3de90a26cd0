package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gorender/internal/config"
	"gorender/internal/daemon"
	"gorender/internal/history"
	"gorender/internal/logging"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var (
		logFile          string
		lastPlayedFile   string
		playbackTimeFile string
		pidFile          string
		debugLevel       int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the renderer shell until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			// Command-line paths take precedence over the config file.
			overrides := []struct {
				flag   string
				value  string
				target *string
			}{
				{"logfile", logFile, &cfg.Paths.LogFile},
				{"last-played-file", lastPlayedFile, &cfg.Paths.LastPlayedFile},
				{"playback-time-file", playbackTimeFile, &cfg.Paths.PlaybackTimeFile},
				{"pid-file", pidFile, &cfg.Paths.PIDFile},
			}
			for _, o := range overrides {
				if !cmd.Flags().Changed(o.flag) {
					continue
				}
				expanded, err := config.ExpandPath(o.value)
				if err != nil {
					return fmt.Errorf("--%s: %w", o.flag, err)
				}
				*o.target = expanded
			}
			if cmd.Flags().Changed("debug-level") {
				cfg.Logging.DebugLevel = debugLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			facility := logging.New(logging.Options{
				LogPath:          cfg.Paths.LogFile,
				LastPlayedPath:   cfg.Paths.LastPlayedFile,
				PlaybackTimePath: cfg.Paths.PlaybackTimeFile,
				DebugLevel:       cfg.Logging.DebugLevel,
			})

			if cfg.Paths.LogFile != "" {
				facility.Printf(0, "main", "%s %s log started (uuid %s)",
					cfg.Renderer.FriendlyName, version, cfg.Renderer.UUID)
			} else {
				fmt.Fprintf(os.Stderr, "%s %s started.\nLogging switched off. "+
					"Enable with --logfile=<filename> (e.g. --logfile=/dev/stdout for console)\n",
					cfg.Renderer.FriendlyName, version)
			}

			var store *history.Store
			if cfg.Paths.HistoryDB != "" {
				store, err = history.Open(cfg.Paths.HistoryDB)
				if err != nil {
					return fmt.Errorf("open history database: %w", err)
				}
				defer store.Close()
			}

			shell, err := daemon.New(cfg, facility, store)
			if err != nil {
				return err
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return shell.Run(signalCtx)
		},
	}

	cmd.Flags().StringVar(&logFile, "logfile", "", "Debug log filename. Use /dev/stdout to log to console")
	cmd.Flags().StringVar(&lastPlayedFile, "last-played-file", "", "File to record time of last playback start")
	cmd.Flags().StringVar(&playbackTimeFile, "playback-time-file", "", "File to record the total length of last playback")
	cmd.Flags().StringVar(&pidFile, "pid-file", "", "File the process ID should be written to")
	cmd.Flags().IntVarP(&debugLevel, "debug-level", "v", 0, "How much logging")

	return cmd
}
