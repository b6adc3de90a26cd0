package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gorender/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent playback sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.Paths.HistoryDB == "" {
				return errors.New("no history database configured (set paths.history_db)")
			}

			store, err := history.Open(cfg.Paths.HistoryDB)
			if err != nil {
				return fmt.Errorf("open history database: %w", err)
			}
			defer store.Close()

			sessions, err := store.RecentSessions(cmd.Context(), limit)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(sessions))
			for _, session := range sessions {
				rows = append(rows, []string{
					session.StartedAt.Format(time.DateTime),
					session.EndedAt.Format(time.DateTime),
					formatHMS(session.Seconds),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Started (UTC)", "Ended (UTC)", "Duration"}, rows, 3))

			count, seconds, err := store.Totals(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d sessions, %s total\n", count, formatHMS(seconds))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of sessions to list")
	return cmd
}
