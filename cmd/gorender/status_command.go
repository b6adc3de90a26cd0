package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the polled playback state files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			rows := [][]string{
				{"Last played (UTC)", describeLastPlayed(cfg.Paths.LastPlayedFile)},
				{"Total playback", describeTotal(cfg.Paths.PlaybackTimeFile)},
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"State", "Value"}, rows))
			return nil
		},
	}
}

func describeLastPlayed(path string) string {
	line, ok := readStateLine(path)
	if !ok {
		return line
	}
	timestamp, ok := parseLastPlayedLine(line)
	if !ok {
		return fmt.Sprintf("unreadable: %q", line)
	}
	return timestamp
}

func describeTotal(path string) string {
	line, ok := readStateLine(path)
	if !ok {
		return line
	}
	seconds, ok := parseTotalLine(line)
	if !ok {
		return fmt.Sprintf("unreadable: %q", line)
	}
	return fmt.Sprintf("%s (%d seconds)", formatHMS(seconds), seconds)
}

// readStateLine returns the single state line, or a human-readable
// placeholder with ok=false when there is nothing to parse.
func readStateLine(path string) (string, bool) {
	if path == "" {
		return "not configured", false
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "no data yet", false
		}
		return fmt.Sprintf("unreadable: %v", err), false
	}
	line := strings.TrimSuffix(string(content), "\n")
	if line == "" {
		return "no data yet", false
	}
	return line, true
}

func parseLastPlayedLine(line string) (string, bool) {
	value, ok := strings.CutPrefix(line, "UPNP_LAST_PLAYED='")
	if !ok {
		return "", false
	}
	value, ok = strings.CutSuffix(value, "'")
	if !ok {
		return "", false
	}
	return value, true
}

func parseTotalLine(line string) (int64, bool) {
	value, ok := strings.CutPrefix(line, "UPNP_TOTAL=")
	if !ok {
		return 0, false
	}
	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil || seconds < 0 {
		return 0, false
	}
	return seconds, true
}

func formatHMS(seconds int64) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds/60)%60, seconds%60)
}
