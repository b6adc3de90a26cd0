package daemon

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// reportUnwritableDestinations checks the directories behind every configured
// state destination and logs the ones this process cannot write to. Startup
// proceeds regardless; the writes themselves fail silently later.
func (d *Daemon) reportUnwritableDestinations() {
	named := map[string]string{
		"log file":           d.cfg.Paths.LogFile,
		"last played file":   d.cfg.Paths.LastPlayedFile,
		"playback time file": d.cfg.Paths.PlaybackTimeFile,
		"history database":   d.cfg.Paths.HistoryDB,
	}
	for label, path := range named {
		if path == "" {
			continue
		}
		if err := checkWritableDir(filepath.Dir(path)); err != nil {
			d.facility.Error("main", "%s directory not writable: %v", label, err)
		}
	}
}

func checkWritableDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "access", Path: dir, Err: unix.ENOTDIR}
	}
	return unix.Access(dir, unix.W_OK|unix.X_OK)
}
