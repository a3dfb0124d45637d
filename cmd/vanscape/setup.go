package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vanscape/internal/config"
	"github.com/vovakirdan/vanscape/internal/games/vanscape"
	"github.com/vovakirdan/vanscape/internal/storage"
)

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.Config, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, preset, nil
}

// watchConfig starts hot reload for an explicit --config file.
// Config files found by search are not watched.
func watchConfig(preset config.DifficultyPreset, logger *log.Logger) *config.Watcher {
	if flagConfig == "" {
		return nil
	}
	w, err := config.Watch(flagConfig, preset)
	if err != nil {
		logger.Warn("config hot reload disabled", "path", flagConfig, "error", err)
		return nil
	}
	return w
}

// openBest opens the best score file. A failure is reported and the game
// runs without persistence.
func openBest() *storage.BestFile {
	best, err := storage.OpenBestFile(flagBestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open best score file: %v\n", err)
		return nil
	}
	return best
}

// openStore opens the run history. A failure is reported and runs are not recorded.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// openLogFile opens the log file for sessions that own the terminal or
// window. The caller closes it. Falls back to discarding logs.
func openLogFile() (io.WriteCloser, error) {
	path := flagLogFile
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, path[2:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// localPlayer names the local user in the run history.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "anonymous"
}

// bestValue returns the stored best, or zero without a best file.
func bestValue(best *storage.BestFile) int {
	if best == nil {
		return 0
	}
	return best.Load()
}

// bestStore avoids handing the game a typed nil interface.
func bestStore(best *storage.BestFile) vanscape.BestStore {
	if best == nil {
		return nil
	}
	return best
}
