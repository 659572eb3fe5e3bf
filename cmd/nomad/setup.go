package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/desert-nomad/internal/audio"
	"github.com/vovakirdan/desert-nomad/internal/config"
	"github.com/vovakirdan/desert-nomad/internal/core"
	"github.com/vovakirdan/desert-nomad/internal/games/nomad"
	"github.com/vovakirdan/desert-nomad/internal/storage"
)

var (
	_ nomad.Records    = (*storage.GameRecords)(nil)
	_ nomad.AudioHooks = (*audio.SoundManager)(nil)
)

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "nomad",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
		logger.Warn("unknown log level, using info", "level", level)
	}
	logger.SetLevel(lvl)
	return logger
}

// interactiveLogger returns a logger that stays off the terminal while the
// alt-screen is active. Logs go to --log-file when set.
func interactiveLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return newLogger(io.Discard, flagLogLevel), func() {}
	}
	if dir := filepath.Dir(flagLogFile); dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(io.Discard, flagLogLevel), func() {}
	}
	return newLogger(f, flagLogLevel), func() { f.Close() }
}

// runtimeConfig reads the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// loadConfig loads the game config and applies --difficulty.
func loadConfig() (config.NomadConfig, error) {
	cfg, err := config.LoadNomad(flagConfig)
	if err != nil {
		return cfg, err
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyNomadPreset(&cfg, preset)
	} else if flagDifficulty != "" {
		return cfg, fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	return cfg, nil
}

// openStore opens the score database. A failure is logged and play
// continues without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// startAudio brings up the speaker. Without a sound device the manager
// stays silent.
func startAudio(cfg config.AudioConfig, logger *log.Logger) *audio.SoundManager {
	if flagMute {
		cfg.Enabled = false
	}
	sm := audio.NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing silently", "err", err)
	}
	return sm
}

// wireGame hands the collaborators to the game package before a variant
// is created.
func wireGame(gameID string, store *storage.Store, sound *audio.SoundManager, logger *log.Logger) {
	nomad.SetConfigPath(flagConfig)
	nomad.SetDifficultyPreset(flagDifficulty)
	nomad.SetLogger(logger)
	nomad.SetAudio(sound)
	if store != nil {
		nomad.SetRecords(store.Records(gameID))
	} else {
		nomad.SetRecords(nil)
	}
}
