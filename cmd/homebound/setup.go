package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/homebound/internal/config"
	"github.com/vovakirdan/homebound/internal/core"
	"github.com/vovakirdan/homebound/internal/games/homebound"
	"github.com/vovakirdan/homebound/internal/platform/observer"
	"github.com/vovakirdan/homebound/internal/registry"
	"github.com/vovakirdan/homebound/internal/sfx"
	"github.com/vovakirdan/homebound/internal/storage"
)

const (
	defaultDBPath  = "~/.homebound/runs.db"
	defaultLogFile = "~/.homebound/homebound.log"
)

// parseLevel accepts the --log-level values.
func parseLevel(s string) (log.Level, error) {
	level, err := log.ParseLevel(strings.ToLower(s))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid --log-level %q: %w", s, err)
	}
	return level, nil
}

// newLogger builds the CLI logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	level, _ := parseLevel(flagLogLevel)
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "homebound",
		Level:           level,
	})
}

// newFileLogger logs to --log-file so the terminal UI keeps the screen.
// The returned close function is never nil.
func newFileLogger() (*log.Logger, func()) {
	path := expandHome(flagLogFile)
	if path == "" {
		return newLogger(io.Discard), func() {}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// resolveMode picks the mode from args, defaulting to story mode.
func resolveMode(args []string) (string, error) {
	mode := homebound.ModeStory
	if len(args) > 0 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return "", fmt.Errorf("unknown mode %q (run 'homebound list' to see available modes)", mode)
	}
	return mode, nil
}

// runtimeConfig builds the per-game runtime settings from global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// loadConfig returns the effective configuration for the current flags.
func loadConfig() (config.HomeboundConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.HomeboundConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// openStore opens the run history. Failures are logged and play continues
// without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openSound starts audio when --sound is set. The returned close function is
// never nil; the sound is nil when disabled or unavailable.
func openSound(logger *log.Logger) (observer.Sound, func()) {
	if !flagSound {
		return nil, func() {}
	}
	player := sfx.NewPlayer(logger)
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil, func() {}
	}
	return player, player.Close
}
