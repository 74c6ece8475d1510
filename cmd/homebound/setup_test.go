package main

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/.homebound/runs.db", filepath.Join(home, ".homebound", "runs.db")},
		{"/tmp/runs.db", "/tmp/runs.db"},
		{"relative/runs.db", "relative/runs.db"},
		{"~other/runs.db", "~other/runs.db"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := expandHome(tt.in); got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{"INFO", log.InfoLevel, false},
		{"warn", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", log.InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr bool
	}{
		{nil, "homebound", false},
		{[]string{"homebound_endless"}, "homebound_endless", false},
		{[]string{"skyline"}, "", true},
	}

	for _, tt := range tests {
		got, err := resolveMode(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveMode(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveMode(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestRuntimeConfigSeed(t *testing.T) {
	flagFPS, flagSeed = 30, 42
	t.Cleanup(func() { flagFPS, flagSeed = 60, 0 })

	cfg := runtimeConfig(100, 40)
	if cfg.Seed != 42 || cfg.TickRate != 30 || cfg.ScreenW != 100 || cfg.ScreenH != 40 {
		t.Errorf("runtimeConfig = %+v", cfg)
	}

	flagSeed = 0
	if runtimeConfig(1, 1).Seed == 0 {
		t.Error("zero seed should be replaced with a time-based one")
	}
}

func TestLoadConfigAppliesPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	flagDifficulty = "hard"
	t.Cleanup(func() { flagDifficulty = "" })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() = %v", err)
	}
	if cfg.Gameplay.StartLives != 2 || cfg.Difficulty.StartLevel != 2 {
		t.Errorf("hard preset not applied: lives=%d level=%d", cfg.Gameplay.StartLives, cfg.Difficulty.StartLevel)
	}

	flagDifficulty = "brutal"
	if _, err := loadConfig(); err == nil {
		t.Error("expected error for unknown preset")
	}
}
