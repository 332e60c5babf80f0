package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	if cfg != DefaultSettings() {
		t.Errorf("embedded defaults = %+v\nwant %+v", cfg, DefaultSettings())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte(`
game:
  tick_rate: 30
  seed: 7
audio:
  enabled: false
server:
  idle_timeout: 5m
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Game.TickRate != 30 || cfg.Game.Seed != 7 {
		t.Errorf("game = %+v, want tick rate 30 seed 7", cfg.Game)
	}
	if cfg.Audio.Enabled {
		t.Error("audio should be disabled")
	}
	if cfg.Server.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, want 5m", cfg.Server.IdleTimeout)
	}
	// Untouched sections keep defaults.
	if cfg.Audio.SampleRate != 44100 || cfg.Policy.Kind != PolicyHeuristic {
		t.Errorf("defaults lost: audio %+v policy %+v", cfg.Audio, cfg.Policy)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("game: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults", func(*Settings) {}, false},
		{"zero tick rate", func(s *Settings) { s.Game.TickRate = 0 }, true},
		{"loud", func(s *Settings) { s.Audio.Volume = 1.5 }, true},
		{"no sample rate", func(s *Settings) { s.Audio.SampleRate = 0 }, true},
		{"no sample rate when muted", func(s *Settings) {
			s.Audio.Enabled = false
			s.Audio.SampleRate = 0
		}, false},
		{"mlp without weights", func(s *Settings) { s.Policy.Kind = PolicyMLP }, true},
		{"mlp with weights", func(s *Settings) {
			s.Policy.Kind = PolicyMLP
			s.Policy.Weights = "w.yaml"
		}, false},
		{"unknown policy", func(s *Settings) { s.Policy.Kind = "ppo" }, true},
		{"zero scale", func(s *Settings) { s.Window.Scale = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			if err := s.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
