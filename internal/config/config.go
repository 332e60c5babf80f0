// Package config provides YAML-based settings loading for the game's
// platform concerns: pacing, audio, storage, policy, window and SSH server.
// Simulation tuning is compiled in and never read from here.
package config

import (
	"fmt"
	"time"
)

// Settings contains every platform setting.
type Settings struct {
	Game    GameSettings    `yaml:"game"`
	Audio   AudioSettings   `yaml:"audio"`
	Storage StorageSettings `yaml:"storage"`
	Policy  PolicySettings  `yaml:"policy"`
	Window  WindowSettings  `yaml:"window"`
	Server  ServerSettings  `yaml:"server"`
	Log     LogSettings     `yaml:"log"`
}

// GameSettings controls the frame loop.
type GameSettings struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"` // 0 = random based on time
}

// AudioSettings configures the synthesized sound output.
type AudioSettings struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`      // Master volume in [0, 1]
	SampleRate int     `yaml:"sample_rate"` // Hz
}

// StorageSettings locates the run log database.
type StorageSettings struct {
	DBPath string `yaml:"db_path"`
}

// Policy kinds.
const (
	PolicyHeuristic = "heuristic"
	PolicyMLP       = "mlp"
)

// PolicySettings selects the autopilot.
type PolicySettings struct {
	Kind    string `yaml:"kind"`
	Weights string `yaml:"weights"` // YAML weights file, required for mlp
}

// WindowSettings configures the desktop frontend.
type WindowSettings struct {
	Scale float64 `yaml:"scale"`
}

// ServerSettings configures the SSH server.
type ServerSettings struct {
	Addr        string        `yaml:"addr"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogSettings configures the logger.
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty discards logs in terminal frontends
}

// Validate checks that settings are usable.
func (s Settings) Validate() error {
	if s.Game.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", s.Game.TickRate)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return fmt.Errorf("config: audio volume must be within [0, 1], got %v", s.Audio.Volume)
	}
	if s.Audio.Enabled && s.Audio.SampleRate <= 0 {
		return fmt.Errorf("config: audio sample_rate must be positive, got %d", s.Audio.SampleRate)
	}
	switch s.Policy.Kind {
	case PolicyHeuristic:
	case PolicyMLP:
		if s.Policy.Weights == "" {
			return fmt.Errorf("config: policy %q needs a weights file", s.Policy.Kind)
		}
	default:
		return fmt.Errorf("config: unknown policy kind %q", s.Policy.Kind)
	}
	if s.Window.Scale <= 0 {
		return fmt.Errorf("config: window scale must be positive, got %v", s.Window.Scale)
	}
	return nil
}
