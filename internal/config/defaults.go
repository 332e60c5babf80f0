package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Game: GameSettings{
			TickRate: 60,
		},
		Audio: AudioSettings{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
		},
		Storage: StorageSettings{
			DBPath: "~/.flappy/runs.db",
		},
		Policy: PolicySettings{
			Kind: PolicyHeuristic,
		},
		Window: WindowSettings{
			Scale: 1,
		},
		Server: ServerSettings{
			Addr:        ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultYAML
}
