// Package config provides configuration for le-professeur-bizarre commands.
package config

import (
	"fmt"
	"os"
)

// Default configuration values.
const (
	DefaultDaemonURL     = "http://localhost:8000"
	DefaultPort          = "5173"
	DefaultNemotronModel = "nvidia/nemotron-3-nano-30b-a3b"
	DefaultVisionModel   = "nvidia/nemotron-nano-12b-v2-vl:free"
	DefaultRealtimeModel = "gpt-4o-realtime-preview-2024-12-17"
)

// Config holds all configuration for the professeur application.
// Flag parsing is done in cmd/professeur/main.go; this struct is data only.
type Config struct {
	// DaemonURL is the base URL of the Reachy Mini daemon HTTP API.
	DaemonURL string

	// Port for the web server.
	Port string

	// LogLevel controls slog verbosity ("debug", "info", "warn", "error").
	LogLevel string

	// OpenRouter (translation + vision).
	OpenRouterKey string
	NemotronModel string
	VisionModel   string

	// OpenAI Realtime (voice conversation).
	OpenAIKey     string
	RealtimeModel string

	// CameraDevice is the local V4L device index for on-robot face
	// tracking. Empty disables the local camera source; face tracking
	// then relies on browser-supplied frames only.
	CameraDevice string
}

// Load returns a Config populated from environment variables with defaults.
func Load() Config {
	return Config{
		DaemonURL:     getenv("DAEMON_URL", DefaultDaemonURL),
		Port:          getenv("PORT", DefaultPort),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		OpenRouterKey: os.Getenv("OPENROUTER_API_KEY"),
		NemotronModel: getenv("NEMOTRON_MODEL", DefaultNemotronModel),
		VisionModel:   getenv("VISION_MODEL", DefaultVisionModel),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		RealtimeModel: getenv("REALTIME_MODEL", DefaultRealtimeModel),
		CameraDevice:  os.Getenv("CAMERA_DEVICE"),
	}
}

// Validate checks that required configuration is present.
// Only the daemon URL is strictly required: the app degrades to canned
// translations without OpenRouter and disables /ws/realtime without OpenAI.
func (c Config) Validate() error {
	if c.DaemonURL == "" {
		return fmt.Errorf("DAEMON_URL must not be empty")
	}
	return nil
}

// DaemonURL returns the daemon URL from DAEMON_URL env var.
// Falls back to the provided default if not set.
func DaemonURL(defaultURL string) string {
	if u := os.Getenv("DAEMON_URL"); u != "" {
		return u
	}
	return defaultURL
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
