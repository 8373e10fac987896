package game

import (
	"fmt"
	"os"
	"strings"
)

// UIMode selects how the session is presented.
type UIMode string

const (
	// UIConsole prints prompts and reads one character at a time from stdin.
	UIConsole UIMode = "console"
	// UIScreen draws the mansion on a full terminal screen.
	UIScreen UIMode = "screen"
)

// EnvUI is the environment variable holding the UI mode.
const EnvUI = "DETECTIVEQUEST_UI"

// Config holds game configuration options.
type Config struct {
	// UI selects the front end. The zero value means UIConsole.
	UI UIMode
}

// ParseUIMode converts a mode name to a UIMode. An empty name means UIConsole.
func ParseUIMode(s string) (UIMode, error) {
	switch mode := UIMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "", UIConsole:
		return UIConsole, nil
	case UIScreen:
		return UIScreen, nil
	default:
		return UIConsole, fmt.Errorf("unknown UI mode %q (want %q or %q)", s, UIConsole, UIScreen)
	}
}

// ConfigFromEnv reads the configuration from the environment.
func ConfigFromEnv() (Config, error) {
	mode, err := ParseUIMode(os.Getenv(EnvUI))
	if err != nil {
		return Config{UI: UIConsole}, fmt.Errorf("invalid %s: %w", EnvUI, err)
	}
	return Config{UI: mode}, nil
}
