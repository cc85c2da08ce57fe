package cli

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds CLI configuration
type Config struct {
	ServerURL    string
	PinFile      string
	Output       string
	Verbose      bool
	RequirePhone bool
	Timeout      time.Duration
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:    getEnvOrDefault("DECKEXPORT_SERVER", "http://localhost:8080"),
		PinFile:      getEnvOrDefault("DECKEXPORT_PIN_FILE", defaultPinFile()),
		Output:       "text",
		Verbose:      false,
		RequirePhone: getEnvBool("DECKEXPORT_REQUIRE_PHONE"),
		Timeout:      30 * time.Second,
	}
}

func defaultPinFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".deckexport/pin"
	}
	return filepath.Join(home, ".deckexport", "pin")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
