package builder

import "github.com/neuroline/eegstream/pkg/internal/config"

// Config is the streamer's YAML configuration.
type Config = config.Config

// LoadConfig reads and validates a configuration file.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return config.Default()
}
