// Package config loads the streamer's YAML configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Broker   BrokerConfig   `yaml:"broker"`
	Streamer StreamerConfig `yaml:"streamer"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type BrokerConfig struct {
	Addresses   []string `yaml:"addresses"`
	SampleTopic string   `yaml:"sample_topic"`
	ResultTopic string   `yaml:"result_topic"`
	GroupID     string   `yaml:"group_id"`
}

type StreamerConfig struct {
	ID                string        `yaml:"id"`
	Montage           string        `yaml:"montage"`
	MaxStreamDuration time.Duration `yaml:"max_stream_duration"`
	SamplingRate      int           `yaml:"sampling_rate"`
	Channels          int           `yaml:"channels"`
	FlushInterval     time.Duration `yaml:"flush_interval"`
	ListenInterval    time.Duration `yaml:"listen_interval"`
	TargetInterval    time.Duration `yaml:"target_interval"`
	Dampening         float64       `yaml:"dampening"`
}

type DataConfig struct {
	TileCount int `yaml:"tile_count"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Load reads path and overlays it onto the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration: a one-second flush and listen
// cadence at 256Hz over 8 channels, capped at 10000 seconds of streaming.
func Default() *Config {
	return &Config{
		Broker: BrokerConfig{
			Addresses:   []string{"localhost:9092"},
			SampleTopic: "eeg.samples",
			ResultTopic: "eeg.results",
		},
		Streamer: StreamerConfig{
			ID:                "patient-0",
			Montage:           "1020",
			MaxStreamDuration: 10000 * time.Second,
			SamplingRate:      256,
			Channels:          8,
			FlushInterval:     1 * time.Second,
			ListenInterval:    1 * time.Second,
			TargetInterval:    1 * time.Second,
			Dampening:         0.5,
		},
		Data: DataConfig{
			TileCount: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate rejects configurations the stream loop cannot run with.
func (c *Config) Validate() error {
	switch {
	case len(c.Broker.Addresses) == 0:
		return fmt.Errorf("broker.addresses must not be empty")
	case c.Broker.SampleTopic == "":
		return fmt.Errorf("broker.sample_topic must not be empty")
	case c.Broker.ResultTopic == "":
		return fmt.Errorf("broker.result_topic must not be empty")
	case c.Streamer.SamplingRate <= 0:
		return fmt.Errorf("streamer.sampling_rate must be positive")
	case c.Streamer.Channels <= 0:
		return fmt.Errorf("streamer.channels must be positive")
	case c.Streamer.MaxStreamDuration <= 0:
		return fmt.Errorf("streamer.max_stream_duration must be positive")
	case c.Streamer.FlushInterval <= 0:
		return fmt.Errorf("streamer.flush_interval must be positive")
	case c.Streamer.ListenInterval <= 0:
		return fmt.Errorf("streamer.listen_interval must be positive")
	case c.Streamer.TargetInterval <= 0:
		return fmt.Errorf("streamer.target_interval must be positive")
	case c.Streamer.Dampening <= 0 || c.Streamer.Dampening > 1:
		return fmt.Errorf("streamer.dampening must be in (0, 1]")
	case c.Data.TileCount <= 0:
		return fmt.Errorf("data.tile_count must be positive")
	}
	return nil
}

// GroupID returns the configured consumer group, defaulting to the streamer
// identifier so each patient session reads its own offsets.
func (c *Config) GroupID() string {
	if c.Broker.GroupID != "" {
		return c.Broker.GroupID
	}
	return c.Streamer.ID
}
