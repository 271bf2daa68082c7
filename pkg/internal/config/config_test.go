package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/neuroline/eegstream/pkg/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eegstream.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
broker:
  addresses: ["broker-1:9092", "broker-2:9092"]
streamer:
  id: ward-3-bed-2
  sampling_rate: 512
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(cfg.Broker.Addresses) != 2 || cfg.Broker.Addresses[0] != "broker-1:9092" {
		t.Errorf("addresses = %v", cfg.Broker.Addresses)
	}
	if cfg.Streamer.ID != "ward-3-bed-2" {
		t.Errorf("id = %q", cfg.Streamer.ID)
	}
	if cfg.Streamer.SamplingRate != 512 {
		t.Errorf("sampling_rate = %d", cfg.Streamer.SamplingRate)
	}

	// Untouched fields keep their defaults.
	if cfg.Broker.SampleTopic != "eeg.samples" {
		t.Errorf("sample_topic default = %q", cfg.Broker.SampleTopic)
	}
	if cfg.Streamer.MaxStreamDuration != 10000*time.Second {
		t.Errorf("max_stream_duration default = %v", cfg.Streamer.MaxStreamDuration)
	}
	if cfg.Streamer.Dampening != 0.5 {
		t.Errorf("dampening default = %v", cfg.Streamer.Dampening)
	}
	if cfg.Data.TileCount != 10 {
		t.Errorf("tile_count default = %d", cfg.Data.TileCount)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero rate", "streamer:\n  sampling_rate: 0\n"},
		{"negative flush", "streamer:\n  flush_interval: -1s\n"},
		{"dampening above one", "streamer:\n  dampening: 1.5\n"},
		{"no brokers", "broker:\n  addresses: []\n"},
		{"empty sample topic", "broker:\n  sample_topic: \"\"\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := config.Load(writeConfig(t, tc.body)); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	if _, err := config.Load(writeConfig(t, "broker: [unclosed")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := config.Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestGroupIDFallsBackToStreamerID(t *testing.T) {
	cfg := config.Default()
	cfg.Streamer.ID = "patient-9"
	if got := cfg.GroupID(); got != "patient-9" {
		t.Errorf("GroupID = %q", got)
	}

	cfg.Broker.GroupID = "shared-readers"
	if got := cfg.GroupID(); got != "shared-readers" {
		t.Errorf("GroupID with override = %q", got)
	}
}
