package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// duration lets YAML carry values like "2s" or "5m".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	v, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	d.Duration = v
	return nil
}

// Config is the agent's runtime configuration. A YAML file fills it
// first, command-line flags override it.
type Config struct {
	// LedgerURL is the remote ledger node's RPC endpoint.
	LedgerURL string `yaml:"ledger_url"`
	// PollInterval is the delay between board polls.
	PollInterval duration `yaml:"poll_interval"`
	// MoveTimeout bounds how long to wait for an opponent move before
	// abandoning a match.
	MoveTimeout duration `yaml:"move_timeout"`
	// RegisterRetries bounds registration attempts before giving up.
	RegisterRetries int `yaml:"register_retries"`
	// StartIndex is the slot index discovery begins from.
	StartIndex uint64 `yaml:"start_index"`
	// AllowBackwardMen relaxes the forward-only rule for uncrowned
	// pieces. Leave off for the standard game.
	AllowBackwardMen bool `yaml:"allow_backward_men"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// defaultConfig returns the settings used when neither file nor flags
// say otherwise.
func defaultConfig() Config {
	return Config{
		LedgerURL:       "http://localhost:8356/rpc",
		PollInterval:    duration{2 * time.Second},
		MoveTimeout:     duration{5 * time.Minute},
		RegisterRetries: 5,
	}
}

// loadConfig overlays the YAML file at path onto the defaults. A missing
// file is fine when the path was not explicitly requested.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
