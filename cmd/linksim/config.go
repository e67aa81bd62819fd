package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the command-line flags for file-driven runs. Zero
// values mean "not set" and keep the flag defaults.
type Config struct {
	Message     string    `yaml:"message"`
	SNR         []float64 `yaml:"snr"`
	Schemes     []string  `yaml:"schemes"`
	Seed        uint64    `yaml:"seed"`
	Trials      int       `yaml:"trials"`
	Workers     int       `yaml:"workers"`
	Carrier     bool      `yaml:"carrier"`
	CarrierFreq float64   `yaml:"carrier_freq"`
	SampleRate  int       `yaml:"sample_rate"`
	Output      string    `yaml:"output"`
}

// loadConfig reads and parses a YAML run configuration.
func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}
