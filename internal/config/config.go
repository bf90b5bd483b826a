// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Stage is one output resolution: a size-filter threshold pair.
type Stage struct {
	MinBlock int `yaml:"min-block"`
	MinFlank int `yaml:"min-flank"`
}

// Config holds the stage list driving per-resolution outputs.
type Config struct {
	Stages []Stage `yaml:"stages"`
}

// Load reads and validates a YAML stage file.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if len(cfg.Stages) == 0 {
		return cfg, fmt.Errorf("%s: no stages defined", path)
	}
	seen := make(map[int]struct{}, len(cfg.Stages))
	for i, st := range cfg.Stages {
		if st.MinBlock < 0 || st.MinFlank < 0 {
			return cfg, fmt.Errorf("%s: stage %d has negative threshold", path, i+1)
		}
		if _, dup := seen[st.MinBlock]; dup {
			return cfg, fmt.Errorf("%s: duplicate stage min-block %d", path, st.MinBlock)
		}
		seen[st.MinBlock] = struct{}{}
	}
	return cfg, nil
}

// Single returns a config with one stage built from inline thresholds.
func Single(minBlock, minFlank int) Config {
	return Config{Stages: []Stage{{MinBlock: minBlock, MinFlank: minFlank}}}
}
