package telemetry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultLogConfig is used whenever no --log-config file is given or
// the given path does not exist.
func DefaultLogConfig() LogConfig {
	return LogConfig{Level: LevelInfo, Format: FormatText}
}

// LoadLogConfig reads a YAML log-config file. A missing file is not an
// error: it yields DefaultLogConfig, mirroring config.Load's fallback.
func LoadLogConfig(path string) (LogConfig, error) {
	cfg := DefaultLogConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return LogConfig{}, fmt.Errorf("telemetry: read log config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LogConfig{}, fmt.Errorf("telemetry: parse log config: %w", err)
	}
	return cfg, nil
}
