package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "dash.yaml"

// LoadDash loads the simulation configuration.
// Search order: customPath -> ~/.dash/configs/dash.yaml -> ./configs/dash.yaml -> embedded default.
// Files are decoded over the defaults, so partial files only override what they name.
func LoadDash(customPath string) (DashConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultDashConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultDashConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultDashYAML)
	if err != nil {
		return DefaultDashConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte) (DashConfig, error) {
	cfg := DefaultDashConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dash", "configs", filename)
}
