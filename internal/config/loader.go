package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLinkup loads Linkup configuration.
// Search order: customPath -> ~/.arcade/configs/linkup.yaml -> ./configs/linkup.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes.
func LoadLinkup(customPath string) (LinkupConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultLinkupConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeLinkup(data)
		if err != nil {
			return DefaultLinkupConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("linkup.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeLinkup(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "linkup.yaml")); err == nil {
		if cfg, err := decodeLinkup(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeLinkup(defaultLinkupYAML)
	if err != nil {
		return DefaultLinkupConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeLinkup decodes YAML over the defaults and validates the result.
func decodeLinkup(data []byte) (LinkupConfig, error) {
	cfg := DefaultLinkupConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
