package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configBaseName is the file name (without extension) searched for.
const configBaseName = "homebound"

// Format is a supported configuration file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath infers the file format from the extension. Unknown
// extensions are treated as YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Load loads Homebound configuration.
// Search order: customPath -> ~/.homebound/configs/homebound.{yaml,toml} ->
// ./configs/homebound.{yaml,toml} -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (HomeboundConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return DefaultHomeboundConfig(), err
		}
		return cfg, nil
	}

	// Try user and local config directories; broken files fall through
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultHomeboundConfig()
	if err := Decode(defaultHomeboundYAML, FormatYAML, &cfg); err != nil {
		return DefaultHomeboundConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads, decodes and validates a single config file.
func LoadFile(path string) (HomeboundConfig, error) {
	cfg := DefaultHomeboundConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := Decode(data, FormatFromPath(path), &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays data in the given format onto cfg.
func Decode(data []byte, format Format, cfg *HomeboundConfig) error {
	switch format {
	case FormatTOML:
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// Encode serialises cfg in the given format.
func Encode(cfg HomeboundConfig, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode toml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, configBaseName+".yaml"),
			filepath.Join(dir, configBaseName+".toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", configBaseName+".yaml"),
		filepath.Join("configs", configBaseName+".toml"),
	)
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".homebound", "configs")
}
