package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"notifyd/internal/common/fsutil"
)

// Config holds runtime parameters for the daemon.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Addr             string `json:"addr" yaml:"addr" toml:"addr"`
	LogLevel         string `json:"log_level" yaml:"log_level" toml:"log_level"`
	MaxBodyBytes     int64  `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	DispatchTimeoutS int64  `json:"dispatch_timeout_s" yaml:"dispatch_timeout_s" toml:"dispatch_timeout_s"`

	CORSEnabled bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`

	Audit AuditConfig `json:"audit" yaml:"audit" toml:"audit"`
}

// AuditConfig configures the built-in audit-log mediator.
type AuditConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled" toml:"enabled"`
	// Interests lists the notification names the audit mediator subscribes
	// to synchronously.
	Interests []string `json:"interests" yaml:"interests" toml:"interests"`
	// AsyncInterests lists the names it subscribes to asynchronously.
	AsyncInterests []string `json:"async_interests" yaml:"async_interests" toml:"async_interests"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	path, err := fsutil.ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
