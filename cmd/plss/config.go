package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix of environment variables read into the config.
const envPrefix = "PLSS_"

// Config holds the CLI configuration.
type Config struct {
	DBPath string    `koanf:"db_path"`
	GIS    GISConfig `koanf:"gis"`
	Log    LogConfig `koanf:"log"`
}

// GISConfig configures the well-location GIS client. An empty URL
// disables the GIS tier.
type GISConfig struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
	RPS     float64       `koanf:"rps"`
}

// LogConfig configures the stderr logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// LoadConfig loads configuration from defaults, the YAML file at path (if
// any), PLSS_* environment variables, and finally overrides, each layer
// taking precedence over the previous one. Empty override values are
// ignored.
func LoadConfig(path string, overrides map[string]string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"db_path":     defaultDBPath(),
		"gis.url":     "",
		"gis.timeout": "10s",
		"gis.rps":     2.0,
		"log.level":   "warn",
		"log.format":  "text",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// PLSS_GIS_URL -> gis.url, PLSS_DB_PATH -> db_path
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	set := make(map[string]any)
	for key, v := range overrides {
		if v != "" {
			set[key] = v
		}
	}
	if err := k.Load(confmap.Provider(set, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, section := range []string{"gis_", "log_"} {
		if strings.HasPrefix(key, section) {
			return strings.Replace(key, "_", ".", 1)
		}
	}
	return key
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "plss.db"
	}
	return filepath.Join(home, ".plss", "plss.db")
}
