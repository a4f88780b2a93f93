package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mvnfetch/mvnfetch/pkg/maven"
)

// Config holds the tool configuration, loaded from a TOML file and
// overridable per command via flags.
type Config struct {
	// Repository is the base URL of the remote Maven repository.
	Repository string `toml:"repository"`
	// CacheDir is the root of the local artifact cache. Relative paths are
	// resolved against the current working directory.
	CacheDir string `toml:"cache_dir"`
	// TimeoutSeconds bounds each repository request.
	TimeoutSeconds int `toml:"timeout_seconds"`
	// Store selects the cache backend: "file", "redis", "mongo" or "none".
	Store string `toml:"store"`

	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// RedisConfig configures the Redis cache backend.
type RedisConfig struct {
	Addr   string `toml:"addr"`
	Prefix string `toml:"prefix"`
}

// MongoConfig configures the MongoDB cache backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// DefaultConfig returns the built-in defaults: Maven Central, a
// ".mvn_cache" directory under the current working directory, a 10 second
// request timeout and the file store.
func DefaultConfig() Config {
	return Config{
		Repository:     maven.DefaultRepository,
		CacheDir:       ".mvn_cache",
		TimeoutSeconds: 10,
		Store:          "file",
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: appName + ":",
		},
		Mongo: MongoConfig{
			URI:        "mongodb://localhost:27017",
			Database:   appName,
			Collection: "cache",
		},
	}
}

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LoadConfig reads the configuration file at path, or searches the default
// locations when path is empty: ./mvnfetch.toml, then
// $XDG_CONFIG_HOME/mvnfetch/config.toml, then ~/.config/mvnfetch/config.toml.
// A missing file is not an error; defaults apply for every absent key.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		return cfg, nil
	}
	for _, candidate := range configCandidates() {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if _, err := toml.DecodeFile(candidate, &cfg); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", candidate, err)
		}
		return cfg, nil
	}
	return cfg, nil
}

func configCandidates() []string {
	candidates := []string{appName + ".toml"}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		candidates = append(candidates, filepath.Join(configHome, appName, "config.toml"))
	} else if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", appName, "config.toml"))
	}
	return candidates
}
