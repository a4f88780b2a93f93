package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mvnfetch/mvnfetch/pkg/maven"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Repository != maven.DefaultRepository {
		t.Errorf("Repository = %q, want %q", cfg.Repository, maven.DefaultRepository)
	}
	if cfg.CacheDir != ".mvn_cache" {
		t.Errorf("CacheDir = %q, want %q", cfg.CacheDir, ".mvn_cache")
	}
	if cfg.Store != "file" {
		t.Errorf("Store = %q, want %q", cfg.Store, "file")
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("Timeout() = %v, want 10s", cfg.Timeout())
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mvnfetch.toml")
	content := `
repository = "https://mirror.example/maven2"
timeout_seconds = 30
store = "redis"

[redis]
addr = "cache.internal:6379"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Repository != "https://mirror.example/maven2" {
		t.Errorf("Repository = %q, want mirror", cfg.Repository)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("Timeout() = %v, want 30s", cfg.Timeout())
	}
	if cfg.Store != "redis" {
		t.Errorf("Store = %q, want redis", cfg.Store)
	}
	if cfg.Redis.Addr != "cache.internal:6379" {
		t.Errorf("Redis.Addr = %q, want cache.internal:6379", cfg.Redis.Addr)
	}
	// Keys absent from the file keep their defaults.
	if cfg.CacheDir != ".mvn_cache" {
		t.Errorf("CacheDir = %q, want default", cfg.CacheDir)
	}
	if cfg.Redis.Prefix != appName+":" {
		t.Errorf("Redis.Prefix = %q, want default", cfg.Redis.Prefix)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadConfig of explicit missing file succeeded, want error")
	}
}

func TestLoadConfigNoFileUsesDefaults(t *testing.T) {
	// Point the search paths at empty directories.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Repository != maven.DefaultRepository {
		t.Errorf("Repository = %q, want default", cfg.Repository)
	}
}
