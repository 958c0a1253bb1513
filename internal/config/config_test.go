package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/funkdigen/pkg/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvStrategy, EnvLoopless, EnvAddr, EnvMaxSize, EnvCountCache} {
		t.Setenv(name, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
strategy = "pooled"
loopless = true

[serve]
addr = "127.0.0.1:9000"
max_size = 9
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Strategy != "pooled" || !cfg.Loopless {
		t.Errorf("generation settings = %+v", cfg)
	}
	if cfg.Serve.Addr != "127.0.0.1:9000" || cfg.Serve.MaxSize != 9 {
		t.Errorf("serve settings = %+v", cfg.Serve)
	}
	if cfg.Serve.CountCache != Default().Serve.CountCache {
		t.Errorf("count_cache = %d, want default", cfg.Serve.CountCache)
	}
}

func TestLoadDefaultPath(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "funkdigen"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "funkdigen", "config.toml"), []byte(`loopless = true`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Loopless {
		t.Error("config at the default path was not read")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "strategy = \"pooled\"\n[serve]\nmax_size = 9\n")
	t.Setenv(EnvStrategy, "successor")
	t.Setenv(EnvMaxSize, "7")
	t.Setenv(EnvCountCache, "16")
	t.Setenv(EnvLoopless, "true")
	t.Setenv(EnvAddr, ":9999")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{
		Strategy: "successor",
		Loopless: true,
		Serve:    ServeConfig{Addr: ":9999", MaxSize: 7, CountCache: 16},
	}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(EnvMaxSize)
	if err := os.WriteFile(".env", []byte(EnvMaxSize+"=5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(EnvMaxSize) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Serve.MaxSize != 5 {
		t.Errorf("max_size = %d, want 5 from .env", cfg.Serve.MaxSize)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{name: "Syntax", file: "strategy = "},
		{name: "UnknownKey", file: "colour = \"red\""},
		{name: "BadStrategy", file: "strategy = \"random\""},
		{name: "NegativeMaxSize", file: "[serve]\nmax_size = -1"},
		{name: "ZeroCache", file: "[serve]\ncount_cache = 0"},
		{name: "BadEnvInt", env: map[string]string{EnvMaxSize: "many"}},
		{name: "BadEnvBool", env: map[string]string{EnvLoopless: "sometimes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeFile(t, tt.file))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
	}
}
