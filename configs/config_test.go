package configs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/briannelson22/openweather/configs"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should fall back to defaults without a .env file", func(t *testing.T) {
		t.Setenv("OPENWEATHER_API_KEY", "")
		t.Setenv("WEB_SERVER_PORT", "")
		cfg, err := configs.LoadConfig(configs.New(), t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.WebServerPort != "3000" {
			t.Errorf("expected 3000, got %s", cfg.WebServerPort)
		}
		if cfg.OpenWeatherUnits != "imperial" {
			t.Errorf("expected imperial, got %s", cfg.OpenWeatherUnits)
		}
		if cfg.OpenWeatherTimeout != 10*time.Second {
			t.Errorf("expected 10s, got %s", cfg.OpenWeatherTimeout)
		}
		if err := cfg.Validate(); err == nil {
			t.Error("expected missing api key error")
		}
	})
	t.Run("should read the .env file", func(t *testing.T) {
		t.Setenv("OPENWEATHER_API_KEY", "")
		t.Setenv("WEB_SERVER_PORT", "")
		t.Setenv("OPENWEATHER_TIMEOUT", "")
		dir := t.TempDir()
		env := "OPENWEATHER_API_KEY=from-file\nWEB_SERVER_PORT=4000\nOPENWEATHER_TIMEOUT=3s\n"
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600); err != nil {
			t.Fatal(err)
		}
		cfg, err := configs.LoadConfig(configs.New(), dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.OpenWeatherAPIKey != "from-file" {
			t.Errorf("expected from-file, got %s", cfg.OpenWeatherAPIKey)
		}
		if cfg.WebServerPort != "4000" {
			t.Errorf("expected 4000, got %s", cfg.WebServerPort)
		}
		if cfg.OpenWeatherTimeout != 3*time.Second {
			t.Errorf("expected 3s, got %s", cfg.OpenWeatherTimeout)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected validation error: %v", err)
		}
	})
	t.Run("should let the environment override the file", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("OPENWEATHER_API_KEY=from-file\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Setenv("OPENWEATHER_API_KEY", "from-env")
		cfg, err := configs.LoadConfig(configs.New(), dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.OpenWeatherAPIKey != "from-env" {
			t.Errorf("expected from-env, got %s", cfg.OpenWeatherAPIKey)
		}
	})
	t.Run("should reject a non-positive timeout", func(t *testing.T) {
		t.Setenv("OPENWEATHER_API_KEY", "key")
		t.Setenv("OPENWEATHER_TIMEOUT", "0s")
		cfg, err := configs.LoadConfig(configs.New(), t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cfg.Validate(); err == nil {
			t.Error("expected timeout error")
		}
	})
}
