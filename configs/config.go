package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Cfg struct {
	OpenWeatherAPIKey  string        `mapstructure:"OPENWEATHER_API_KEY"`
	OpenWeatherBaseURL string        `mapstructure:"OPENWEATHER_BASE_URL"`
	OpenWeatherUnits   string        `mapstructure:"OPENWEATHER_UNITS"`
	OpenWeatherTimeout time.Duration `mapstructure:"OPENWEATHER_TIMEOUT"`
	WebServerPort      string        `mapstructure:"WEB_SERVER_PORT"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	LogFormat          string        `mapstructure:"LOG_FORMAT"`
	ZipkinEndpoint     string        `mapstructure:"ZIPKIN_ENDPOINT"`
	ServiceName        string        `mapstructure:"SERVICE_NAME"`
}

var defaults = map[string]any{
	"OPENWEATHER_API_KEY":  "",
	"OPENWEATHER_BASE_URL": "https://api.openweathermap.org/data/2.5/onecall",
	"OPENWEATHER_UNITS":    "imperial",
	"OPENWEATHER_TIMEOUT":  "10s",
	"WEB_SERVER_PORT":      "3000",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "text",
	"ZIPKIN_ENDPOINT":      "",
	"SERVICE_NAME":         "weather-report",
}

// New returns a viper instance seeded with defaults and bound to the
// environment. Callers may bind flags on it before LoadConfig.
func New() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

// LoadConfig reads an optional .env file in path, then lets the environment
// and any bound flags override it.
func LoadConfig(v *viper.Viper, path string) (*Cfg, error) {
	v.SetConfigType("env")
	v.SetConfigFile(filepath.Join(path, ".env"))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading .env: %w", err)
		}
	}

	var cfg Cfg
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

func (c *Cfg) Validate() error {
	if c.OpenWeatherAPIKey == "" {
		return errors.New("OPENWEATHER_API_KEY is required")
	}
	if c.OpenWeatherTimeout <= 0 {
		return fmt.Errorf("OPENWEATHER_TIMEOUT must be positive, got %s", c.OpenWeatherTimeout)
	}
	return nil
}
