// Package config loads picker settings from .roundtrip.yaml and ROUNDTRIP_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/roundtrip/pkg/dates"
)

const (
	keyMonths   = "months"
	keyToday    = "today"
	keyLogLevel = "log-level"
	keyColor    = "color"
)

// Config holds resolved settings.
type Config struct {
	// Months is how many months the calendar shows side by side.
	Months int
	// Today pins the picker clock to a fixed day. Zero means the real clock.
	Today dates.Date
	// LogLevel is the minimum level written to stderr.
	LogLevel slog.Level
	// Color enables colored output.
	Color bool
}

// Now returns the configured clock.
func (c Config) Now() func() time.Time {
	if c.Today.IsZero() {
		return time.Now
	}
	pinned := time.Date(c.Today.Year, c.Today.Month, c.Today.Day, 12, 0, 0, 0, time.Local)
	return func() time.Time { return pinned }
}

// Logger builds a text logger on stderr at the configured level.
func (c Config) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel}))
}

// Load reads the config file (if any) and the environment using v. A nil v
// uses a fresh viper instance.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	v.SetDefault(keyMonths, 2)
	v.SetDefault(keyToday, "")
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyColor, true)

	v.SetConfigName(".roundtrip") // .yaml is implicit
	v.SetEnvPrefix("ROUNDTRIP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("ROUNDTRIP_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Months: v.GetInt(keyMonths),
		Color:  v.GetBool(keyColor),
	}
	if cfg.Months < 1 {
		return Config{}, fmt.Errorf("config: months must be at least 1, got %d", cfg.Months)
	}

	if raw := strings.TrimSpace(v.GetString(keyToday)); raw != "" {
		today, err := dates.Parse(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config: today: %w", err)
		}
		cfg.Today = today
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("config: log-level: %w", err)
	}
	return cfg, nil
}
