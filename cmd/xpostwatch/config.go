package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/tinytelemetry/xpostwatch/internal/model"
	"github.com/tinytelemetry/xpostwatch/internal/session"
	"github.com/tinytelemetry/xpostwatch/internal/tui"
)

const (
	envPrefix       = "XPOSTWATCH"
	defaultLogLevel = "info"
)

// appConfig is the runtime configuration of the widget.
type appConfig struct {
	Subject            string        `mapstructure:"subject"`
	Skin               string        `mapstructure:"skin"`
	Clock24h           bool          `mapstructure:"clock-24h"`
	Seed               uint64        `mapstructure:"seed"`
	LogLevel           string        `mapstructure:"log-level"`
	LogFile            string        `mapstructure:"log-file"`
	InitialDelay       time.Duration `mapstructure:"initial-delay"`
	ClockInterval      time.Duration `mapstructure:"clock-interval"`
	GlitchMin          time.Duration `mapstructure:"glitch-min"`
	GlitchMax          time.Duration `mapstructure:"glitch-max"`
	GlitchDuration     time.Duration `mapstructure:"glitch-duration"`
	IncrementInterval  time.Duration `mapstructure:"increment-interval"`
	IncrementThreshold float64       `mapstructure:"increment-threshold"`
	PulseDuration      time.Duration `mapstructure:"pulse-duration"`
	CountMin           int           `mapstructure:"count-min"`
	CountMax           int           `mapstructure:"count-max"`
	TickerMessages     []string      `mapstructure:"ticker-messages"`
	ConfigDir          string        `mapstructure:"-"` // directory holding the config file and skins/
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	defaults := model.DefaultTimings()
	v.SetDefault("subject", model.DefaultSubject)
	v.SetDefault("skin", model.DefaultSkin)
	v.SetDefault("clock-24h", false)
	v.SetDefault("seed", 0)
	v.SetDefault("log-level", defaultLogLevel)
	v.SetDefault("log-file", filepath.Join(home, ".local", "state", "xpostwatch", "xpostwatch.log"))
	v.SetDefault("initial-delay", defaults.InitialDelay)
	v.SetDefault("clock-interval", defaults.ClockInterval)
	v.SetDefault("glitch-min", defaults.GlitchMin)
	v.SetDefault("glitch-max", defaults.GlitchMax)
	v.SetDefault("glitch-duration", defaults.GlitchDuration)
	v.SetDefault("increment-interval", defaults.IncrementInterval)
	v.SetDefault("increment-threshold", defaults.IncrementThreshold)
	v.SetDefault("pulse-duration", defaults.PulseDuration)
	v.SetDefault("count-min", defaults.CountMin)
	v.SetDefault("count-max", defaults.CountMax)
	v.SetDefault("ticker-messages", model.DefaultTickerMessages)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "xpostwatch", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigDir = filepath.Dir(v.ConfigFileUsed())

	if strings.HasPrefix(cfg.LogFile, "~/") {
		cfg.LogFile = filepath.Join(home, cfg.LogFile[2:])
	}
	if err := cfg.timings().Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c appConfig) timings() model.Timings {
	return model.Timings{
		InitialDelay:       c.InitialDelay,
		ClockInterval:      c.ClockInterval,
		GlitchMin:          c.GlitchMin,
		GlitchMax:          c.GlitchMax,
		GlitchDuration:     c.GlitchDuration,
		IncrementInterval:  c.IncrementInterval,
		IncrementThreshold: c.IncrementThreshold,
		PulseDuration:      c.PulseDuration,
		CountMin:           c.CountMin,
		CountMax:           c.CountMax,
	}
}

func (c appConfig) layout() tui.Layout {
	return tui.Layout{
		Subject:        c.Subject,
		TickerMessages: c.TickerMessages,
		Clock24h:       c.Clock24h,
	}
}

// rand returns a seeded source, or nil to let the session seed itself.
func (c appConfig) rand() session.Rand {
	if c.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(c.Seed, c.Seed))
}
