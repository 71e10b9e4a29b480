package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Theme              string        `toml:"theme"`
	SuccessInterval    time.Duration `toml:"-"`
	SuccessIntervalStr string        `toml:"success_interval"`
	FailureInterval    time.Duration `toml:"-"`
	FailureIntervalStr string        `toml:"failure_interval"`
	BackoffCap         time.Duration `toml:"-"`
	BackoffCapStr      string        `toml:"backoff_cap"`
	ProbeTimeout       time.Duration `toml:"-"`
	ProbeTimeoutStr    string        `toml:"probe_timeout"`
	Privileged         bool          `toml:"privileged"`
	MaxHistory         int           `toml:"max_history"`
	TrackLoss          bool          `toml:"track_loss"`
	AutoScale          bool          `toml:"auto_scale"`
	ManualMax          float64       `toml:"manual_max"`
	LogLevel           string        `toml:"log_level"`
}

const (
	MinProbeTimeout = 100 * time.Millisecond
	MaxProbeTimeout = 10 * time.Second
)

func DefaultConfig() *Config {
	return &Config{
		Theme:              "solarized-dark",
		SuccessInterval:    time.Second,
		SuccessIntervalStr: "1s",
		FailureInterval:    2 * time.Second,
		FailureIntervalStr: "2s",
		BackoffCap:         2 * time.Second,
		BackoffCapStr:      "2s",
		ProbeTimeout:       2 * time.Second,
		ProbeTimeoutStr:    "2s",
		MaxHistory:         0,
		TrackLoss:          true,
		AutoScale:          true,
		ManualMax:          100,
		LogLevel:           "info",
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.SuccessInterval = parseDuration(cfg.SuccessIntervalStr, cfg.SuccessInterval)
	cfg.FailureInterval = parseDuration(cfg.FailureIntervalStr, cfg.FailureInterval)
	cfg.BackoffCap = parseDuration(cfg.BackoffCapStr, cfg.BackoffCap)
	cfg.ProbeTimeout = parseDuration(cfg.ProbeTimeoutStr, cfg.ProbeTimeout)
	cfg.normalize()
	return cfg, nil
}

func SaveConfig(cfg *Config, path string) error {
	cfg.normalize()
	cfg.SuccessIntervalStr = cfg.SuccessInterval.String()
	cfg.FailureIntervalStr = cfg.FailureInterval.String()
	cfg.BackoffCapStr = cfg.BackoffCap.String()
	cfg.ProbeTimeoutStr = cfg.ProbeTimeout.String()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// normalize keeps the pacing ordering and clamps out-of-range values.
func (c *Config) normalize() {
	if c.SuccessInterval <= 0 {
		c.SuccessInterval = time.Second
	}
	if c.FailureInterval < c.SuccessInterval {
		c.FailureInterval = c.SuccessInterval
	}
	if c.BackoffCap < c.FailureInterval {
		c.BackoffCap = c.FailureInterval
	}
	switch {
	case c.ProbeTimeout < MinProbeTimeout:
		c.ProbeTimeout = MinProbeTimeout
	case c.ProbeTimeout > MaxProbeTimeout:
		c.ProbeTimeout = MaxProbeTimeout
	}
	if c.MaxHistory < 0 {
		c.MaxHistory = 0
	}
	switch {
	case c.ManualMax < 10:
		c.ManualMax = 10
	case c.ManualMax > 2000:
		c.ManualMax = 2000
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// parseDuration returns fallback when s is empty or malformed.
func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
