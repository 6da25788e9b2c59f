package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// config controls how statfmt reads and prints a directory stream.
type config struct {
	Long       bool
	Follow     bool
	Strict     bool
	TimeFormat string

	// polling in follow mode
	PollInterval time.Duration
	PollMax      time.Duration
}

type fileConfig struct {
	Long         bool   `toml:"long"`
	Follow       bool   `toml:"follow"`
	Strict       bool   `toml:"strict"`
	TimeFormat   string `toml:"time_format"`
	PollInterval string `toml:"poll_interval"`
	PollMax      string `toml:"poll_max"`
}

func defaultConfig() config {
	return config{
		TimeFormat:   "Jan _2 15:04",
		PollInterval: 100 * time.Millisecond,
		PollMax:      2 * time.Second,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load statfmt config: %w", err)
	}

	if meta.IsDefined("long") {
		cfg.Long = raw.Long
	}
	if meta.IsDefined("follow") {
		cfg.Follow = raw.Follow
	}
	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}
	if meta.IsDefined("time_format") {
		if layout := strings.TrimSpace(raw.TimeFormat); layout != "" {
			cfg.TimeFormat = layout
		}
	}
	if meta.IsDefined("poll_interval") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.PollInterval))
		if err != nil {
			return config{}, fmt.Errorf("parse poll_interval: %w", err)
		}
		cfg.PollInterval = d
	}
	if meta.IsDefined("poll_max") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.PollMax))
		if err != nil {
			return config{}, fmt.Errorf("parse poll_max: %w", err)
		}
		cfg.PollMax = d
	}
	if cfg.PollMax < cfg.PollInterval {
		return config{}, fmt.Errorf("poll_max %s shorter than poll_interval %s",
			cfg.PollMax, cfg.PollInterval)
	}
	return cfg, nil
}
