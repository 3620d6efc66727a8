package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/mishiro-goudou-company/ilda"
	"github.com/mishiro-goudou-company/ilda/dac"
)

type fileConfig struct {
	LogLevel     string `toml:"log_level"`
	Strict       bool   `toml:"strict"`
	HeadersOnly  bool   `toml:"headers_only"`
	MaxFrames    int    `toml:"max_frames"`
	DACBits      uint   `toml:"dac_bits"`
	DACMaxPoints int    `toml:"dac_max_points"`
}

type config struct {
	LogLevel    zerolog.Level
	Strict      bool
	HeadersOnly bool
	MaxFrames   int
	DAC         dac.Options
}

func defaultConfig() config {
	return config{
		LogLevel: zerolog.InfoLevel,
		DAC:      dac.DefaultOptions(),
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load ildinfo config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}

	if meta.IsDefined("log_level") {
		lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw.LogLevel)))
		if err != nil {
			return config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = lvl
	}
	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}
	if meta.IsDefined("headers_only") {
		cfg.HeadersOnly = raw.HeadersOnly
	}
	if meta.IsDefined("max_frames") {
		if raw.MaxFrames < 0 {
			return config{}, fmt.Errorf("max_frames must not be negative")
		}
		cfg.MaxFrames = raw.MaxFrames
	}
	if meta.IsDefined("dac_bits") {
		cfg.DAC.Bits = raw.DACBits
	}
	if meta.IsDefined("dac_max_points") {
		cfg.DAC.MaxPoints = raw.DACMaxPoints
	}
	if err := cfg.DAC.Validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) parseOptions(logger *zerolog.Logger) *ilda.ParseOptions {
	opts := &ilda.ParseOptions{
		Mode:      ilda.ParseFull,
		Strict:    c.Strict,
		MaxFrames: c.MaxFrames,
		Logger:    logger,
	}
	if c.HeadersOnly {
		opts.Mode = ilda.ParseHeadersOnly
	}
	return opts
}
