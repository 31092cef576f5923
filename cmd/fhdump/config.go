package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"

	"woland.xyz/osfile"
)

const (
	backendOS    = "os"
	backendBilly = "billy"

	formatConsole = "console"
	formatJSON    = "json"
)

// Config is read from the environment.
type Config struct {
	LogLevel  string `env:"FHDUMP_LOG_LEVEL" env-default:"info" env-description:"zerolog level"`
	LogFormat string `env:"FHDUMP_LOG_FORMAT" env-default:"console" env-description:"console or json"`
	Backend   string `env:"FHDUMP_BACKEND" env-default:"os" env-description:"os or billy"`
	Root      string `env:"FHDUMP_ROOT" env-default:"/" env-description:"root directory of the billy backend"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}
	cfg.Backend = strings.ToLower(cfg.Backend)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.Backend {
	case backendOS, backendBilly:
	default:
		return cfg, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	switch cfg.LogFormat {
	case formatConsole, formatJSON:
	default:
		return cfg, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
	return cfg, nil
}

func (c Config) logger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	if c.LogFormat == formatConsole {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

func (c Config) openOptions() []osfile.Opt {
	if c.Backend == backendBilly {
		return []osfile.Opt{osfile.WithFS(osfile.NewOSFS(c.Root))}
	}
	return nil
}
