package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const DefaultLanguageCode = "en"

type Config struct {
	Rates    Rates    `yaml:"rates"`
	Refresh  Refresh  `yaml:"refresh"`
	Telegram Telegram `yaml:"telegram"`
	HTTP     HTTP     `yaml:"http"`
	Logger   Logger   `yaml:"logger"`
}

type Rates struct {
	URL     string        `env:"RATES_URL" env-default:"https://api.exchangerate.host/latest" yaml:"url"`
	Base    string        `env:"RATES_BASE" env-default:"XAU" yaml:"base"`
	Symbol  string        `env:"RATES_SYMBOL" env-default:"BHD" yaml:"symbol"`
	Timeout time.Duration `env:"RATES_TIMEOUT" env-default:"30s" yaml:"timeout"`
}

type Refresh struct {
	Interval time.Duration `env:"REFRESH_INTERVAL" env-default:"60s" yaml:"interval"`
	// UTCOffset is the display timezone offset in hours, Asia/Bahrain by default.
	UTCOffset int `env:"REFRESH_UTC_OFFSET" env-default:"3" yaml:"utc-offset"`
}

// Location returns the timezone prices are displayed in.
func (r *Refresh) Location() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", r.UTCOffset), r.UTCOffset*3600)
}

type Telegram struct {
	Token   string        `env:"TELEGRAM_TOKEN" env-default:"" yaml:"token"`
	Timeout time.Duration `env:"TELEGRAM_TIMEOUT" env-default:"1m" yaml:"timeout"`
}

type HTTP struct {
	Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
}

type Logger struct {
	Level           string     `env:"LOGGER_LEVEL" env-default:"info" yaml:"level"`
	ParsedSlogLevel slog.Level `yaml:"-"`
}

// Load reads config from a file, falling back to the environment when the file does not exist.
func Load(configPath string) (*Config, error) {
	cnf := &Config{}

	_, err := os.Stat(configPath)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(configPath, cnf)
	case errors.Is(err, os.ErrNotExist):
		err = cleanenv.ReadEnv(cnf)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	switch cnf.Logger.Level {
	case "debug":
		cnf.Logger.ParsedSlogLevel = slog.LevelDebug
	case "info":
		cnf.Logger.ParsedSlogLevel = slog.LevelInfo
	case "warn":
		cnf.Logger.ParsedSlogLevel = slog.LevelWarn
	case "error":
		cnf.Logger.ParsedSlogLevel = slog.LevelError
	default:
		cnf.Logger.ParsedSlogLevel = slog.LevelInfo
	}

	return cnf, nil
}

// MustLoad loads config from a file.
func MustLoad(configPath string) *Config {
	cnf, err := Load(configPath)
	if err != nil {
		panic(err)
	}

	return cnf
}
