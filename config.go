package mactok

import (
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogLevel = "info"

// ParamsConfig selects the group parameters.
type ParamsConfig struct {
	// Label derives alternate parameters; empty selects DefaultParams.
	Label string `toml:"label"`
}

// LogConfig is the logging configuration.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level"`
	// Development switches to zap's human readable development encoder.
	Development bool `toml:"development"`
}

// Config is the top level configuration of an issuer or client process.
type Config struct {
	Group  ParamsConfig `toml:"params"`
	Log    LogConfig    `toml:"log"`
}

func (cfg *Config) validateAndApplyDefaults() error {
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	if _, err := parseLogLevel(cfg.Log.Level); err != nil {
		return err
	}
	return nil
}

func parseLogLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, errors.Errorf("config: invalid log level %q", level)
}

// ParseConfig parses and validates a TOML document.
func ParseConfig(text string) (*Config, error) {
	cfg := new(Config)
	if _, err := toml.Decode(text, cfg); err != nil {
		return nil, errors.Wrap(err, "config: decode")
	}
	if err := cfg.validateAndApplyDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig loads, parses and validates the provided file.
func LoadConfig(path string) (*Config, error) {
	b, err := ioutil.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}
	return ParseConfig(string(b))
}

func (cfg *Config) Params() *Params {
	return NewParams(cfg.Group.Label)
}

func (cfg *Config) NewLogger() (*zap.SugaredLogger, error) {
	level, err := parseLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logConfig := zap.NewProductionConfig()
	if cfg.Log.Development {
		logConfig = zap.NewDevelopmentConfig()
	}
	logConfig.Level = zap.NewAtomicLevelAt(level)
	logger, err := logConfig.Build()
	if err != nil {
		return nil, errors.Wrap(err, "config: build logger")
	}
	return logger.Sugar(), nil
}
