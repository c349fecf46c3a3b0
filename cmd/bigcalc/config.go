package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the calculator settings read from the environment.
type Config struct {
	Mode     string `env:"BIGCALC_MODE"      env-default:"int"`
	LogLevel string `env:"BIGCALC_LOG_LEVEL" env-default:"info"`
	Prompt   string `env:"BIGCALC_PROMPT"    env-default:""`
}

// readConfig loads envFile into the environment, if the file exists,
// and fills Config from the environment.
// Variables that are already set take precedence over the file.
func readConfig(envFile string) (*Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %v: %w", envFile, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return &cfg, nil
}

// newLogger returns a development-style console logger writing to w.
func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}
