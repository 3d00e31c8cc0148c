// Package handlers implements the gcontainer commands.
//
// Handlers receive their inputs through option structs and write to the
// writer they are given, so they can be exercised without a terminal.
package handlers

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/imamik/gcontainer/internal/config"
)

type settingsKey struct{}

// Setup loads the environment settings and attaches them, together with a
// logger, to the returned context.
func Setup(ctx context.Context, verbose bool) (context.Context, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}

	level := settings.LogLevel
	if verbose {
		level = "debug"
	}
	logger, err := newLogger(level)
	if err != nil {
		return nil, err
	}

	ctx = logr.NewContext(ctx, logger)
	return context.WithValue(ctx, settingsKey{}, settings), nil
}

func newLogger(level string) (logr.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return logr.Discard(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	z, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("failed to build logger: %w", err)
	}
	return zapr.NewLogger(z), nil
}

// settingsFrom returns the settings stored by Setup, or the defaults when
// the handler runs without it.
func settingsFrom(ctx context.Context) *config.Settings {
	if s, ok := ctx.Value(settingsKey{}).(*config.Settings); ok {
		return s
	}
	return &config.Settings{LogLevel: "info", Output: "text"}
}
