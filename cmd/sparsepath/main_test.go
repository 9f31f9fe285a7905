package main

import (
	"context"
	"flag"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsepath/internal/config"
)

func TestApplyFlags_OnlySetFlagsOverride(t *testing.T) {
	seed := int64(3)
	cfg := config.Default()
	cfg.Probability = 40
	cfg.Seed = &seed

	require.NoError(t, flag.Set("nodes", "12"))
	require.NoError(t, flag.Set("heap", "true"))
	require.NoError(t, flag.Set("print", "false"))
	applyFlags(cfg)

	assert.Equal(t, 12, cfg.Nodes)
	assert.Equal(t, "heap", cfg.Frontier)
	require.NotNil(t, cfg.PrintGraph)
	assert.False(t, *cfg.PrintGraph)

	// Untouched flags leave the config alone.
	assert.Equal(t, 40, cfg.Probability)
	assert.Equal(t, int64(3), *cfg.Seed)
	assert.Empty(t, cfg.Metrics.Addr)
	require.NoError(t, cfg.Validate())
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "warn"

	logger, err := newLogger(cfg)
	require.NoError(t, err)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))

	cfg.Log.JSON = true
	cfg.Log.Level = "debug"
	logger, err = newLogger(cfg)
	require.NoError(t, err)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	cfg.Log.Level = "chatty"
	_, err = newLogger(cfg)
	require.ErrorIs(t, err, config.ErrInvalid)
}
