package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/forcelayout/logger"
)

func TestNewTo_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewTo(&buf, "info", logger.FormatJSON)
	require.NoError(t, err)

	log.Named("simulation").Infow("rest reached", "tick", 42)
	log.Debugw("hidden")
	require.NoError(t, log.Sync())

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "rest reached", rec["msg"])
	assert.Equal(t, "simulation", rec["logger"])
	assert.EqualValues(t, 42, rec["tick"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewTo_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewTo(&buf, "DEBUG", "")
	require.NoError(t, err)
	log.Debugw("reheat", "alpha", 0.1)
	assert.Contains(t, buf.String(), "reheat")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestNewTo_Errors(t *testing.T) {
	_, err := logger.NewTo(&bytes.Buffer{}, "loud", logger.FormatJSON)
	assert.Error(t, err)

	_, err = logger.NewTo(&bytes.Buffer{}, "info", "xml")
	assert.True(t, errors.Is(err, logger.ErrUnknownFormat))
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { logger.Nop().Warnw("dropped", "n", 1) })
}
