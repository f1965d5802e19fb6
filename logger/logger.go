// SPDX-License-Identifier: MIT

// Package logger builds the zap loggers used by forcelayout components.
//
// Library packages never log through a global: they take a
// *zap.SugaredLogger through an option and default to Nop(). Only the
// command-line harness calls New.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrUnknownFormat indicates a format other than FormatConsole or FormatJSON.
var ErrUnknownFormat = errors.New("logger: unknown format")

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// New returns a logger writing to stderr at the given level ("debug",
// "info", "warn", "error").
func New(level, format string) (*zap.SugaredLogger, error) {
	return NewTo(os.Stderr, level, format)
}

// NewTo is New with an explicit destination.
func NewTo(w io.Writer, level, format string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, errors.Wrapf(err, "logger: level %q", level)
	}

	var enc zapcore.Encoder
	switch strings.ToLower(format) {
	case "", FormatConsole:
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		enc = zapcore.NewConsoleEncoder(cfg)
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	return zap.New(core).Sugar(), nil
}
