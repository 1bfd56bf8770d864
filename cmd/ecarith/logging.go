package main

import (
	"fmt"

	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log encodings accepted by --log-format.
const (
	formatJSON    = "json"
	formatConsole = "console"
	formatLogfmt  = "logfmt"
)

// newLogger writes entries to w in the given format. Verbose lowers the
// level to debug.
func newLogger(format string, verbose bool, w zapcore.WriteSyncer) (*zap.Logger, error) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch format {
	case formatJSON:
		enc = zapcore.NewJSONEncoder(cfg)
	case formatConsole:
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	case formatLogfmt:
		enc = zaplogfmt.NewEncoder(cfg)
	default:
		return nil, fmt.Errorf("unknown log format %q (have %s, %s, %s)", format, formatJSON, formatConsole, formatLogfmt)
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	return zap.New(zapcore.NewCore(enc, w, level)), nil
}
