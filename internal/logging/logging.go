// Package logging builds the zap logger used for --debug tracing. Diagnostics
// are protocol output and never pass through the logger.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for structured log entries.
const (
	FieldFile       = "file"
	FieldSchema     = "schema"
	FieldStrictness = "strictness"
	FieldCount      = "count"
	FieldStep       = "step"
	FieldPath       = "path"
)

// New returns a console logger writing to w at debug level when debug is set,
// and a no-op logger otherwise.
func New(debug bool, w io.Writer) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core).Named("artifactcheck")
}
