// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/copurchase/internal/config"
)

// newLogger builds the CLI logger. "auto" picks the console encoder when
// stderr is a terminal and JSON otherwise.
func newLogger(lc config.Log) (*zap.Logger, error) {
	format := lc.Format
	if format == "" || format == "auto" {
		format = "json"
		if fd := os.Stderr.Fd(); isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			format = "console"
		}
	}

	var zc zap.Config
	switch format {
	case "console":
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json":
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return nil, fmt.Errorf("newLogger: unknown format %q", lc.Format)
	}
	level := zapcore.InfoLevel
	if lc.Verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
