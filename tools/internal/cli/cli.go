// Package cli holds the helpers shared by the build tools under tools/.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit reports err on stderr, prefixed with the tool name, and terminates the
// process with a non-zero status.
func Exit(err error) {
	fmt.Fprintf(os.Stderr, "[%s] error: %s\n", filepath.Base(os.Args[0]), err.Error())
	os.Exit(1)
}

// NewLogger returns a console logger for the named tool. Debug messages are
// only emitted when verbose is set.
func NewLogger(tool string, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.CallerKey = ""
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.Named(tool), nil
}

// WriteOutput writes data to the file at path, or to stdout when path is "-".
func WriteOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0644)
}
