package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultLogDir  = "logs"
	DefaultLogFile = "logs/console.log"

	fileBufferSize    = 32 * 1024
	consoleBufferSize = 1000
)

var ErrInvalidLogPath = errors.New("log file must live under the logs directory")

type Config struct {
	// Level is the logrus level name. Falls back to LOG_LEVEL, then info.
	Level string
	// File is the path of the JSON log file. Empty disables file output.
	File    string
	Console bool
}

func DefaultConfig() Config {
	return Config{
		File:    DefaultLogFile,
		Console: true,
	}
}

// Closer flushes and releases the writers attached by NewLogger.
type Closer func()

func NewLogger(cfg Config) (*logrus.Logger, Closer, error) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(ParseLevel(cfg.Level))

	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.File == "" {
		logger.SetOutput(io.Discard)
	} else {
		logFile, err := sanitizePath(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(logFile), 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
		}
		asyncWriter, err := NewAsyncFileWriter(logFile, fileBufferSize)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
		}
		logger.SetOutput(asyncWriter)
		closers = append(closers, asyncWriter.Close)
	}

	if cfg.Console {
		hook := NewConsoleHook(os.Stdout, consoleBufferSize)
		logger.AddHook(hook)
		closers = append(closers, hook.Close)
	}

	return logger, closeAll, nil
}

// ParseLevel resolves the configured level, then LOG_LEVEL. Unknown names
// mean info.
func ParseLevel(name string) logrus.Level {
	if name == "" {
		name = os.Getenv("LOG_LEVEL")
	}
	level, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func sanitizePath(path string) (string, error) {
	clean := filepath.Clean(path)
	if filepath.IsAbs(clean) || !strings.HasPrefix(clean, DefaultLogDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidLogPath, path)
	}
	return clean, nil
}
