package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/PolyglAI/PolyglAI/pkg/infra/logger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestParseLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, logrus.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, logrus.DebugLevel, logger.ParseLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, logger.ParseLevel("warn"))
	assert.Equal(t, logrus.InfoLevel, logger.ParseLevel("verbose"))

	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, logrus.DebugLevel, logger.ParseLevel(""))
	assert.Equal(t, logrus.ErrorLevel, logger.ParseLevel("error"))
}

func TestNewLogger_RejectsPathOutsideLogs(t *testing.T) {
	for _, path := range []string{"/tmp/x.log", "../x.log", "logs/../x.log", "other/x.log"} {
		_, _, err := logger.NewLogger(logger.Config{File: path})
		assert.ErrorIs(t, err, logger.ErrInvalidLogPath, "path %q", path)
	}
}

func TestNewLogger_WritesJSONToFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	log, closeLogger, err := logger.NewLogger(logger.Config{File: "logs/test.log", Level: "info"})
	require.NoError(t, err)

	log.WithField("category", "violence").Warn("inappropriate content detected")
	log.Debug("hidden")
	closeLogger()

	data, err := os.ReadFile(filepath.Join(dir, "logs", "test.log"))
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "inappropriate content detected", entry["msg"])
	assert.Equal(t, "violence", entry["category"])
	assert.Equal(t, "warning", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestConsoleHook_MirrorsEntries(t *testing.T) {
	out := &syncBuffer{}
	hook := logger.NewConsoleHook(out, 10)

	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	log.SetFormatter(&logrus.JSONFormatter{})
	log.AddHook(hook)

	log.Info("first")
	log.Error("second")
	hook.Close()

	assert.Contains(t, out.String(), `"msg":"first"`)
	assert.Contains(t, out.String(), `"msg":"second"`)

	log.Info("after close")
	assert.NotContains(t, out.String(), "after close")
}

func TestAsyncFileWriter_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "writer.log")
	w, err := logger.NewAsyncFileWriter(path, 1024)
	require.NoError(t, err)

	n, err := w.Write([]byte("line\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	w.Close()
	w.Close()

	_, err = w.Write([]byte("late\n"))
	assert.ErrorIs(t, err, os.ErrClosed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))
}
