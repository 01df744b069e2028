package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitdata/query-data/internal/logger"
)

func newBufferedLogger(t *testing.T, cfg *logger.LoggingConfig) (*logger.CentralLogger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	cl, err := logger.NewCentralLoggerWithWriter(cfg, buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cl.Close() })
	return cl, buf
}

func TestModuleLoggerLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     string
		logFunc   func(l logger.Logger)
		wantLine  bool
		wantLevel string
	}{
		{"debug hidden at info", "info", func(l logger.Logger) { l.Debug("hidden") }, false, ""},
		{"info shown at info", "info", func(l logger.Logger) { l.Info("shown") }, true, "INFO"},
		{"warn shown at info", "info", func(l logger.Logger) { l.Warn("shown") }, true, "WARN"},
		{"info hidden at error", "error", func(l logger.Logger) { l.Info("hidden") }, false, ""},
		{"trace shown at trace", "trace", func(l logger.Logger) { l.Trace("shown") }, true, "TRACE"},
		{"explicit level", "debug", func(l logger.Logger) { l.Log(logger.LogLevelDebug, "shown") }, true, "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cl, buf := newBufferedLogger(t, &logger.LoggingConfig{
				DefaultLevel: tt.level,
				Console:      &logger.ConsoleOutput{Enabled: true, Level: tt.level},
			})

			tt.logFunc(cl.Module("jpl"))

			out := buf.String()
			if !tt.wantLine {
				assert.Empty(t, out)
				return
			}
			assert.Contains(t, out, "level="+tt.wantLevel)
			assert.Contains(t, out, "module=jpl")
			assert.NotContains(t, out, "time=", "console output must not carry timestamps")
		})
	}
}

func TestModuleLevelOverride(t *testing.T) {
	t.Parallel()

	cl, buf := newBufferedLogger(t, &logger.LoggingConfig{
		DefaultLevel: "info",
		Console:      &logger.ConsoleOutput{Enabled: true, Level: "debug"},
		ModuleLevels: map[string]string{"dataset": "debug"},
	})

	cl.Module("jpl").Debug("jpl debug")
	cl.Module("dataset").Debug("dataset debug")

	out := buf.String()
	assert.NotContains(t, out, "jpl debug")
	assert.Contains(t, out, "dataset debug")
}

func TestFieldsAndSubModules(t *testing.T) {
	t.Parallel()

	cl, buf := newBufferedLogger(t, &logger.LoggingConfig{DefaultLevel: "debug"})

	parent := cl.Module("jpl").With(logger.String("service", "horizons"))
	child := parent.Module("sbdb")

	child.Info("query done",
		logger.Int("rows", 42),
		logger.Float64("ratio", 0.123456),
		logger.Bool("complete", true),
		logger.Duration("elapsed", 1500*time.Millisecond),
		logger.Error(errors.New("boom")))

	out := buf.String()
	assert.Contains(t, out, "module=jpl.sbdb")
	assert.Contains(t, out, "service=horizons")
	assert.Contains(t, out, "rows=42")
	assert.Contains(t, out, "ratio=0.123")
	assert.Contains(t, out, "complete=true")
	assert.Contains(t, out, "elapsed=1.5s")
	assert.Contains(t, out, "error=boom")
}

func TestWithContextTraceID(t *testing.T) {
	t.Parallel()

	cl, buf := newBufferedLogger(t, &logger.LoggingConfig{DefaultLevel: "info"})

	ctx := logger.WithTraceID(context.Background(), "run-1")
	cl.Module("cmd").WithContext(ctx).Info("started")

	assert.Contains(t, buf.String(), "trace_id=run-1")
}

func TestFileOutputIsJSON(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "logs", "query_data.log")
	cl, console := newBufferedLogger(t, &logger.LoggingConfig{
		DefaultLevel: "info",
		Timezone:     "UTC",
		Console:      &logger.ConsoleOutput{Enabled: true, Level: "warn"},
		FileOutput:   &logger.FileOutput{Enabled: true, Path: logPath, Level: "info"},
	})

	cl.Module("output").Info("dataset written", logger.String("path", "out.csv"))
	require.NoError(t, cl.Flush())

	assert.Empty(t, console.String(), "info should not reach a warn-level console")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "dataset written", entry["msg"])
	assert.Equal(t, "output", entry["module"])
	assert.Equal(t, "out.csv", entry["path"])
	_, err = time.Parse(time.RFC3339, entry["time"].(string))
	assert.NoError(t, err)
}

func TestNewCentralLoggerRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := logger.NewCentralLogger(nil)
	require.Error(t, err)

	_, err = logger.NewCentralLogger(&logger.LoggingConfig{Timezone: "Mars/Olympus_Mons"})
	require.Error(t, err)
}

func TestNewSlogLogger(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.NewSlogLogger(buf, logger.LogLevelWarn)

	log.Info("quiet")
	log.Warn("loud", logger.Int("count", 3))

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
	assert.Contains(t, out, "count=3")
	assert.NoError(t, log.Flush())
}
