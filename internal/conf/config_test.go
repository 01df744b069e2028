package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitdata/query-data/internal/errors"
	"github.com/orbitdata/query-data/internal/logger"
)

// isolateViper gives a test a clean viper instance and an empty working
// directory and home so no real configuration leaks in.
func isolateViper(t *testing.T) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	isolateViper(t)
	t.Setenv("QUERY_DATA_OUTPUT", "bodies.csv")

	settings, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "bodies.csv", settings.Output.Path)
	assert.Equal(t, AngleUnitRadians, settings.Output.AngleUnit)
	assert.Equal(t, DefaultScenario, settings.Query.Scenario)
	assert.InDelta(t, DefaultEpoch, settings.Query.Epoch, 0)
	assert.True(t, settings.Query.ApproximateMass)
	assert.Equal(t, DefaultHorizonsURL, settings.JPL.HorizonsURL)
	assert.Equal(t, DefaultSBDBURL, settings.JPL.SBDBURL)
	assert.Equal(t, DefaultHTTPTimeout, settings.HTTP.Timeout)
	assert.Equal(t, DefaultRetryDelay, settings.HTTP.RetryDelay)
	assert.False(t, settings.Telemetry.Enabled)
	assert.Same(t, settings, GetSettings())
}

func TestLoad_ConfigFileSearchPath(t *testing.T) {
	dir := isolateViper(t)
	writeFile(t, filepath.Join(dir, "xdg", "query_data", "query_data.yaml"), `
output:
  path: /tmp/out.csv
  angle_unit: deg
query:
  scenario: scenario2
  limit: 500
http:
  retry_delay: 2s
`)

	settings, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/out.csv", settings.Output.Path)
	assert.Equal(t, AngleUnitDegrees, settings.Output.AngleUnit)
	assert.Equal(t, "scenario2", settings.Query.Scenario)
	assert.Equal(t, 500, settings.Query.Limit)
	assert.Equal(t, 2*time.Second, settings.HTTP.RetryDelay)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := isolateViper(t)
	configPath := filepath.Join(dir, "custom.yaml")
	writeFile(t, configPath, "output:\n  path: from-file.csv\njpl:\n  rate_limit: 2\n")
	t.Setenv("QUERY_DATA_RATE_LIMIT", "7.5")

	settings, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "from-file.csv", settings.Output.Path)
	assert.InDelta(t, 7.5, settings.JPL.RateLimit, 0)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolateViper(t)
	writeFile(t, filepath.Join(dir, ".env"), "QUERY_DATA_OUTPUT=dotenv.csv\n")
	t.Cleanup(func() { _ = os.Unsetenv("QUERY_DATA_OUTPUT") })

	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dotenv.csv", settings.Output.Path)
}

func TestLoad_DebugRaisesLogLevel(t *testing.T) {
	isolateViper(t)
	t.Setenv("QUERY_DATA_OUTPUT", "bodies.csv")
	t.Setenv("QUERY_DATA_DEBUG", "true")

	settings, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, string(logger.LogLevelDebug), settings.Logging.DefaultLevel)
	require.NotNil(t, settings.Logging.Console)
	assert.Equal(t, string(logger.LogLevelDebug), settings.Logging.Console.Level)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		file      string
		wantMsg   string
		wantCateg errors.ErrorCategory
	}{
		{
			name:      "missing output path",
			wantMsg:   "output path is required",
			wantCateg: errors.CategoryValidation,
		},
		{
			name:      "invalid environment value",
			env:       map[string]string{"QUERY_DATA_OUTPUT": "x.csv", "QUERY_DATA_MAX_RETRIES": "-1"},
			wantMsg:   "QUERY_DATA_MAX_RETRIES",
			wantCateg: errors.CategoryConfiguration,
		},
		{
			name:      "explicit config file missing",
			env:       map[string]string{"QUERY_DATA_OUTPUT": "x.csv"},
			file:      "does-not-exist.yaml",
			wantMsg:   "error reading config file",
			wantCateg: errors.CategoryConfiguration,
		},
		{
			name:      "limit without scenario2",
			env:       map[string]string{"QUERY_DATA_OUTPUT": "x.csv", "QUERY_DATA_LIMIT": "300"},
			wantMsg:   "limit may only be used with scenario scenario2",
			wantCateg: errors.CategoryValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolateViper(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			configFile := ""
			if tt.file != "" {
				configFile = filepath.Join(dir, tt.file)
			}

			_, err := Load(configFile)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			var enhanced *errors.EnhancedError
			require.ErrorAs(t, err, &enhanced)
			assert.Equal(t, string(tt.wantCateg), enhanced.GetCategory())
		})
	}
}

func TestGetDefaultConfigPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	paths := GetDefaultConfigPaths()
	assert.Equal(t, []string{".", filepath.Join("/xdg", "query_data"), filepath.Join(home, ".config", "query_data")}, paths)
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	assert.Empty(t, settings.Output.Path)
	assert.Equal(t, DefaultScenario, settings.Query.Scenario)
	assert.Equal(t, DefaultMaxRetries, settings.HTTP.MaxRetries)
	assert.InDelta(t, DefaultRateLimit, settings.JPL.RateLimit, 0)
	require.NotNil(t, settings.Logging.Console)
	assert.Equal(t, logger.DefaultConsoleEnabled, settings.Logging.Console.Enabled)
}
