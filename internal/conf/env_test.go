package conf

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvValidators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		validate func(string) error
		value    string
		wantErr  bool
	}{
		{"bool true", validateEnvBool, "true", false},
		{"bool numeric", validateEnvBool, "0", false},
		{"bool invalid", validateEnvBool, "yes please", true},
		{"int zero", validateEnvNonNegativeInt, "0", false},
		{"int negative", validateEnvNonNegativeInt, "-3", true},
		{"int garbage", validateEnvNonNegativeInt, "three", true},
		{"float positive", validateEnvPositiveFloat, "2451544.5", false},
		{"float zero", validateEnvPositiveFloat, "0", true},
		{"duration", validateEnvDuration, "250ms", false},
		{"duration negative", validateEnvDuration, "-1s", true},
		{"duration bare number", validateEnvDuration, "5", true},
		{"angle rad", validateEnvAngleUnit, "rad", false},
		{"angle deg", validateEnvAngleUnit, "deg", false},
		{"angle grad", validateEnvAngleUnit, "grad", true},
		{"log level mixed case", validateEnvLogLevel, "DEBUG", false},
		{"log level unknown", validateEnvLogLevel, "verbose", true},
		{"url https", validateEnvURL, "https://ssd.jpl.nasa.gov/api/horizons.api", false},
		{"url ftp", validateEnvURL, "ftp://ssd.jpl.nasa.gov", true},
		{"url without host", validateEnvURL, "https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBindEnvVars(t *testing.T) {
	t.Setenv("QUERY_DATA_SCENARIO", "scenario1")
	t.Setenv("QUERY_DATA_HTTP_TIMEOUT", "30s")

	v := viper.New()
	require.NoError(t, bindEnvVars(v))
	assert.Equal(t, "scenario1", v.GetString("query.scenario"))
	assert.Equal(t, "30s", v.GetString("http.timeout"))
}

func TestBindEnvVars_CollectsEveryProblem(t *testing.T) {
	t.Setenv("QUERY_DATA_QUIET", "maybe")
	t.Setenv("QUERY_DATA_SBDB_URL", "not a url")

	err := bindEnvVars(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUERY_DATA_QUIET")
	assert.Contains(t, err.Error(), "QUERY_DATA_SBDB_URL")
}

func TestEnvBindingsCoverDefaults(t *testing.T) {
	t.Parallel()

	v := viper.New()
	setDefaultConfig(v)
	for _, binding := range getEnvBindings() {
		assert.True(t, v.IsSet(binding.ConfigKey), "%s binds unknown key %s", binding.EnvVar, binding.ConfigKey)
	}
}
