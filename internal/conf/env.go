// env.go - Environment variable configuration and validation
package conf

import (
	"fmt"
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// envBinding holds metadata for environment variable bindings (internal use)
type envBinding struct {
	ConfigKey string             // Viper config key
	EnvVar    string             // Environment variable name
	Validate  func(string) error // Optional validation function
}

// getEnvBindings returns all environment variable bindings with validation
func getEnvBindings() []envBinding {
	return []envBinding{
		{"debug", "QUERY_DATA_DEBUG", validateEnvBool},

		{"output.path", "QUERY_DATA_OUTPUT", nil},
		{"output.angle_unit", "QUERY_DATA_ANGLE_UNIT", validateEnvAngleUnit},
		{"output.quiet", "QUERY_DATA_QUIET", validateEnvBool},

		{"query.scenario", "QUERY_DATA_SCENARIO", nil}, // checked by ValidateSettings
		{"query.limit", "QUERY_DATA_LIMIT", validateEnvNonNegativeInt},
		{"query.epoch", "QUERY_DATA_EPOCH", validateEnvPositiveFloat},
		{"query.approximate_mass", "QUERY_DATA_APPROXIMATE_MASS", validateEnvBool},

		{"jpl.horizons_url", "QUERY_DATA_HORIZONS_URL", validateEnvURL},
		{"jpl.sbdb_url", "QUERY_DATA_SBDB_URL", validateEnvURL},
		{"jpl.rate_limit", "QUERY_DATA_RATE_LIMIT", validateEnvPositiveFloat},

		{"http.timeout", "QUERY_DATA_HTTP_TIMEOUT", validateEnvDuration},
		{"http.max_retries", "QUERY_DATA_MAX_RETRIES", validateEnvNonNegativeInt},
		{"http.retry_delay", "QUERY_DATA_RETRY_DELAY", validateEnvDuration},

		{"logging.default_level", "QUERY_DATA_LOG_LEVEL", validateEnvLogLevel},
		{"logging.file_output.enabled", "QUERY_DATA_LOG_FILE_ENABLED", validateEnvBool},
		{"logging.file_output.path", "QUERY_DATA_LOG_FILE", nil},

		{"telemetry.enabled", "QUERY_DATA_TELEMETRY_ENABLED", validateEnvBool},
		{"telemetry.dsn", "QUERY_DATA_SENTRY_DSN", validateEnvURL},
	}
}

// bindEnvVars sets up environment variable bindings with validation (internal)
func bindEnvVars(v *viper.Viper) error {
	var warnings []string

	for _, binding := range getEnvBindings() {
		if err := v.BindEnv(binding.ConfigKey, binding.EnvVar); err != nil {
			warnings = append(warnings, fmt.Sprintf("Failed to bind %s: %v", binding.EnvVar, err))
			continue
		}

		if binding.Validate == nil {
			continue
		}
		if envValue := os.Getenv(binding.EnvVar); envValue != "" {
			if err := binding.Validate(envValue); err != nil {
				warnings = append(warnings, fmt.Sprintf("Invalid %s value '%s': %v", binding.EnvVar, envValue, err))
			}
		}
	}

	if len(warnings) > 0 {
		return fmt.Errorf("environment variable issues:\n  - %s", strings.Join(warnings, "\n  - "))
	}

	return nil
}

func validateEnvBool(value string) error {
	if _, err := strconv.ParseBool(value); err != nil {
		return fmt.Errorf("invalid boolean value '%s': must be true/false, 1/0, t/f", value)
	}
	return nil
}

func validateEnvNonNegativeInt(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid integer: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("must be non-negative, got %d", n)
	}
	return nil
}

func validateEnvPositiveFloat(value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid number: %w", err)
	}
	if f <= 0 {
		return fmt.Errorf("must be positive, got %g", f)
	}
	return nil
}

func validateEnvDuration(value string) error {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("must not be negative, got %s", d)
	}
	return nil
}

func validateEnvAngleUnit(value string) error {
	if value != AngleUnitRadians && value != AngleUnitDegrees {
		return fmt.Errorf("must be one of: %s, %s", AngleUnitRadians, AngleUnitDegrees)
	}
	return nil
}

func validateEnvLogLevel(value string) error {
	validLevels := []string{"trace", "debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, strings.ToLower(value)) {
		return fmt.Errorf("must be one of: %s", strings.Join(validLevels, ", "))
	}
	return nil
}

func validateEnvURL(value string) error {
	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL must include a host")
	}
	return nil
}
