// conf/defaults.go default values for settings
package conf

import (
	"time"

	"github.com/spf13/viper"

	"github.com/orbitdata/query-data/internal/logger"
)

// Default values shared with the command-line flags
const (
	DefaultScenario    = "full"
	DefaultEpoch       = 2451544.5 // 2000-01-01 00:00 TDB
	DefaultAngleUnit   = AngleUnitRadians
	DefaultHorizonsURL = "https://ssd.jpl.nasa.gov/api/horizons.api"
	DefaultSBDBURL     = "https://ssd-api.jpl.nasa.gov/sbdb_query.api"
	DefaultRateLimit   = 5.0
	DefaultMaxRetries  = 3
	DefaultRetryDelay  = 500 * time.Millisecond
	DefaultHTTPTimeout = 5 * time.Minute
)

// Angle units accepted by output.angle_unit
const (
	AngleUnitRadians = "rad"
	AngleUnitDegrees = "deg"
)

// setDefaultConfig sets default values for every configuration key.
func setDefaultConfig(v *viper.Viper) {
	v.SetDefault("debug", false)

	v.SetDefault("output.path", "")
	v.SetDefault("output.angle_unit", DefaultAngleUnit)
	v.SetDefault("output.quiet", false)

	v.SetDefault("query.scenario", DefaultScenario)
	v.SetDefault("query.limit", 0)
	v.SetDefault("query.epoch", DefaultEpoch)
	v.SetDefault("query.approximate_mass", true)

	v.SetDefault("jpl.horizons_url", DefaultHorizonsURL)
	v.SetDefault("jpl.sbdb_url", DefaultSBDBURL)
	v.SetDefault("jpl.rate_limit", DefaultRateLimit)

	v.SetDefault("http.timeout", DefaultHTTPTimeout)
	v.SetDefault("http.max_retries", DefaultMaxRetries)
	v.SetDefault("http.retry_delay", DefaultRetryDelay)
	v.SetDefault("http.user_agent", "query_data/1.0")

	v.SetDefault("logging.default_level", logger.DefaultLogLevel)
	v.SetDefault("logging.timezone", "Local")
	v.SetDefault("logging.console.enabled", logger.DefaultConsoleEnabled)
	v.SetDefault("logging.console.level", logger.DefaultLogLevel)
	v.SetDefault("logging.file_output.enabled", logger.DefaultFileEnabled)
	v.SetDefault("logging.file_output.path", logger.DefaultLogPath)
	v.SetDefault("logging.file_output.level", "debug")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.dsn", "")
}
