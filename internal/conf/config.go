// Package conf provides configuration management for query_data.
package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/orbitdata/query-data/internal/errors"
	"github.com/orbitdata/query-data/internal/logger"
)

// ConfigName is the base name of the configuration file searched for in the config paths
const ConfigName = "query_data"

// OutputSettings controls where and how the dataset is written
type OutputSettings struct {
	Path      string `yaml:"path" mapstructure:"path"`             // destination CSV file
	AngleUnit string `yaml:"angle_unit" mapstructure:"angle_unit"` // rad or deg
	Quiet     bool   `yaml:"quiet" mapstructure:"quiet"`           // suppress the statistics table
}

// QuerySettings selects which bodies end up in the dataset
type QuerySettings struct {
	Scenario        string  `yaml:"scenario" mapstructure:"scenario"`
	Limit           int     `yaml:"limit" mapstructure:"limit"`                       // total body count including the Sun, scenario2 only
	Epoch           float64 `yaml:"epoch" mapstructure:"epoch"`                       // Julian Date of the osculating elements
	ApproximateMass bool    `yaml:"approximate_mass" mapstructure:"approximate_mass"` // estimate missing masses from size
}

// JPLSettings holds the remote service endpoints
type JPLSettings struct {
	HorizonsURL string  `yaml:"horizons_url" mapstructure:"horizons_url"`
	SBDBURL     string  `yaml:"sbdb_url" mapstructure:"sbdb_url"`
	RateLimit   float64 `yaml:"rate_limit" mapstructure:"rate_limit"` // Horizons requests per second
}

// HTTPSettings tunes the shared HTTP client
type HTTPSettings struct {
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxRetries int           `yaml:"max_retries" mapstructure:"max_retries"`
	RetryDelay time.Duration `yaml:"retry_delay" mapstructure:"retry_delay"`
	UserAgent  string        `yaml:"user_agent" mapstructure:"user_agent"`
}

// TelemetrySettings enables optional Sentry error reporting
type TelemetrySettings struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	DSN     string `yaml:"dsn" mapstructure:"dsn"`
}

// Settings contains all configuration options for query_data
type Settings struct {
	Debug     bool                 `yaml:"debug" mapstructure:"debug"`
	Output    OutputSettings       `yaml:"output" mapstructure:"output"`
	Query     QuerySettings        `yaml:"query" mapstructure:"query"`
	JPL       JPLSettings          `yaml:"jpl" mapstructure:"jpl"`
	HTTP      HTTPSettings         `yaml:"http" mapstructure:"http"`
	Logging   logger.LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Telemetry TelemetrySettings    `yaml:"telemetry" mapstructure:"telemetry"`
}

var (
	settingsInstance *Settings
	settingsMutex    sync.RWMutex
)

// Load reads the configuration file, .env file and environment variables into
// Settings and validates the result. configFile may be empty, in which case
// the default config paths are searched and a missing file is not an error.
func Load(configFile string) (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	if err := initViper(viper.GetViper(), configFile); err != nil {
		return nil, err
	}

	settings := &Settings{}
	if err := viper.Unmarshal(settings); err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryConfiguration).
			Context("operation", "unmarshal_config").
			Build()
	}

	if settings.Debug {
		settings.Logging.DefaultLevel = string(logger.LogLevelDebug)
		if settings.Logging.Console != nil {
			settings.Logging.Console.Level = string(logger.LogLevelDebug)
		}
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, err
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// initViper applies defaults, environment bindings and the config file to v
func initViper(v *viper.Viper, configFile string) error {
	// A missing .env is normal; only malformed files are reported.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		GetLogger().Warn("Failed to load .env file", logger.Error(err))
	}

	setDefaultConfig(v)

	if err := bindEnvVars(v); err != nil {
		return errors.New(err).
			Category(errors.CategoryConfiguration).
			Context("operation", "bind_env").
			Build()
	}

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		for _, path := range GetDefaultConfigPaths() {
			v.AddConfigPath(path)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			GetLogger().Debug("No config file found, using defaults and flags")
			return nil
		}
		return errors.New(fmt.Errorf("error reading config file: %w", err)).
			Category(errors.CategoryConfiguration).
			FileContext(configFile).
			Build()
	}

	GetLogger().Debug("Loaded config file", logger.String("path", v.ConfigFileUsed()))
	return nil
}

// GetDefaultConfigPaths returns the directories searched for query_data.yaml,
// in priority order.
func GetDefaultConfigPaths() []string {
	paths := []string{"."}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "query_data"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "query_data"))
	}

	return paths
}

// GetSettings returns the settings loaded by the last successful Load
func GetSettings() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}

// DefaultSettings returns Settings populated only from built-in defaults
func DefaultSettings() *Settings {
	v := viper.New()
	setDefaultConfig(v)

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		// Defaults are static; failing here is a programming error.
		panic(fmt.Sprintf("default settings do not decode: %v", err))
	}
	return settings
}
