package conf

import "github.com/orbitdata/query-data/internal/logger"

// GetLogger returns the config package logger scoped to the config module.
// It is fetched from the global logger each time because the central logger
// is replaced after the configuration has been loaded.
func GetLogger() logger.Logger {
	return logger.Global().Module("config")
}
