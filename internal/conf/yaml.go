package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/orbitdata/query-data/internal/errors"
	"github.com/orbitdata/query-data/internal/logger"
)

const configFilePermissions = 0o644

// SaveYAMLConfig writes settings to configPath as YAML. The file is written to
// a temporary file in the same directory and renamed into place, so an
// existing file is either fully replaced or left untouched.
func SaveYAMLConfig(configPath string, settings *Settings) error {
	yamlData, err := yaml.Marshal(settings)
	if err != nil {
		return errors.New(fmt.Errorf("error marshaling settings to YAML: %w", err)).
			Category(errors.CategoryConfiguration).
			Build()
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.FileError(fmt.Errorf("error creating config directory: %w", err), dir)
	}

	tempFile, err := os.CreateTemp(dir, ConfigName+"-*.yaml.tmp")
	if err != nil {
		return errors.FileError(fmt.Errorf("error creating temporary file: %w", err), configPath)
	}
	tempFileName := tempFile.Name()
	defer os.Remove(tempFileName) // no-op after a successful rename

	if _, err := tempFile.Write(yamlData); err != nil {
		_ = tempFile.Close()
		return errors.FileError(fmt.Errorf("error writing to temporary file: %w", err), configPath)
	}
	if err := tempFile.Chmod(configFilePermissions); err != nil {
		_ = tempFile.Close()
		return errors.FileError(fmt.Errorf("error setting config file mode: %w", err), configPath)
	}
	if err := tempFile.Close(); err != nil {
		return errors.FileError(fmt.Errorf("error closing temporary file: %w", err), configPath)
	}

	if err := os.Rename(tempFileName, configPath); err != nil {
		return errors.FileError(fmt.Errorf("error replacing config file: %w", err), configPath)
	}

	GetLogger().Info("Wrote configuration file", logger.String("path", configPath))
	return nil
}
