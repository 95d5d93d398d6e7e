package configs

import (
	"fmt"
	"os"
)

// Load reads the settings file. A missing file is not an error: the
// defaults are returned unchanged.
func Load() (*Settings, error) {
	settings := DefaultSettings()

	if _, err := os.Stat(ConfigPath); os.IsNotExist(err) {
		return settings, nil
	}

	if err := LoadTOML(ConfigPath, settings); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := validateSettings(settings); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return settings, nil
}

// Save validates the settings and writes them to the config file.
func Save(settings *Settings) error {
	if err := validateSettings(settings); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := SaveTOML(ConfigPath, settings); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// Exists reports whether a config file is present.
func Exists() bool {
	_, err := os.Stat(ConfigPath)
	return err == nil
}
