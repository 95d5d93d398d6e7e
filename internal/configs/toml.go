package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// SaveTOML saves a struct to a TOML file, creating parent directories
// as needed.
func SaveTOML(filePath string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(data)
}

// LoadTOML loads a TOML file into a struct. Syntax errors are reported
// with the line and column of the fault.
func LoadTOML(filePath string, data interface{}) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if err := toml.Unmarshal(content, data); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("invalid TOML at line %d, column %d:\n%s", row, col, derr.String())
		}
		return err
	}

	return nil
}
