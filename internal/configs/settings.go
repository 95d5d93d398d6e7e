package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/nestlog/nestlog/internal/logging"
)

// Settings are the persisted console defaults. Every field maps to a
// root flag of the same name; flags win over the file.
type Settings struct {
	Color       string `toml:"color" validate:"oneof=always auto never"`
	Timestamps  bool   `toml:"timestamps"`
	IndentWidth int    `toml:"indent_width" validate:"gte=1,lte=16"`
	Verbosity   int    `toml:"verbosity" validate:"gte=-3,lte=3"`
	Stderr      bool   `toml:"stderr"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Color:       "auto",
		IndentWidth: logging.DefaultIndentWidth,
	}
}

var (
	// ConfigDir is the directory holding the config file.
	ConfigDir string

	// ConfigPath is the location of the config file itself.
	ConfigPath string
)

func init() {
	base, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	ConfigDir = filepath.Join(base, "nestlog")
	ConfigPath = filepath.Join(ConfigDir, "config.toml")
}
