// Package configs manages the persistent configuration for nestlog.
//
// Configuration is a single TOML file at the platform config location:
//
//   - Linux: ~/.config/nestlog/config.toml
//   - macOS: ~/Library/Application Support/nestlog/config.toml
//
// # Settings
//
// The file carries console defaults, each overridable per run by the
// matching root flag:
//
//   - color: "always", "auto" or "never"
//   - timestamps: prepend a UTC timestamp to every line
//   - indent_width: spaces per indentation level (1-16)
//   - verbosity: baseline verbosity, the resting -v/-q count (-3..3)
//   - stderr: route all console output to stderr
//
// # Validation
//
// Settings are validated on both load and save. Validation errors name
// fields by their TOML keys, and TOML syntax errors report the line and
// column of the fault.
//
// Tests may repoint ConfigDir and ConfigPath at a temporary directory.
package configs
