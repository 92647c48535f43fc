package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// configFileNames are tried in order inside the config directory.
var configFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// DefaultDir returns the per-user mdb config directory.
// Checks ~/.config/mdb first (XDG style), then falls back to the
// OS-specific location.
func DefaultDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgDir := filepath.Join(home, ".config", AppName)
		if _, err := os.Stat(xdgDir); err == nil {
			return xdgDir
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, AppName)
	}

	return filepath.Join(".", "."+AppName)
}

// ResolveConfigPath resolves the effective config path from an optional
// override. Without one, the first existing config.{toml,yaml,yml} in
// DefaultDir wins; config.toml is returned when none exists yet.
func ResolveConfigPath(explicitPath string) string {
	if strings.TrimSpace(explicitPath) != "" {
		return explicitPath
	}
	return findConfigFile(DefaultDir())
}

func findConfigFile(dir string) string {
	for _, name := range configFileNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return filepath.Join(dir, configFileNames[0])
}

const defaultConfigTOML = `# mdb configuration

[config]
# Where the set of tracked notes (mdb add) is stored. Supports ~.
data = "~/.local/share/mdb/brain.toml"

# Editor for opening notes (defaults to $EDITOR)
# editor = "nvim"

# Accent color for terminal output: ANSI code (0-255), hex, or "none"
# accent = "39"

# Templates. The "default" template is used when no template is given.
#
#   id      - unique template id, used with -t/--template
#   dir     - optional target directory (must exist); defaults to the
#             current directory
#   content - optional inline body; otherwise <id>.md next to this file
#   name    - how to name the note when no name is given:
#               name = { text = "inbox" }
#               name = { exec = { run = "date", args = ["+%F"], trim = true } }
#   slug    - slugify the file name (default false)
#
# Body variables: $NAME, $DATE (YYYY-MM-DD), $PWD, $PATH

[[templates]]
id = "default"
content = "# $NAME\n\nCreated $DATE in $PWD\n"
name = { exec = { run = "date", args = ["+%Y-%m-%d"], trim = true } }
`

const defaultConfigYAML = `# mdb configuration
config:
  data: ~/.local/share/mdb/brain.toml
  # editor: nvim

templates:
  - id: default
    content: "# $NAME\n\nCreated $DATE in $PWD\n"
    name:
      exec:
        run: date
        args: ["+%Y-%m-%d"]
        trim: true
`

// WriteDefault writes a commented default configuration to path unless a
// file already exists there. The format follows the extension.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content := defaultConfigTOML
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		content = defaultConfigYAML
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
