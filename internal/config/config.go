// Package config handles the mdb configuration document.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/AlexanderBrevig/mdb/internal/mdberr"
	"github.com/AlexanderBrevig/mdb/internal/template"
)

// AppName names the per-user config directory.
const AppName = "mdb"

// Configuration is the parsed configuration document.
type Configuration struct {
	// Settings holds the [config] table.
	Settings Settings

	// Templates in declaration order.
	Templates []template.Template

	// dir is the directory the document was loaded from. Template body
	// files (<id>.md) live here.
	dir string
}

// Settings is the [config] table of the document.
type Settings struct {
	// Data is the tracker record location. Supports ~ expansion.
	Data string

	// Editor overrides $EDITOR when set.
	Editor string

	// Accent is the terminal accent color (ANSI code or hex, "none" to
	// disable).
	Accent string
}

// document mirrors the on-disk shape for both TOML and YAML.
type document struct {
	Config    settingsDoc   `toml:"config" yaml:"config"`
	Templates []templateDoc `toml:"templates" yaml:"templates"`
}

type settingsDoc struct {
	Data   string `toml:"data" yaml:"data"`
	Editor string `toml:"editor" yaml:"editor"`
	Accent string `toml:"accent" yaml:"accent"`
}

type templateDoc struct {
	ID      string   `toml:"id" yaml:"id"`
	Dir     string   `toml:"dir" yaml:"dir"`
	Content *string  `toml:"content" yaml:"content"`
	Name    *nameDoc `toml:"name" yaml:"name"`
	Slug    bool     `toml:"slug" yaml:"slug"`
}

// nameDoc is the externally tagged name source: exactly one key is set.
type nameDoc struct {
	Text *string  `toml:"text" yaml:"text"`
	Exec *execDoc `toml:"exec" yaml:"exec"`
}

type execDoc struct {
	Run  string   `toml:"run" yaml:"run"`
	Args []string `toml:"args" yaml:"args"`
	Trim bool     `toml:"trim" yaml:"trim"`
}

// Dir returns the directory holding the configuration and template bodies.
func (c *Configuration) Dir() string {
	return c.dir
}

// DataFile returns the expanded tracker record path. When config.data is
// unset the record lives next to the configuration as brain.toml.
func (c *Configuration) DataFile() (string, error) {
	if strings.TrimSpace(c.Settings.Data) == "" {
		return filepath.Join(c.dir, "brain.toml"), nil
	}
	return ExpandPath(c.Settings.Data)
}

// GetEditor returns the editor to use, falling back to $EDITOR.
func (c *Configuration) GetEditor() string {
	if c.Settings.Editor != "" {
		return c.Settings.Editor
	}
	return os.Getenv("EDITOR")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf("failed to expand %q: %w", p, err)
	}
	return expanded, nil
}

// Load resolves the configuration path, writes the default document when
// none exists, and parses it.
func Load(explicitPath string) (*Configuration, error) {
	path := ResolveConfigPath(explicitPath)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := WriteDefault(path); err != nil {
			return nil, err
		}
	}
	return LoadFrom(path)
}

// LoadFrom parses the configuration at path. The decoder is chosen by
// extension: .yaml/.yml use YAML, everything else TOML.
func LoadFrom(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mdberr.IO(err, "failed to read config %s", path)
	}

	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, mdberr.IO(err, "failed to parse config %s", path)
		}
	default:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
			return nil, mdberr.IO(err, "failed to parse config %s", path)
		}
	}

	cfg, err := doc.build()
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

func (d document) build() (*Configuration, error) {
	cfg := &Configuration{
		Settings: Settings{
			Data:   strings.TrimSpace(d.Config.Data),
			Editor: strings.TrimSpace(d.Config.Editor),
			Accent: strings.TrimSpace(d.Config.Accent),
		},
	}

	seen := make(map[string]bool, len(d.Templates))
	for i, td := range d.Templates {
		id := strings.TrimSpace(td.ID)
		if id == "" {
			return nil, fmt.Errorf("templates[%d]: id is required", i)
		}
		if seen[id] {
			return nil, fmt.Errorf("templates[%d]: duplicate id %q", i, id)
		}
		seen[id] = true

		name, err := td.Name.source()
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", id, err)
		}

		cfg.Templates = append(cfg.Templates, template.Template{
			ID:      id,
			Dir:     strings.TrimSpace(td.Dir),
			Content: td.Content,
			Name:    name,
			Slug:    td.Slug,
		})
	}
	return cfg, nil
}

func (n *nameDoc) source() (template.NameSource, error) {
	if n == nil {
		return nil, nil
	}
	switch {
	case n.Text != nil && n.Exec != nil:
		return nil, fmt.Errorf("name must set exactly one of text or exec")
	case n.Text != nil:
		return template.TextName{Text: *n.Text}, nil
	case n.Exec != nil:
		if strings.TrimSpace(n.Exec.Run) == "" {
			return nil, fmt.Errorf("name.exec.run is required")
		}
		return template.ExecName{Run: n.Exec.Run, Args: n.Exec.Args, Trim: n.Exec.Trim}, nil
	default:
		return nil, fmt.Errorf("name must set one of text or exec")
	}
}
