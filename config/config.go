// Package config loads simulation settings from simkit.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vinayprograms/simkit/address"
	"github.com/vinayprograms/simkit/errors"
	"github.com/vinayprograms/simkit/logging"
)

// FileName is the configuration file looked up by Load.
const FileName = "simkit.toml"

// Config is the decoded simkit.toml.
type Config struct {
	Log    LogConfig `toml:"log"`
	Groups []Group   `toml:"group"`
}

// LogConfig controls console logging.
type LogConfig struct {
	Level     string `toml:"level"`
	Component string `toml:"component"`
}

// Group declares Count agents sharing Name.
type Group struct {
	Name  string `toml:"name"`
	Count int    `toml:"count"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}

// StandardPaths returns the config file locations in order of priority.
func StandardPaths() []string {
	paths := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "simkit", FileName))
	}
	return paths
}

// Load loads the first config found in StandardPaths. No file is not an
// error: Default() is returned with an empty path.
func Load() (*Config, string, error) {
	for _, path := range StandardPaths() {
		if _, err := os.Stat(path); err == nil {
			cfg, err := LoadFile(path)
			if err != nil {
				return nil, path, err
			}
			return cfg, path, nil
		}
	}
	return Default(), "", nil
}

// LoadFile loads and validates a config file.
func LoadFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return Parse(string(content))
}

// Parse decodes TOML content over Default() and validates the result.
func Parse(content string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(content, cfg)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrCodeInvalidInput, "failed to parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.InvalidInput("unknown config keys: " + strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks group declarations and the log level.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	seen := make(map[string]bool, len(c.Groups))
	for i, g := range c.Groups {
		switch {
		case g.Name == "":
			return errors.InvalidInput(fmt.Sprintf("group %d has no name", i))
		case strings.Contains(g.Name, address.Terminator):
			return errors.InvalidInput(fmt.Sprintf("group name %q contains %q", g.Name, address.Terminator))
		case g.Count < 0:
			return errors.InvalidInput(fmt.Sprintf("group %q has negative count %d", g.Name, g.Count))
		case seen[g.Name]:
			return errors.Conflict(fmt.Sprintf("group %q declared twice", g.Name))
		}
		seen[g.Name] = true
	}
	return nil
}

// Group returns the declared group with the given name.
func (c *Config) Group(name string) (Group, error) {
	for _, g := range c.Groups {
		if g.Name == name {
			return g, nil
		}
	}
	return Group{}, errors.NotFound(fmt.Sprintf("group %q not declared", name))
}

// Logger builds a logger from the [log] section.
func (c *Config) Logger() *logging.Logger {
	logger := logging.New()
	if level, err := logging.ParseLevel(c.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	if c.Log.Component != "" {
		logger = logger.WithComponent(c.Log.Component)
	}
	return logger
}

// Address returns the group's broadcast address.
func (g Group) Address() string {
	return address.GroupAddress(g.Name)
}

// Agents returns the addresses of every agent in the group.
func (g Group) Agents() []string {
	return address.Roster(g.Name, g.Count)
}
