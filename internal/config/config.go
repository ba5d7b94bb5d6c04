// ABOUTME: fitdb configuration management backed by a TOML file.
// ABOUTME: Handles XDG paths, environment overrides, and the shared store factory.

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/fitdb/fitdb/internal/storage"
)

// Config stores fitdb tool configuration.
type Config struct {
	// DataDir is the root directory for the database file.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/fitdb.
	DataDir string `toml:"data_dir,omitempty"`

	// DBFile is the database file name inside DataDir. Defaults to fitdb.db.
	DBFile string `toml:"db_file,omitempty"`

	// LogLevel controls storage logging: debug, info, warn, or error.
	// Defaults to info.
	LogLevel string `toml:"log_level,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory. The FITDB_DATA_DIR
// environment variable overrides both.
func (c *Config) GetDataDir() string {
	if env := os.Getenv("FITDB_DATA_DIR"); env != "" {
		return ExpandPath(env)
	}
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDBFile returns the configured database file name, defaulting to fitdb.db.
func (c *Config) GetDBFile() string {
	if c.DBFile == "" {
		return "fitdb.db"
	}
	return c.DBFile
}

// GetDBPath returns the full database path. The FITDB_DB environment
// variable overrides the configured directory and file name entirely.
func (c *Config) GetDBPath() string {
	if env := os.Getenv("FITDB_DB"); env != "" {
		return ExpandPath(env)
	}
	return filepath.Join(c.GetDataDir(), c.GetDBFile())
}

// GetLogLevel returns the configured log level, defaulting to "info".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore opens the shared database handle at the configured path and
// applies the configured log level. The caller owns the returned store
// and is responsible for closing it.
func (c *Config) OpenStore() (*storage.Store, error) {
	return c.OpenStoreAt(c.GetDBPath())
}

// OpenStoreAt opens the shared database handle at an explicit path,
// still applying the configured log level. The CLI uses this when the
// database location is given on the command line.
func (c *Config) OpenStoreAt(path string) (*storage.Store, error) {
	level, err := log.ParseLevel(c.GetLogLevel())
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.GetLogLevel(), err)
	}

	s, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	s.SetLogger(log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "storage",
		Level:  level,
	}))
	return s, nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitdb", "config.toml")
}

// Load reads config from disk. A missing file yields an empty config,
// so every field falls back to its default.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0600)
}
