// ABOUTME: Tests for fitdb configuration management.
// ABOUTME: Covers load, save, defaults, env overrides, and path expansion.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}

	// GetDataDir with empty DataDir should return the XDG default
	got := cfg.GetDataDir()
	if got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/fitdb-test"}
	if got := cfg.GetDataDir(); got != "/tmp/fitdb-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/fitdb-test")
	}
}

func TestGetDataDirEnvOverride(t *testing.T) {
	original := os.Getenv("FITDB_DATA_DIR")
	os.Setenv("FITDB_DATA_DIR", "/tmp/fitdb-env")
	defer os.Setenv("FITDB_DATA_DIR", original)

	cfg := &Config{DataDir: "/tmp/fitdb-config"}
	if got := cfg.GetDataDir(); got != "/tmp/fitdb-env" {
		t.Errorf("GetDataDir() = %q, want env override %q", got, "/tmp/fitdb-env")
	}
}

func TestGetDBFileDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetDBFile(); got != "fitdb.db" {
		t.Errorf("GetDBFile() = %q, want %q", got, "fitdb.db")
	}
}

func TestGetDBPath(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/fitdb-test", DBFile: "custom.db"}
	want := filepath.Join("/tmp/fitdb-test", "custom.db")
	if got := cfg.GetDBPath(); got != want {
		t.Errorf("GetDBPath() = %q, want %q", got, want)
	}
}

func TestGetDBPathEnvOverride(t *testing.T) {
	original := os.Getenv("FITDB_DB")
	os.Setenv("FITDB_DB", "/tmp/other/place.db")
	defer os.Setenv("FITDB_DB", original)

	cfg := &Config{DataDir: "/tmp/fitdb-test"}
	if got := cfg.GetDBPath(); got != "/tmp/other/place.db" {
		t.Errorf("GetDBPath() = %q, want env override %q", got, "/tmp/other/place.db")
	}
}

func TestGetLogLevelDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetLogLevel(); got != "info" {
		t.Errorf("GetLogLevel() = %q, want %q", got, "info")
	}
}

func TestExpandPathEmpty(t *testing.T) {
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want %q", got, "")
	}
}

func TestExpandPathAbsolute(t *testing.T) {
	if got := ExpandPath("/tmp/foo"); got != "/tmp/foo" {
		t.Errorf("ExpandPath(\"/tmp/foo\") = %q, want %q", got, "/tmp/foo")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~")
	if got != home {
		t.Errorf("ExpandPath(\"~\") = %q, want %q", got, home)
	}
}

func TestExpandPathTildeSlash(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~/data/fitdb")
	want := filepath.Join(home, "data/fitdb")
	if got != want {
		t.Errorf("ExpandPath(\"~/data/fitdb\") = %q, want %q", got, want)
	}
}

func TestExpandPathRelative(t *testing.T) {
	if got := ExpandPath("data/fitdb"); got != "data/fitdb" {
		t.Errorf("ExpandPath(\"data/fitdb\") = %q, want %q", got, "data/fitdb")
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/fitdb-data"}
	got := cfg.GetDataDir()
	want := filepath.Join(home, "fitdb-data")
	if got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	// Set XDG_CONFIG_HOME to a temp dir with no config file
	tmpDir, err := os.MkdirTemp("", "fitdb-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	// Should return defaults
	if cfg.DataDir != "" {
		t.Errorf("Expected empty DataDir, got %q", cfg.DataDir)
	}
	if cfg.DBFile != "" {
		t.Errorf("Expected empty DBFile, got %q", cfg.DBFile)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "fitdb-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	// Save config
	cfg := &Config{
		DataDir:  "/tmp/fitdb-data",
		DBFile:   "training.db",
		LogLevel: "debug",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// Load config
	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.DataDir != "/tmp/fitdb-data" {
		t.Errorf("DataDir mismatch: got %q, want %q", loaded.DataDir, "/tmp/fitdb-data")
	}
	if loaded.DBFile != "training.db" {
		t.Errorf("DBFile mismatch: got %q, want %q", loaded.DBFile, "training.db")
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("LogLevel mismatch: got %q, want %q", loaded.LogLevel, "debug")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "fitdb-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Point to a non-existent subdirectory
	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	cfg := &Config{DataDir: "/tmp/fitdb-data"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	// Verify directory was created
	configDir := filepath.Join(tmpDir, "nonexistent", "fitdb")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "fitdb-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	// Write invalid TOML
	configDir := filepath.Join(tmpDir, "fitdb")
	os.MkdirAll(configDir, 0755)
	os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("data_dir = [unclosed"), 0600)

	_, err = Load()
	if err == nil {
		t.Error("Expected error for invalid TOML config")
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "fitdb-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	got := GetConfigPath()
	want := filepath.Join(tmpDir, "fitdb", "config.toml")
	if got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestOpenStore(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "fitdb-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := &Config{DataDir: tmpDir}

	store, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() failed: %v", err)
	}
	defer store.Close()

	// Verify database file was created
	dbPath := filepath.Join(tmpDir, "fitdb.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Expected fitdb.db to be created")
	}
}

func TestOpenStoreAt(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "fitdb-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Explicit path wins over the configured directory.
	cfg := &Config{DataDir: "/somewhere/else"}
	dbPath := filepath.Join(tmpDir, "override.db")

	store, err := cfg.OpenStoreAt(dbPath)
	if err != nil {
		t.Fatalf("OpenStoreAt() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Expected override.db to be created")
	}
}

func TestOpenStoreInvalidLogLevel(t *testing.T) {
	cfg := &Config{DataDir: "/tmp", LogLevel: "shouting"}

	_, err := cfg.OpenStore()
	if err == nil {
		t.Error("Expected error for invalid log level")
	}
}

func TestConfigTOMLSerialization(t *testing.T) {
	cfg := &Config{
		DataDir:  "~/fitdb-data",
		LogLevel: "warn",
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var loaded Config
	if err := toml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if loaded.DataDir != cfg.DataDir {
		t.Errorf("DataDir mismatch: got %q, want %q", loaded.DataDir, cfg.DataDir)
	}
	if loaded.LogLevel != cfg.LogLevel {
		t.Errorf("LogLevel mismatch: got %q, want %q", loaded.LogLevel, cfg.LogLevel)
	}
}
