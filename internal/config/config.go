package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds all configuration options for the tracker. Values come from
// the optional config.yaml, ETT_* environment variables and the defaults
// applied by Load, in that order of precedence.
type Config struct {
	AppName string
	Path    string // config file actually loaded, empty when running on defaults

	Data        DataConfig        `yaml:"data"`
	Server      ServerConfig      `yaml:"server"`
	Logger      LoggerConfig      `yaml:"logger"`
	Cache       CacheConfig       `yaml:"cache"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Audio       AudioConfig       `yaml:"audio"`
	Application ApplicationConfig `yaml:"application"`
}

// DataConfig locates the database, rewards file and import backups.
type DataConfig struct {
	Dir          string `yaml:"dir" validate:"required"`
	DatabaseFile string `yaml:"databaseFile" validate:"required"`
	RewardsFile  string `yaml:"rewardsFile" validate:"required"`
}

// ServerConfig holds the overlay server listen address.
type ServerConfig struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|int|min:1|max:65535"`
}

// LoggerConfig holds logging configuration. An empty File logs to stderr.
type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	File  string `yaml:"file"`
}

// CacheConfig holds overlay snapshot cache configuration.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

// MetricsConfig gates the Prometheus endpoint on the overlay server.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// AudioConfig names the external player and the cue files handed to it.
// Everything here is optional; empty values silence the cues.
type AudioConfig struct {
	Player     string `yaml:"player"`
	StartSound string `yaml:"startSound"`
	StopSound  string `yaml:"stopSound"`
}

// ApplicationConfig holds process-level knobs shared by all commands.
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" validate:"required|min:1"`
}

// DatabasePath returns the full path to the SQLite database file.
func (c *Config) DatabasePath() string {
	if filepath.IsAbs(c.Data.DatabaseFile) {
		return c.Data.DatabaseFile
	}
	return filepath.Join(c.Data.Dir, c.Data.DatabaseFile)
}

// RewardsPath returns the full path to the rewards definition file.
func (c *Config) RewardsPath() string {
	if filepath.IsAbs(c.Data.RewardsFile) {
		return c.Data.RewardsFile
	}
	return filepath.Join(c.Data.Dir, c.Data.RewardsFile)
}

// BackupDir returns the directory import backups are written to.
func (c *Config) BackupDir() string {
	return c.Data.Dir
}

// ListenAddr returns the host:port the overlay server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Timeout returns the per-command context timeout.
func (c *Config) Timeout() time.Duration {
	return c.Application.Timeout
}

// EnsureDataDir creates the data directory when it does not exist yet.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.Data.Dir, 0o755)
}
