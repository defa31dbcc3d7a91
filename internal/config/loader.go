package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Options carries command line overrides into Load.
type Options struct {
	ConfigPath string // explicit --config flag, empty means search the default locations
	DBPath     string // explicit --db flag, overrides the configured database file
}

// Load builds the configuration from defaults, an optional config.yaml and
// ETT_* environment variables. A missing config file is fine unless the
// caller asked for a specific one.
func Load(opts Options) (*Config, error) {
	// A .env next to the working directory is honoured but never required.
	_ = godotenv.Load()

	v := viper.New()

	if opts.ConfigPath != "" {
		filename := filepath.Base(opts.ConfigPath)
		v.AddConfigPath(filepath.Dir(opts.ConfigPath))
		v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(defaultDataDir())
		v.SetConfigName("config")
	}
	v.SetConfigType("yaml")

	applyDefaults(v)
	bindEnvironment(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
		if opts.ConfigPath != "" {
			return nil, fmt.Errorf("config file %s not found", opts.ConfigPath)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	conf.AppName = "effortless-time-tracker"
	conf.Path = v.ConfigFileUsed()

	if opts.DBPath != "" {
		conf.Data.Dir = filepath.Dir(opts.DBPath)
		conf.Data.DatabaseFile = filepath.Base(opts.DBPath)
	}

	cnfValidator := NewCnfValidator(&conf)
	if err := cnfValidator.Validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("data.dir", defaultDataDir())
	v.SetDefault("data.databaseFile", "study.db")
	v.SetDefault("data.rewardsFile", "rewards.yaml")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 4046)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file", "")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 1024*1024)
	v.SetDefault("cache.ttl", time.Second)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("audio.player", "")
	v.SetDefault("audio.startSound", "")
	v.SetDefault("audio.stopSound", "")
	v.SetDefault("application.timeout", 30*time.Second)
}

func bindEnvironment(v *viper.Viper) {
	v.BindEnv("data.dir", "ETT_DATA_DIR")
	v.BindEnv("data.databaseFile", "ETT_DB_FILE")
	v.BindEnv("data.rewardsFile", "ETT_REWARDS_FILE")
	v.BindEnv("server.host", "ETT_SERVER_HOST")
	v.BindEnv("server.port", "ETT_SERVER_PORT")
	v.BindEnv("logger.level", "ETT_LOG_LEVEL")
	v.BindEnv("logger.file", "ETT_LOG_FILE")
	v.BindEnv("cache.enabled", "ETT_CACHE_ENABLED")
	v.BindEnv("cache.size", "ETT_CACHE_SIZE")
	v.BindEnv("metrics.enabled", "ETT_METRICS_ENABLED")
	v.BindEnv("audio.player", "ETT_AUDIO_PLAYER")
	v.BindEnv("application.timeout", "ETT_APP_TIMEOUT")
}

// defaultDataDir is ~/.ett, falling back to a relative .ett when the home
// directory cannot be resolved.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ett"
	}
	return filepath.Join(home, ".ett")
}
