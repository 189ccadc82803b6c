package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds CLI defaults loaded from the config file. Flags always
// override config values.
type Config struct {
	// Listen is the default address for the serve command.
	Listen string `toml:"listen"`

	// RedisAddr enables the Redis artifact cache for serve when set
	// (e.g. "localhost:6379").
	RedisAddr string `toml:"redis_addr"`

	// MongoURI enables the MongoDB tree store when set
	// (e.g. "mongodb://localhost:27017").
	MongoURI string `toml:"mongo_uri"`

	// MongoDatabase is the database name for the tree store.
	MongoDatabase string `toml:"mongo_database"`
}

func defaultConfig() Config {
	return Config{
		Listen:        ":8080",
		MongoDatabase: appName,
	}
}

// loadConfig reads ~/.config/treemat/config.toml (respecting
// XDG_CONFIG_HOME). A missing file yields the defaults; a malformed file
// is an error so typos don't silently fall back.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// configPath returns the config file location using the XDG standard.
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
