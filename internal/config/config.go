// Package config loads the homedeck configuration file.
//
// The configuration is a TOML file, by default at
// ~/.config/homedeck/config.toml, holding the HTTP listen address, the store
// backend selection, and the static service registry:
//
//	listen = ":8420"
//
//	[store]
//	backend = "file"          # memory | file | redis | mongo
//	dir = ""                  # file backend, empty for the default
//
//	[store.redis]
//	addr = "localhost:6379"
//
//	[store.mongo]
//	uri = "mongodb://localhost:27017"
//
//	[[service]]
//	id = "pve"
//	name = "Proxmox"
//	kind = "vmhost"
//	home = "main"
//	url = "https://pve.lan:8006"
//
// Service credentials never live here; pollers resolve secrets on their own.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/homedeck/pkg/errors"
	"github.com/matzehuels/homedeck/pkg/service"
)

// Backend names for the store selection.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config is the top-level configuration.
type Config struct {
	Listen   string            `toml:"listen"`
	Store    StoreConfig       `toml:"store"`
	Services []service.Service `toml:"service"`
}

// StoreConfig selects and configures the layout store backend.
type StoreConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// RedisConfig holds settings for the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig holds settings for the mongo backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Default returns the configuration used when no file exists: file-backed
// store, local listen address, no services.
func Default() Config {
	return Config{
		Listen: ":8420",
		Store: StoreConfig{
			Backend: BackendFile,
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Mongo:   MongoConfig{URI: "mongodb://localhost:27017"},
		},
	}
}

// DefaultPath returns the default config file location, honoring
// XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "homedeck", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "homedeck", "config.toml"), nil
}

// Load reads the config file at path. An empty path falls back to
// DefaultPath; a missing file yields Default() rather than an error, so a
// fresh install works without any setup.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendFile, BackendRedis, BackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", c.Store.Backend)
	}

	seen := make(map[string]bool, len(c.Services))
	for _, svc := range c.Services {
		if svc.ID == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "service without id")
		}
		if seen[svc.ID] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate service id %q", svc.ID)
		}
		seen[svc.ID] = true

		if !svc.Kind.Valid() {
			return errors.New(errors.ErrCodeInvalidKind, "service %s: unknown kind %q", svc.ID, svc.Kind)
		}
		if err := errors.ValidateHomeName(svc.Home); err != nil {
			return fmt.Errorf("service %s: %w", svc.ID, err)
		}
	}
	return nil
}
