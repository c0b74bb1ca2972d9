// Package cli implements the homedeck command-line interface.
//
// This package provides commands for running the HTTP API, inspecting and
// re-arranging dashboard layouts, and generating default layouts from the
// configured services. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - serve: Run the HTTP API against the configured store
//   - homes: List homes with a stored layout
//   - show: Render a home's widget grid in the terminal
//   - arrange: Re-pack a home's layout with a packing strategy
//   - generate: Build a default layout from the configured services
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// lives on the CLI struct and is shared by every command.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/homedeck/internal/config"
	"github.com/matzehuels/homedeck/pkg/buildinfo"
	"github.com/matzehuels/homedeck/pkg/errors"
	"github.com/matzehuels/homedeck/pkg/store"
)

// appName is the application name used for directories and display.
const appName = "homedeck"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Homedeck aggregates self-hosted service widgets onto a grid",
		Long:         `Homedeck is a personal dashboard for self-hosted services: it lays out status widgets on per-home grids, packs them automatically, and serves them over a small HTTP API.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ~/.config/homedeck/config.toml)")

	// Register all subcommands
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.homesCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.arrangeCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig loads the configuration honoring the --config flag.
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.configPath)
}

// newStore constructs the layout store selected by the configuration.
func (c *CLI) newStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return store.NewMemory(), nil
	case config.BackendFile:
		return store.NewFile(cfg.Store.Dir)
	case config.BackendRedis:
		return store.NewRedis(ctx, store.RedisConfig{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})
	case config.BackendMongo:
		return store.NewMongo(ctx, store.MongoConfig{
			URI:        cfg.Store.Mongo.URI,
			Database:   cfg.Store.Mongo.Database,
			Collection: cfg.Store.Mongo.Collection,
		})
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported store backend %q", cfg.Store.Backend)
	}
}
