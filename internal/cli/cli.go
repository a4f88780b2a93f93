// Package cli implements the mvnfetch command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mvnfetch/mvnfetch/pkg/buildinfo"
	"github.com/mvnfetch/mvnfetch/pkg/httputil"
	"github.com/mvnfetch/mvnfetch/pkg/maven"
	"github.com/mvnfetch/mvnfetch/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "mvnfetch"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	repository string
	noCache    bool
	cfg        Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Mvnfetch downloads Maven artifacts and their dependencies",
		Long:         `Mvnfetch is a CLI tool for resolving and downloading Java artifacts from Maven repositories, including the full compile-scope transitive dependency closure.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./mvnfetch.toml, then XDG config dir)")
	root.PersistentFlags().StringVar(&c.repository, "repository", "", "repository base URL (overrides config)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the persistent artifact cache")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	// Register all subcommands
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.versionsCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Resolver Factory
// =============================================================================

// newResolver creates a resolver over the configured store and HTTP client.
// The caller owns the returned store and must Close it.
func (c *CLI) newResolver(ctx context.Context) (*maven.Resolver, store.Store, error) {
	st, err := c.newStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	client := httputil.NewClient(c.cfg.Timeout(), nil)
	r := maven.NewResolver(st, client)
	r.SetLogf(loggerFromContext(ctx).Debugf)
	return r, st, nil
}

// newStore creates the cache backend selected by the configuration.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	if c.noCache {
		return store.NewNullStore(), nil
	}
	switch c.cfg.Store {
	case "", "file":
		return store.NewFileStore(c.cfg.CacheDir)
	case "redis":
		return store.NewRedisStore(c.cfg.Redis.Addr, c.cfg.Redis.Prefix), nil
	case "mongo":
		return store.NewMongoStore(ctx, c.cfg.Mongo.URI, c.cfg.Mongo.Database, c.cfg.Mongo.Collection)
	case "none":
		return store.NewNullStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (expected file, redis, mongo or none)", c.cfg.Store)
	}
}

// repositoryURL returns the effective repository base URL, honoring the
// --repository flag over the configured value.
func (c *CLI) repositoryURL() string {
	if c.repository != "" {
		return c.repository
	}
	return c.cfg.Repository
}

// =============================================================================
// Coordinate Parsing
// =============================================================================

// parseSpec splits a "group:artifact[:version]" argument. The version part
// is optional and may be symbolic ("latest", "release").
func parseSpec(arg string) (group, artifact, version string, err error) {
	parts := strings.Split(arg, ":")
	switch len(parts) {
	case 2:
		group, artifact = parts[0], parts[1]
	case 3:
		group, artifact, version = parts[0], parts[1], parts[2]
	default:
		return "", "", "", fmt.Errorf("invalid coordinate %q (expected GROUP:ARTIFACT[:VERSION])", arg)
	}
	if group == "" || artifact == "" {
		return "", "", "", fmt.Errorf("invalid coordinate %q (empty group or artifact)", arg)
	}
	return group, artifact, version, nil
}

// newPackage builds a package from a coordinate argument, bound to the
// effective repository.
func (c *CLI) newPackage(arg string) (*maven.Package, error) {
	group, artifact, version, err := parseSpec(arg)
	if err != nil {
		return nil, err
	}
	coord := maven.NewCoordinateIn(group, artifact, c.repositoryURL())
	return maven.NewPackage(coord, version), nil
}
