package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/schematic/pkg/cache"
	"github.com/matzehuels/schematic/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the placement cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached placements and drawings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.noCache || c.Config.Cache.Backend == config.BackendNone {
				printInfo("Caching is disabled")
				return nil
			}

			cc, err := c.newCache(cmd.Context())
			if err != nil {
				return err
			}
			defer cc.Close()

			clearer, ok := cc.(cache.Clearer)
			if !ok {
				printInfo("Cache is not available")
				return nil
			}
			count, err := clearer.Clear(cmd.Context())
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", count)
			printDetail("Backend: %s", c.cacheLocation())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache location",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), c.cacheLocation())
			return nil
		},
	}
}

// cacheLocation describes where the configured backend stores entries.
func (c *CLI) cacheLocation() string {
	cfg := c.Config.Cache
	switch cfg.Backend {
	case config.BackendRedis:
		return fmt.Sprintf("redis://%s/%d", cfg.RedisAddr, cfg.RedisDB)
	case config.BackendNone:
		return "none"
	}
	if cfg.Dir != "" {
		return cfg.Dir
	}
	dir, err := cacheDir()
	if err != nil {
		return "unknown"
	}
	return dir
}
