package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/labscout"
	"github.com/aretw0/labscout/internal/cli"
	"github.com/aretw0/labscout/internal/config"
	loamadapter "github.com/aretw0/labscout/pkg/adapters/loam"
	"github.com/aretw0/labscout/pkg/adapters/memory"
	redisadapter "github.com/aretw0/labscout/pkg/adapters/redis"
	"github.com/aretw0/labscout/pkg/ports"
	"github.com/aretw0/labscout/pkg/session"
)

var rootCmd = &cobra.Command{
	Use:   "labscout",
	Short: "Labscout is a lab-automation requirements consultant",
	Long: `Labscout interviews a lab about its automation needs, matches the
requirements against a catalog of pre-built solutions, and drafts
requirements specification documents for custom stations.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "labscout.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// setup loads the configuration and wires the consultant the way the flags
// and config file ask for. The archive is only attached when archive_dir is
// configured.
func setup(cmd *cobra.Command, extra ...labscout.Option) (*labscout.Consultant, config.Config, *slog.Logger, error) {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, cfg, nil, err
	}
	logger := cli.CreateLogger(cfg.LogLevel, debug)

	opts := []labscout.Option{labscout.WithLogger(logger)}
	if cfg.ArchiveDir != "" {
		archive, err := loamadapter.NewArchive(cfg.ArchiveDir)
		if err != nil {
			return nil, cfg, logger, fmt.Errorf("open report archive: %w", err)
		}
		opts = append(opts, labscout.WithArchive(archive))
	}

	opts = append(opts, extra...)
	return labscout.New(opts...), cfg, logger, nil
}

// newSessionManager picks the session backend: Redis when configured, the
// process-local store otherwise.
func newSessionManager(cfg config.Config, logger *slog.Logger) *session.Manager {
	var store ports.IntakeStore = memory.NewStore()
	if cfg.Redis.Addr != "" {
		store = redisadapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redisadapter.WithTTL(cfg.Redis.SessionTTL))
		logger.Info("using redis session store", "addr", cfg.Redis.Addr)
	}
	return session.NewManager(store, session.WithLogger(logger))
}
