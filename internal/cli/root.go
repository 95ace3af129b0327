// Package cli implements cmsctl, the operator tool for the CMS store.
package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JivitSolutions/JivIT-Solutions/internal/app"
	"github.com/JivitSolutions/JivIT-Solutions/internal/config"
	"github.com/JivitSolutions/JivIT-Solutions/pkg/logger"
)

// Runtime is what a command works against.
type Runtime struct {
	Config   *config.Config
	Logger   *zap.Logger
	Infra    *app.Infrastructure
	UseCases *app.UseCases
}

// Loader opens a Runtime. The returned func releases it.
type Loader func(ctx context.Context, envFile string) (*Runtime, func(), error)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
	warnText = color.New(color.FgYellow).SprintFunc()
	boldText = color.New(color.Bold).SprintFunc()
)

// NewRootCmd builds cmsctl. load is called once per command run.
func NewRootCmd(load Loader) *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "cmsctl",
		Short: "Operator tool for the JivIT Solutions CMS",
		Long: `cmsctl works directly against the CMS database with the same
configuration as the server (CMS_* environment, configs/<env>/cms.yaml).`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before reading configuration (default .env)")

	withRuntime := func(run runFunc) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			rt, release, err := load(cmd.Context(), envFile)
			if err != nil {
				return err
			}
			defer release()
			return run(cmd, args, rt)
		}
	}

	rootCmd.AddCommand(migrateCmd(withRuntime))
	rootCmd.AddCommand(seedCmd(withRuntime))
	rootCmd.AddCommand(promoteCmd(withRuntime))
	rootCmd.AddCommand(settingsCmd(withRuntime))
	rootCmd.AddCommand(statusCmd(withRuntime))
	return rootCmd
}

type runFunc func(cmd *cobra.Command, args []string, rt *Runtime) error

type runWrapper func(run runFunc) func(*cobra.Command, []string) error

// DefaultLoader reads configuration the way the server does and opens the store.
func DefaultLoader(ctx context.Context, envFile string) (*Runtime, func(), error) {
	if _, err := config.LoadEnvFile(envFile); err != nil {
		return nil, nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// Keep operator output readable unless asked otherwise.
	logCfg := cfg.Log
	if logCfg.Level == "" || logCfg.Level == "info" {
		logCfg.Level = "warn"
	}
	logCfg.Format = "console"
	zapLogger, err := logger.NewZapLogger(logCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	infra, err := app.NewInfrastructure(cfg, zapLogger)
	if err != nil {
		_ = zapLogger.Sync()
		return nil, nil, err
	}

	rt := &Runtime{
		Config:   cfg,
		Logger:   zapLogger,
		Infra:    infra,
		UseCases: app.NewUseCases(infra.Dependencies(cfg, app.SupabaseIdentity(cfg, zapLogger)), zapLogger),
	}
	release := func() {
		infra.Close()
		_ = zapLogger.Sync()
	}
	return rt, release, nil
}
