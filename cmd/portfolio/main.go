package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"elenavasquez.com/internal/config"
	"elenavasquez.com/internal/logging"
	"elenavasquez.com/internal/models"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags are parsed
type app struct {
	cfg    *config.Config
	logger *zap.Logger

	logLevel    string
	contentPath string
	dev         bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Serve, export and publish the portfolio site",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.contentPath, "content", "", "content YAML file (default: built-in content)")
	root.PersistentFlags().BoolVar(&a.dev, "dev", false, "human-readable development logging")

	root.AddCommand(
		newServeCmd(a),
		newExportCmd(a),
		newPublishCmd(a),
		newProjectsCmd(a),
	)
	return root
}

// init loads the environment configuration, lets explicitly set flags
// override it and builds the logger
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("content") {
		cfg.ContentPath = a.contentPath
	}
	if flags.Changed("dev") {
		cfg.Development = a.dev
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)

	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) site() (*models.Site, error) {
	site, err := a.cfg.LoadSite()
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return site, nil
}
