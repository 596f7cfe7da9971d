package main

import (
	"errors"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"domainwatch/internal/config"
	"domainwatch/internal/logging"
)

// cli carries what the persistent flags resolve to for the subcommands.
type cli struct {
	configPath string
	logLevel   string
	logFile    string

	cfg       config.Config
	cfgErr    error
	logCloser io.Closer
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "server",
		Short:        "Domain portfolio monitoring service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logCloser != nil {
				_ = c.logCloser.Close()
			}
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a YAML, JSON or TOML config file; environment variables take precedence")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: panic, fatal, error, warn, info, debug, trace")
	root.PersistentFlags().StringVar(&c.logFile, "log-file", "", "log file path, or console for stderr")

	root.AddCommand(newServeCmd(c), newRunCmd(c), newMigrateCmd(c))
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil && !errors.Is(err, config.ErrNoDatabaseURL) {
		return err
	}
	c.cfg, c.cfgErr = cfg, err

	if cmd.Flags().Changed("log-level") {
		c.cfg.LogLevel = c.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		c.cfg.LogFile = c.logFile
	}
	closer, err := logging.Init(c.cfg.LogLevel, c.cfg.LogFile)
	if err != nil {
		return err
	}
	c.logCloser = closer
	if c.cfgErr != nil {
		log.Warnf("config: %v", c.cfgErr)
	}
	return nil
}
