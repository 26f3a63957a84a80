// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/portfolio-web/portfolio/internal/config"
	"github.com/portfolio-web/portfolio/internal/logger"
)

var (
	configPath string // directory holding main.toml and .env

	rootCmd = &cobra.Command{
		Use:   "portfolio",
		Short: "portfolio serves a personal portfolio website",
		Long: `portfolio serves a personal portfolio website: a project list,
an about page and a contact form that is delivered by mail.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		config.DefaultPath,
		"Directory containing main.toml and .env",
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration and initializes logging from it.
func loadConfig() (config.Config, error) {
	cfg, err := config.ReadConfig(configPath)
	if err != nil {
		return config.Config{}, err //nolint:wrapcheck
	}

	if err = logger.Init(cfg.Log); err != nil {
		return config.Config{}, err //nolint:wrapcheck
	}

	return cfg, nil
}
