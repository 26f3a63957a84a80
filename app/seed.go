package app

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/portfolio-web/portfolio/internal/daemon"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample projects into an empty project store",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		inserted, err := daemon.Seed(&cfg)
		if err != nil {
			return err //nolint:wrapcheck
		}

		log.Info().Int("projects", inserted).Msg("seed finished")
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "inserted %d projects\n", inserted)

		return err //nolint:wrapcheck
	},
}
