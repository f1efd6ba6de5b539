package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/throwback-posts/throwback-posts/internal/config"
)

func init() { //nolint:gochecknoinits
	configCmd.Flags().BoolVar(&dumpJSON, "json", false, "print JSON instead of TOML")

	rootCmd.AddCommand(configCmd)
}

var (
	dumpJSON bool

	configCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "config",
		Short: "Print the resolved configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			dump := config.DumpConfig
			if dumpJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(*cfg)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}
)
