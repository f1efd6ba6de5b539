package app

import (
	"github.com/spf13/cobra"

	"github.com/throwback-posts/throwback-posts/internal/daemon"
)

func init() { //nolint:gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	startCmd.Flags().BoolVar(
		&browseStatic,
		"browse",
		false,
		"Enable static file browsing (for development purposes only)",
	)

	rootCmd.AddCommand(startCmd)
}

var (
	devMode      bool
	browseStatic bool

	startCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "start",
		Short: "Start the throwback-posts web service",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if devMode {
				cfg.DevMode = true
			}

			if browseStatic {
				cfg.Webserver.BrowseStatic = true
			}

			d, err := daemon.New(cfg)
			if err != nil {
				return err
			}

			return d.Start()
		},
	}
)
