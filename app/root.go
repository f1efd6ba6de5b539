// Package app implements the command line interface.
package app

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/throwback-posts/throwback-posts/internal/config"
	"github.com/throwback-posts/throwback-posts/internal/logger"
)

const (
	envPrefix         = "THROWBACK_POSTS"
	configKey         = "config"
	defaultConfigPath = "./etc"
)

var rootCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "throwback-posts",
	Short: "throwback-posts shows readers what was published on this day in the past",
	Long: `throwback-posts is a small blog engine whose footer widget lists the posts
published one week, one month or up to seven years before today.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint:gochecknoinits
	rootCmd.PersistentFlags().String(configKey, defaultConfigPath, "directory holding "+config.MainFile)

	// THROWBACK_POSTS_CONFIG overrides the flag default
	_ = viper.BindPFlag(configKey, rootCmd.PersistentFlags().Lookup(configKey))
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration and initializes the global logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.ReadConfig(viper.GetString(configKey))
	if err != nil {
		return nil, err
	}

	if err = logger.Init(cfg.Log); err != nil {
		return nil, err
	}

	return &cfg, nil
}
