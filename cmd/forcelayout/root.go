// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/forcelayout/config"
	"github.com/katalvlaran/forcelayout/logger"
)

var version = "0.1.0"

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
	logFormat  string
	viper      *viper.Viper
}

// loadConfig reads the config file and environment, plus any flags bound
// into o.viper by the subcommand.
func (o *options) loadConfig() (config.Config, error) {
	if o.configPath != "" {
		o.viper.SetConfigFile(o.configPath)
		o.viper.SetConfigType("toml")
		if err := o.viper.ReadInConfig(); err != nil {
			return config.Config{}, err
		}
	}
	return config.LoadWithViper(o.viper)
}

func (o *options) logger() (*zap.SugaredLogger, error) {
	log, err := logger.New(o.logLevel, o.logFormat)
	if err != nil {
		return nil, err
	}
	return log.Named("forcelayout"), nil
}

func newRootCmd() *cobra.Command {
	o := &options{viper: config.New()}

	root := &cobra.Command{
		Use:   "forcelayout",
		Short: "Clustered force-directed graph layout",
		Long: brand.Sprint("forcelayout") + " lays out clustered graphs with a force simulation\n" +
			subtle.Sprint("Generate a dataset, run it to rest, inspect the configuration"),
		Version:      version,
		SilenceUsage:  true,
	}
	root.SetVersionTemplate("forcelayout {{ .Version }}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&o.configPath, "config", "c", "", "TOML config file (env "+config.EnvPrefix+"_* overrides it)")
	pf.StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&o.logFormat, "log-format", logger.FormatConsole, "log format: console or json")

	root.AddCommand(
		generateCmd(),
		runCmd(o),
		configCmd(o),
	)
	return root
}
