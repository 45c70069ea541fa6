// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the nbcharts CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the nbcharts CLI.
var rootCmd = &cobra.Command{
	Use:   "nbcharts",
	Short: "Export Plotly charts from Jupyter notebooks as responsive HTML",
	Long: `nbcharts reads a Jupyter notebook's cached cell outputs, extracts every
embedded Plotly figure, and writes each one as a standalone, responsive
HTML page suitable for iframe embedding.

Each stage is a subcommand: export writes the chart pages, gallery builds
an index.html over them.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./nbcharts.yaml or ~/.config/nbcharts/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("nbcharts")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "nbcharts"))
		}
	}

	viper.SetEnvPrefix("NBCHARTS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
