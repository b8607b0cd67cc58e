// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the archclean CLI.
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

// rootCmd is the base command for the archclean CLI.
var rootCmd = &cobra.Command{
	Use:   "archclean",
	Short: "Strip implementation code from markdown architecture documents",
	Long: `archclean removes implementation-level code fragments from a markdown
architecture document, keeping only prose and architectural content. Known
class bodies are replaced by placeholders, and fenced code blocks that look
like implementation code are collapsed.

The original file is never modified: archclean writes a verbatim backup and
a cleaned copy next to the input.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./archclean.yaml or ~/.config/archclean/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("archclean")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "archclean"))
		}
	}

	viper.SetEnvPrefix("ARCHCLEAN")
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
