// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/archclean/internal/cleaner"
	"github.com/pdiddy/archclean/pkg/types"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [file]",
	Short: "Remove implementation code from an architecture document",
	Long: `Clean filters one markdown document in a single pass. Bodies of known
implementation classes collapse to one-line placeholders, and fenced csharp/cs
code blocks longer than the threshold that match implementation patterns are
replaced entirely.

The target path is the positional argument, or the "target" config/env value
(ARCHCLEAN_TARGET) when the argument is omitted. On success archclean writes
<file>.backup and <file>.cleaned and prints a line-count summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg := cleanConfig(cmd, args)
	if cfg.Target == "" {
		return fmt.Errorf("target file required: pass a path or set ARCHCLEAN_TARGET")
	}

	rules := cleaner.DefaultRules()
	if cfg.FenceBodyLimit > 0 {
		rules.FenceBodyLimit = cfg.FenceBodyLimit
	}

	report, err := cleaner.CleanFile(cleaner.New(rules), cfg.Target, cfg.DryRun, os.Stdout)
	if err != nil {
		return err
	}

	if cfg.ReportPath != "" && !cfg.DryRun {
		if err := cleaner.WriteReport(report, cfg.ReportPath, cfg.ReportFormat); err != nil {
			return err
		}
		fmt.Printf("Report saved to: %s\n", cfg.ReportPath)
	}
	return nil
}

// cleanConfig resolves the clean configuration from flags, then viper
// (config file and environment), then defaults.
func cleanConfig(cmd *cobra.Command, args []string) types.CleanConfig {
	cfg := types.CleanConfig{
		Target:         viper.GetString("target"),
		FenceBodyLimit: viper.GetInt("fence_body_limit"),
		ReportFormat:   types.ReportYAML,
	}
	if len(args) > 0 {
		cfg.Target = args[0]
	}

	cfg.DryRun, _ = cmd.Flags().GetBool("dry-run")
	if p, _ := cmd.Flags().GetString("report"); p != "" {
		cfg.ReportPath = p
	}
	if f, _ := cmd.Flags().GetString("report-format"); f != "" {
		cfg.ReportFormat = types.ReportFormat(f)
	}
	if cmd.Flags().Changed("fence-body-limit") {
		cfg.FenceBodyLimit, _ = cmd.Flags().GetInt("fence-body-limit")
	}
	return cfg
}

func init() {
	cleanCmd.Flags().Bool("dry-run", false, "run the filter and print the summary without writing files")
	cleanCmd.Flags().String("report", "", "write a removal report to this path")
	cleanCmd.Flags().String("report-format", "yaml", "report format: yaml or json")
	cleanCmd.Flags().Int("fence-body-limit", 0, "body lines a flagged code fence must exceed to be removed (default 20)")

	rootCmd.AddCommand(cleanCmd)
}
