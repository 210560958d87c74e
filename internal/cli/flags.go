// Package cli provides the command-line interface for pacbuild.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/p4th0r/pacbuild/internal/config"
)

// AddFlags adds all flags to the root command.
func AddFlags(cmd *cobra.Command, cfg *config.Config, configPath *string) {
	cmd.Flags().StringVar(&cfg.AllowList, "allow-list", cfg.AllowList, "Path to the domain allow-list (one domain per line)")
	cmd.Flags().StringVar(&cfg.Output, "output", cfg.Output, "Output path for the generated PAC file")
	cmd.Flags().StringVar(&cfg.TemplateDir, "template-dir", "", "Directory containing proxy.pac.tmpl (default: embedded template)")
	cmd.Flags().StringVar(&cfg.BaselineURL, "baseline-url", cfg.BaselineURL, "URL of the Zscaler pre-selected destinations list")
	cmd.Flags().IntVar(&cfg.FetchTimeout, "timeout", cfg.FetchTimeout, "Baseline fetch timeout in seconds")
	cmd.Flags().BoolVar(&cfg.SkipDedup, "skip-dedup", false, "Skip deduplication against the pre-selected destinations list")
	cmd.Flags().BoolVar(&cfg.SkipValidation, "skip-validation", false, "Skip PAC file validation")
	cmd.Flags().StringVar(configPath, "config", "", "Path to a YAML config file (explicit flags override file values)")
	cmd.Flags().BoolVarP(&cfg.Quiet, "quiet", "q", false, "Suppress progress output")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Show debug output")
}
