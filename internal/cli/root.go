// Package cli provides the root command and main execution flow for
// pacbuild.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/p4th0r/pacbuild/internal/allowlist"
	"github.com/p4th0r/pacbuild/internal/baseline"
	"github.com/p4th0r/pacbuild/internal/config"
	"github.com/p4th0r/pacbuild/internal/logging"
	"github.com/p4th0r/pacbuild/internal/pacfile"
	"github.com/p4th0r/pacbuild/internal/reconcile"
)

// NewRootCmd creates the root command for pacbuild.
func NewRootCmd(version ...string) *cobra.Command {
	ver := "dev"
	if len(version) > 0 && version[0] != "" {
		ver = version[0]
	}
	cfg := config.New()
	var configPath string

	cmd := &cobra.Command{
		Use:   "pacbuild [OPTIONS]",
		Short: "Generate proxy.pac files for Zscaler ZIA DR mode",
		Long: `pacbuild converts a domain allow-list into a PAC routing policy for
Zscaler ZIA Disaster Recovery mode.

Allow-listed domains connect DIRECT; everything else routes to a loopback
proxy with no listener, which blocks the traffic. Entries already covered
by Zscaler's pre-selected destinations list are removed before rendering,
and the result is validated before it is written.

Example:
  pacbuild --allow-list allow-list.txt --output proxy.pac
  pacbuild --skip-dedup -v`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := applyConfigFile(cmd, cfg, configPath); err != nil {
					return err
				}
			}
			return runPacbuild(cfg)
		},
	}

	AddFlags(cmd, cfg, &configPath)

	cmd.AddCommand(NewVersionCmd(ver))
	cmd.AddCommand(NewCompletionCmd())

	return cmd
}

func runPacbuild(cfg *config.Config) error {
	logger := logging.New(cfg.Quiet, cfg.Verbose)

	if err := cfg.Validate(); err != nil {
		return err
	}

	// 1. Parse allow-list. An unopenable path is fatal; bad lines are not.
	list, err := allowlist.ParseFile(cfg.AllowList)
	if err != nil {
		return err
	}
	for _, rej := range list.Rejected {
		logger.Warnf("skipping line %d (%s): %s", rej.Line, rej.Reason, rej.Text)
	}
	logger.Infof("Loaded %d domain(s) from %s (%d line(s) rejected)",
		list.Loaded(), cfg.AllowList, len(list.Rejected))

	// 2. Fetch the pre-selected destinations list unless skipped.
	var set *baseline.Set
	if cfg.SkipDedup {
		logger.Debug("Deduplication skipped by configuration")
	} else {
		set, err = baseline.Fetch(context.Background(), baseline.FetchConfig{
			URL:       cfg.BaselineURL,
			Timeout:   time.Duration(cfg.FetchTimeout) * time.Second,
			UserAgent: cfg.UserAgent,
		})
		if err != nil {
			// Not fatal: block-by-default holds without baseline knowledge.
			logger.Warnf("could not fetch pre-selected destinations: %v", err)
			set = nil
		} else {
			logger.Debugf("Baseline contains %d domain(s)", set.Len())
		}
	}

	// 3. Reconcile.
	result := reconcile.Apply(list, set)
	if len(result.Removed) > 0 {
		logger.Infof("Removed %d domain(s) already in the pre-selected list: %s",
			len(result.Removed), strings.Join(result.Removed, ", "))
	}

	// 4. Render.
	content, err := pacfile.Render(result.Kept, cfg.TemplateDir)
	if err != nil {
		return err
	}

	// 5. Validate before anything touches the output path.
	if cfg.SkipValidation {
		logger.Debug("Validation skipped by configuration")
	} else {
		report := pacfile.Validate(content, pacfile.GojaChecker{})
		logValidation(logger, report)
		if !report.OK() {
			return validationError(report)
		}
	}

	// 6. Write output.
	if err := os.WriteFile(cfg.Output, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}
	logger.Infof("Generated %s with %d domain(s)", cfg.Output, len(result.Kept))

	return nil
}

func logValidation(logger *log.Logger, report pacfile.Report) {
	if report.Structural == pacfile.CheckPassed {
		logger.Debug("PAC file passed structural validation")
	}
	switch report.Syntax {
	case pacfile.CheckPassed:
		logger.Debug("PAC file passed JavaScript syntax validation")
	case pacfile.CheckSkipped:
		logger.Warn("no JavaScript parser available, syntax check skipped")
	}
}

func validationError(report pacfile.Report) error {
	if report.Structural == pacfile.CheckFailed {
		return fmt.Errorf("PAC file validation failed: missing %s",
			strings.Join(report.Missing, ", "))
	}
	return fmt.Errorf("PAC file validation failed: %s", report.SyntaxErr)
}

// applyConfigFile layers a YAML config file under the flags: values
// from the file apply only where the corresponding flag was not set
// explicitly on the command line.
func applyConfigFile(cmd *cobra.Command, cfg *config.Config, path string) error {
	fileCfg := config.New()
	if err := fileCfg.LoadFile(path); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("allow-list") {
		cfg.AllowList = fileCfg.AllowList
	}
	if !flags.Changed("output") {
		cfg.Output = fileCfg.Output
	}
	if !flags.Changed("template-dir") {
		cfg.TemplateDir = fileCfg.TemplateDir
	}
	if !flags.Changed("baseline-url") {
		cfg.BaselineURL = fileCfg.BaselineURL
	}
	if !flags.Changed("timeout") {
		cfg.FetchTimeout = fileCfg.FetchTimeout
	}
	if !flags.Changed("skip-dedup") {
		cfg.SkipDedup = fileCfg.SkipDedup
	}
	if !flags.Changed("skip-validation") {
		cfg.SkipValidation = fileCfg.SkipValidation
	}
	cfg.UserAgent = fileCfg.UserAgent

	return nil
}
