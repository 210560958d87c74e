// Package cli provides the completion subcommand for pacbuild.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewCompletionCmd creates the completion subcommand with shell-specific subcommands.
func NewCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for pacbuild.

To load completions:

Bash:
  $ source <(pacbuild completion bash)
  # To load completions for each session, execute once:
  $ pacbuild completion bash > /etc/bash_completion.d/pacbuild

Zsh:
  $ source <(pacbuild completion zsh)
  # To load completions for each session, execute once:
  $ pacbuild completion zsh > "${fpath[1]}/_pacbuild"

Fish:
  $ pacbuild completion fish | source
  # To load completions for each session, execute once:
  $ pacbuild completion fish > ~/.config/fish/completions/pacbuild.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			}
			return nil
		},
	}

	return cmd
}
