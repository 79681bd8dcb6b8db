package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for graphwiz.

To load completions:

Bash:
  $ source <(graphwiz completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ graphwiz completion bash > /etc/bash_completion.d/graphwiz
  # macOS:
  $ graphwiz completion bash > $(brew --prefix)/etc/bash_completion.d/graphwiz

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ graphwiz completion zsh > "${fpath[1]}/_graphwiz"

Fish:
  $ graphwiz completion fish | source

  # To load completions for each session, execute once:
  $ graphwiz completion fish > ~/.config/fish/completions/graphwiz.fish

PowerShell:
  PS> graphwiz completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(c.out)
			case "zsh":
				return cmd.Root().GenZshCompletion(c.out)
			case "fish":
				return cmd.Root().GenFishCompletion(c.out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(c.out)
			}
			return nil
		},
	}

	return cmd
}
