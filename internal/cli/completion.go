package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/overlaykit/pkg/scene"
)

func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for overlaykit.

Bash:
  $ source <(overlaykit completion bash)

Zsh:
  $ overlaykit completion zsh > "${fpath[1]}/_overlaykit"

Fish:
  $ overlaykit completion fish > ~/.config/fish/completions/overlaykit.fish

PowerShell:
  PS> overlaykit completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// completeStrategies completes --strategy values.
func completeStrategies(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return scene.Strategies, cobra.ShellCompDirectiveNoFileComp
}

// completeSceneFiles limits positional completion to scene files.
func completeSceneFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"toml", "json"}, cobra.ShellCompDirectiveFilterFileExt
}
