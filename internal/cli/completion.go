package cli

import (
	"github.com/spf13/cobra"
)

// manifestExts are the manifest extensions offered by shell completion.
var manifestExts = []string{"toml", "yaml", "yml"}

// completeManifests completes manifest arguments with TOML and YAML files.
func completeManifests(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return manifestExts, cobra.ShellCompDirectiveFilterFileExt
}

func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Print a completion script for the given shell. Manifest arguments
complete to .toml, .yaml and .yml files.

  bash:        source <(schemagen completion bash)
  zsh:         schemagen completion zsh > "${fpath[1]}/_schemagen"
  fish:        schemagen completion fish | source
  powershell:  schemagen completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(c.out, true)
			case "zsh":
				return root.GenZshCompletion(c.out)
			case "fish":
				return root.GenFishCompletion(c.out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(c.out)
			}
		},
	}
}
