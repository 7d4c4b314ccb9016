package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for clean-release.
To load completions:

PowerShell:
  PS> clean-release completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, add the output to your profile:
  PS> clean-release completion powershell >> $PROFILE

Bash:
  $ source <(clean-release completion bash)

Zsh:
  $ clean-release completion zsh > "${fpath[1]}/_clean-release"

Fish:
  $ clean-release completion fish | source
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := cmd.Root()
		switch args[0] {
		case "bash":
			return root.GenBashCompletionV2(os.Stdout, true)
		case "zsh":
			return root.GenZshCompletion(os.Stdout)
		case "fish":
			return root.GenFishCompletion(os.Stdout, true)
		default:
			return root.GenPowerShellCompletionWithDesc(os.Stdout)
		}
	},
}
