package main

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for assetmirror.

To load completions:

Bash:
  $ source <(assetmirror completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ assetmirror completion bash > /etc/bash_completion.d/assetmirror
  # macOS:
  $ assetmirror completion bash > $(brew --prefix)/etc/bash_completion.d/assetmirror

Zsh:
  $ source <(assetmirror completion zsh)
  # To load completions for each session, execute once:
  $ assetmirror completion zsh > "${fpath[1]}/_assetmirror"

Fish:
  $ assetmirror completion fish | source
  # To load completions for each session, execute once:
  $ assetmirror completion fish > ~/.config/fish/completions/assetmirror.fish

PowerShell:
  PS> assetmirror completion powershell | Out-String | Invoke-Expression
  # To load completions for each session, execute once:
  PS> assetmirror completion powershell > assetmirror.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
