package autocomplete

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const longHelpTemplate = `To load completions:

Bash:
  $ source <({{name}} completion bash)

  To load completions for each session, execute once:
  $ {{name}} completion bash > /etc/bash_completion.d/{{name}}

Zsh:
  $ {{name}} completion zsh > "${fpath[1]}/_{{name}}"

  You will need to start a new shell for this setup to take effect.

Fish:
  $ {{name}} completion fish > ~/.config/fish/completions/{{name}}.fish

PowerShell:
  PS> {{name}} completion powershell | Out-String | Invoke-Expression
`

// Command returns cobra command structure for autocomplete routine of the
// named application.
func Command(name string) *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate completion script",
		Long:                  strings.ReplaceAll(longHelpTemplate, "{{name}}", name),
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			default:
				return fmt.Errorf("unsupported shell %q", args[0])
			}
		},
	}
}
