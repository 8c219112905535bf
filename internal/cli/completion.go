package cli

import (
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/qrgen/pkg/qr"
)

// completionGenerators maps each supported shell to its cobra generator.
var completionGenerators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        (*cobra.Command).GenZshCompletion,
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": (*cobra.Command).GenPowerShellCompletionWithDesc,
}

func (c *CLI) completionCommand() *cobra.Command {
	shells := slices.Sorted(maps.Keys(completionGenerators))

	return &cobra.Command{
		Use:   "completion <shell>",
		Short: "Print a shell completion script",
		Long: `Print the completion script for bash, fish, powershell or zsh.

  source <(qrgen completion bash)
  qrgen completion fish | source`,
		DisableFlagsInUseLine: true,
		ValidArgs:             shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionGenerators[args[0]](cmd.Root(), c.out)
		},
	}
}

// completeLevel offers the error-correction level names for --level.
func completeLevel(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(qr.Levels))
	for i, l := range qr.Levels {
		names[i] = string(l)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
