package cmd

import (
	"github.com/spf13/cobra"

	"dojo.dev/pkg/dojo/internal/domain"
)

// hintCmd represents the hint command.
var hintCmd = newHintCmd()

func newHintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hint <name>",
		Short: "Show the hint for an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Hint(cmd.Context(), domain.HintArgs{
				ProjectArgs: projectArgs(),
				Name:        args[0],
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(hintCmd)
}
