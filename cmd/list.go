package cmd

import (
	"github.com/spf13/cobra"

	"dojo.dev/pkg/dojo/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List exercises and their status",
		Long: `List the exercises in manifest order. An exercise counts as done once its
sources no longer contain the not-done marker.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{ProjectArgs: projectArgs()})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
