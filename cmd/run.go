package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dojo.dev/pkg/dojo/internal/domain"
)

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <name>",
		Short: "Verify a single exercise",
		Long:  "Verify only the named exercise, regardless of whether the ones before it pass.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Run(cmd.Context(), domain.RunArgs{
				ProjectArgs: projectArgs(),
				Name:        args[0],
				ShowOutput:  viper.GetBool(showOutputKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
