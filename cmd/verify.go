package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dojo.dev/pkg/dojo/internal/domain"
)

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify every exercise in order",
		Long: `Verify the exercises in manifest order and stop at the first one that fails.
The exit status is non-zero unless every exercise passes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Verify(cmd.Context(), domain.VerifyArgs{
				ProjectArgs: projectArgs(),
				ShowOutput:  viper.GetBool(showOutputKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
