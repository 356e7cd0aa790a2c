package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a dojo.yaml with the current settings",
		Long: `Create a dojo.yaml in the current directory holding the manifest path, watch
and toolchain settings, and the not-done marker, so a course can pin them.
An existing dojo.yaml is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := viper.SafeWriteConfigAs(targetPath); err != nil {
				slog.Error("Failed to write config file", "path", targetPath, "error", err)
				return fmt.Errorf("write %s: %w", targetPath, err)
			}

			slog.Info("Wrote config file", "path", targetPath)
			cmd.Printf("Wrote %s. Point %q at your exercise manifest.\n", targetPath, manifestKey)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
