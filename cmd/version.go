package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Displays the dojo build, the Go version it was built with and the
toolchain binary exercises are verified with.`,
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()
			printVersion(cmd, info)
		},
	}
}

// printVersion writes build details. info may be nil when the binary carries no build info.
func printVersion(cmd *cobra.Command, info *debug.BuildInfo) {
	if info == nil || info.Main.Version == "" {
		cmd.Println("version: unknown")
	} else {
		cmd.Println("dojo version\t", info.Main.Version)
		cmd.Println("go version\t", info.GoVersion)

		revision, modified := vcsRevision(info)
		if revision != "" {
			if modified {
				revision += " (modified)"
			}

			cmd.Println("commit\t\t", revision)
		}
	}

	cmd.Println("toolchain\t", viper.GetString(toolchainBinaryKey))
}

func vcsRevision(info *debug.BuildInfo) (string, bool) {
	var (
		revision string
		modified bool
	)

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	return revision, modified
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
