package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dojo.dev/pkg/dojo/internal/domain"
	m "dojo.dev/pkg/dojo/internal/model"
)

const watchLongDescription = `Watch the exercise directory and re-verify the course whenever a file changes.

Type commands while watching:
  hint   show the hint for the failing exercise
  clear  clear the screen
  help   list commands
  quit   leave watch mode`

var watchDirFlag string
var watchDebounceFlag time.Duration
var watchInitialPassFlag bool

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-verify exercises on every change",
		Long:  watchLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Watch(cmd.Context(), domain.WatchArgs{
				ProjectArgs: projectArgs(),
				Dir:         m.Path(viper.GetString(watchDirKey)),
				Debounce:    durationSetting(watchDebounceKey, defaultDebounce),
				InitialPass: viper.GetBool(watchInitialPassKey),
				ShowOutput:  viper.GetBool(showOutputKey),
			})
		},
	}

	configureWatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func configureWatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&watchDirFlag, watchDirFlagName, defaultWatchDir, "directory to watch, relative to the manifest")
	bindFlagToConfig(cmd.Flags().Lookup(watchDirFlagName), watchDirKey)

	cmd.Flags().DurationVar(&watchDebounceFlag, debounceFlagName, defaultDebounce, "quiet period after the last change before verifying")
	bindFlagToConfig(cmd.Flags().Lookup(debounceFlagName), watchDebounceKey)

	cmd.Flags().BoolVar(&watchInitialPassFlag, initialPassFlag, defaultInitialPass, "verify once when watching starts")
	bindFlagToConfig(cmd.Flags().Lookup(initialPassFlag), watchInitialPassKey)
}
