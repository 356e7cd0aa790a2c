// Package cmd provides the root command and CLI setup for dojo.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"dojo.dev/pkg/dojo/internal/adapter"
	"dojo.dev/pkg/dojo/internal/controller"
	"dojo.dev/pkg/dojo/internal/domain"
	m "dojo.dev/pkg/dojo/internal/model"
)

var manifestAdapter adapter.ManifestAdapter
var fsAdapter adapter.SourceFSAdapter
var toolchainAdapter adapter.ToolchainAdapter
var watchAdapter adapter.WatchAdapter
var workflow domain.Workflow
var ui controller.UI

var manifestFlag string
var showOutputFlag bool
var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	manifestAdapter = adapter.NewYAMLManifestAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	toolchainAdapter = adapter.NewLocalToolchainAdapter(
		viper.GetString(toolchainBinaryKey),
		durationSetting(toolchainTimeoutKey, defaultToolchainTimeout),
	)
	watchAdapter = adapter.NewFSNotifyWatchAdapter(fsAdapter)
	workflow = domain.NewWorkflow(
		manifestAdapter,
		toolchainAdapter,
		fsAdapter,
		watchAdapter,
		openConsole,
		ui,
		domain.NewRealClock(),
	)
}

const rootLongDescription = `Dojo walks you through a course of small Go exercises.

Exercises are listed in order in a manifest. Each one either has to compile
or has to pass its tests. Fix them one by one: dojo stops at the first one
that fails and shows its hint on request.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

// newRootCmd returns a root command with its flags, for tests.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "dojo",
		Short:         "Guided Go exercises",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			warnConfigReadErr(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&manifestFlag, manifestFlagName, "m", viper.GetString(manifestKey), "path to the exercise manifest")
	bindFlagToConfig(flags.Lookup(manifestFlagName), manifestKey)

	flags.BoolVar(&showOutputFlag, showOutputFlagName, viper.GetBool(showOutputKey), "show toolchain output for every exercise")
	bindFlagToConfig(flags.Lookup(showOutputFlagName), showOutputKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		// A failed exercise has already been reported by the UI.
		if !errors.Is(err, m.ErrVerificationFailed) {
			rootCmd.PrintErrln("Error:", err)
		}

		os.Exit(1)
	}
}

func openConsole() (adapter.ConsoleAdapter, error) {
	console, err := adapter.NewCancelableConsoleAdapter(os.Stdin)
	if err != nil {
		return nil, err
	}

	return console, nil
}

func projectArgs() domain.ProjectArgs {
	return domain.ProjectArgs{
		Manifest: m.Path(viper.GetString(manifestKey)),
		Marker:   viper.GetString(markerKey),
	}
}
