package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "dojo.dev/pkg/dojo/internal/model"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "dojo", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{"manifest", "show-output", "log-file", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	assert.Equal(t, "m", cmd.PersistentFlags().Lookup("manifest").Shorthand)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	t.Cleanup(func() { newRootCmd() })

	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"--log-file", t.TempDir() + "/dojo.log"})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "stops at the first one")
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	for _, want := range []string{"verify", "watch", "run", "hint", "list", "init", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestInit(t *testing.T) {
	// Test that init() created all the necessary instances
	assert.NotNil(t, ui)
	assert.NotNil(t, manifestAdapter)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, toolchainAdapter)
	assert.NotNil(t, watchAdapter)
	assert.NotNil(t, workflow)
}

func TestExecute(t *testing.T) {
	// Save original rootCmd
	originalRootCmd := rootCmd

	// Create a mock command that succeeds
	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	// Execute should not exit on success
	Execute()

	// Restore
	rootCmd = originalRootCmd
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd

		Execute()

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		err        error
		wantOutput string
		dontWant   string
	}{
		{
			name:       "configuration error is printed",
			env:        "config",
			err:        m.NewConfigError("load manifest", fmt.Errorf("manifest is empty")),
			wantOutput: "Error: configuration error: load manifest: manifest is empty",
		},
		{
			name:     "verification failure is not printed again",
			env:      "verification",
			err:      m.ErrVerificationFailed,
			dontWant: "Error:",
		},
	}

	if kind := os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL"); kind != "" {
		for _, tt := range tests {
			if tt.env != kind {
				continue
			}

			mockCmd := &cobra.Command{
				Use:           "test",
				SilenceErrors: true,
				RunE: func(_ *cobra.Command, _ []string) error {
					return tt.err
				},
			}
			mockCmd.SetOut(os.Stdout)
			mockCmd.SetErr(os.Stderr)
			mockCmd.SetArgs([]string{})
			rootCmd = mockCmd

			Execute() // This should call os.Exit(1)
		}

		return
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestExecute_ProcessLevel_Failure$")
			cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL="+tt.env)
			output, err := cmd.CombinedOutput()

			var exitErr *exec.ExitError
			require.ErrorAs(t, err, &exitErr, "output: %s", output)
			assert.Equal(t, 1, exitErr.ExitCode())

			if tt.wantOutput != "" {
				assert.Contains(t, string(output), tt.wantOutput)
			}

			if tt.dontWant != "" {
				assert.NotContains(t, string(output), tt.dontWant)
			}
		})
	}
}
