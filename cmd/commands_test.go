package cmd

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dojo.dev/pkg/dojo/internal/domain"
	domainmocks "dojo.dev/pkg/dojo/internal/domain/mocks"
	m "dojo.dev/pkg/dojo/internal/model"
)

// withMockWorkflow swaps the shared workflow and returns a root command
// carrying sub, logging into a temp dir.
func withMockWorkflow(t *testing.T, sub *cobra.Command) (*domainmocks.MockWorkflow, *cobra.Command) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() {
		workflow = originalWorkflow

		// Rebind config keys to fresh, unset flags.
		newRootCmd()
		newWatchCmd()
	})

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return mockWorkflow, cmd
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()

	logFile := filepath.Join(t.TempDir(), "dojo.log")
	cmd.SetArgs(append([]string{"--log-file", logFile}, args...))

	return cmd.Execute()
}

func TestVerifyCmd(t *testing.T) {
	mockWorkflow, cmd := withMockWorkflow(t, newVerifyCmd())

	mockWorkflow.EXPECT().Verify(mock.Anything, domain.VerifyArgs{
		ProjectArgs: domain.ProjectArgs{Manifest: "course/exercises.yaml", Marker: domain.DefaultMarker},
		ShowOutput:  true,
	}).Return(nil).Once()

	err := execute(t, cmd, "verify", "-m", "course/exercises.yaml", "--show-output")
	require.NoError(t, err)
}

func TestVerifyCmd_Defaults(t *testing.T) {
	mockWorkflow, cmd := withMockWorkflow(t, newVerifyCmd())

	mockWorkflow.EXPECT().Verify(mock.Anything, mock.MatchedBy(func(args domain.VerifyArgs) bool {
		return args.Manifest == m.Path(defaultManifest) && !args.ShowOutput
	})).Return(nil).Once()

	require.NoError(t, execute(t, cmd, "verify"))
}

func TestVerifyCmd_PropagatesFailure(t *testing.T) {
	mockWorkflow, cmd := withMockWorkflow(t, newVerifyCmd())

	mockWorkflow.EXPECT().Verify(mock.Anything, mock.Anything).Return(m.ErrVerificationFailed).Once()

	err := execute(t, cmd, "verify")
	require.ErrorIs(t, err, m.ErrVerificationFailed)
}

func TestVerifyCmd_RejectsArgs(t *testing.T) {
	_, cmd := withMockWorkflow(t, newVerifyCmd())

	require.Error(t, execute(t, cmd, "verify", "extra"))
}

func TestRunCmd(t *testing.T) {
	mockWorkflow, cmd := withMockWorkflow(t, newRunCmd())

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Name == "variables1" && !args.ShowOutput
	})).Return(nil).Once()

	require.NoError(t, execute(t, cmd, "run", "variables1"))
}

func TestRunCmd_RequiresName(t *testing.T) {
	_, cmd := withMockWorkflow(t, newRunCmd())

	require.Error(t, execute(t, cmd, "run"))
}

func TestHintCmd(t *testing.T) {
	mockWorkflow, cmd := withMockWorkflow(t, newHintCmd())

	mockWorkflow.EXPECT().Hint(mock.Anything, mock.MatchedBy(func(args domain.HintArgs) bool {
		return args.Name == "variables1" && args.Manifest == "other.yaml"
	})).Return(nil).Once()

	require.NoError(t, execute(t, cmd, "--manifest", "other.yaml", "hint", "variables1"))
}

func TestHintCmd_NotFound(t *testing.T) {
	mockWorkflow, cmd := withMockWorkflow(t, newHintCmd())

	mockWorkflow.EXPECT().Hint(mock.Anything, mock.Anything).Return(m.ErrExerciseNotFound).Once()

	require.ErrorIs(t, execute(t, cmd, "hint", "nope"), m.ErrExerciseNotFound)
}

func TestListCmd(t *testing.T) {
	mockWorkflow, cmd := withMockWorkflow(t, newListCmd())

	mockWorkflow.EXPECT().List(mock.Anything, domain.ListArgs{
		ProjectArgs: domain.ProjectArgs{Manifest: m.Path(defaultManifest), Marker: domain.DefaultMarker},
	}).Return(nil).Once()

	require.NoError(t, execute(t, cmd, "list"))
}

func TestWatchCmd(t *testing.T) {
	mockWorkflow, cmd := withMockWorkflow(t, newWatchCmd())

	mockWorkflow.EXPECT().Watch(mock.Anything, domain.WatchArgs{
		ProjectArgs: domain.ProjectArgs{Manifest: m.Path(defaultManifest), Marker: domain.DefaultMarker},
		Dir:         "src",
		Debounce:    time.Second,
		InitialPass: false,
		ShowOutput:  true,
	}).Return(nil).Once()

	err := execute(t, cmd, "--show-output", "watch", "--dir", "src", "--debounce", "1s", "--initial-pass=false")
	require.NoError(t, err)
}

func TestWatchCmd_Defaults(t *testing.T) {
	mockWorkflow, cmd := withMockWorkflow(t, newWatchCmd())

	mockWorkflow.EXPECT().Watch(mock.Anything, mock.MatchedBy(func(args domain.WatchArgs) bool {
		return args.Dir == m.Path(defaultWatchDir) && args.Debounce == defaultDebounce && args.InitialPass
	})).Return(nil).Once()

	require.NoError(t, execute(t, cmd, "watch"))
}

func TestNewWatchCmd(t *testing.T) {
	cmd := newWatchCmd()
	t.Cleanup(func() { newWatchCmd() })

	assert.Equal(t, "watch", cmd.Use)
	assert.Equal(t, watchLongDescription, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("dir"))
	assert.NotNil(t, cmd.Flags().Lookup("debounce"))
	assert.NotNil(t, cmd.Flags().Lookup("initial-pass"))
}
