package domain_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "dojo.dev/pkg/dojo/internal/adapter/mocks"
	controllermocks "dojo.dev/pkg/dojo/internal/controller/mocks"
	"dojo.dev/pkg/dojo/internal/domain"
	m "dojo.dev/pkg/dojo/internal/model"
)

const testRoot = m.Path("course")

type verifierFixture struct {
	toolchain *adaptermocks.MockToolchainAdapter
	fs        *adaptermocks.MockSourceFSAdapter
	ui        *controllermocks.MockUI
}

func newVerifierFixture(t *testing.T) verifierFixture {
	t.Helper()

	f := verifierFixture{
		toolchain: adaptermocks.NewMockToolchainAdapter(t),
		fs:        adaptermocks.NewMockSourceFSAdapter(t),
		ui:        controllermocks.NewMockUI(t),
	}

	f.fs.EXPECT().JoinPath(mock.Anything, mock.Anything).
		RunAndReturn(func(elem ...string) m.Path { return m.Path(filepath.Join(elem...)) }).
		Maybe()

	return f
}

func (f verifierFixture) verifier(marker string) domain.Verifier {
	return domain.NewVerifier(f.toolchain, f.fs, f.ui, domain.VerifierConfig{Root: testRoot, Marker: marker})
}

func TestVerifier_Verify(t *testing.T) {
	tests := []struct {
		name       string
		exercise   m.Exercise
		result     m.ToolResult
		marked     bool
		wantStatus m.Status
		wantOutput string
	}{
		{
			name:       "compile passes",
			exercise:   exA,
			result:     m.ToolResult{Output: ""},
			wantStatus: m.Pass,
		},
		{
			name:       "compile fails",
			exercise:   exA,
			result:     m.ToolResult{Output: "./main.go:4:2: declared and not used: x\n", ExitCode: 1},
			wantStatus: m.Fail,
			wantOutput: "declared and not used",
		},
		{
			name:       "tests pass",
			exercise:   exB,
			result:     m.ToolResult{Output: "ok  \texample.com/exercises/b\t0.01s\n"},
			wantStatus: m.Pass,
		},
		{
			name:       "test failure reported with zero exit",
			exercise:   exB,
			result:     m.ToolResult{Output: "--- FAIL: TestSub (0.00s)\n"},
			wantStatus: m.Fail,
			wantOutput: "--- FAIL: TestSub",
		},
		{
			name:       "tests fail",
			exercise:   exB,
			result:     m.ToolResult{Output: "FAIL\texample.com/exercises/b\n", ExitCode: 1},
			wantStatus: m.Fail,
			wantOutput: "FAIL",
		},
		{
			name:       "marker still present",
			exercise:   exA,
			result:     m.ToolResult{Output: ""},
			marked:     true,
			wantStatus: m.Fail,
			wantOutput: `exercises/a still contains the "I AM NOT DONE" comment`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVerifierFixture(t)
			ctx := context.Background()

			switch tt.exercise.Mode {
			case m.ModeCompile:
				f.toolchain.EXPECT().Build(mock.Anything, testRoot, tt.exercise.Path).Return(tt.result, nil).Once()
			case m.ModeTest:
				f.toolchain.EXPECT().Test(mock.Anything, testRoot, tt.exercise.Path).Return(tt.result, nil).Once()
			}

			if tt.result.ExitCode == 0 && tt.wantStatus == m.Pass || tt.marked {
				f.fs.EXPECT().HasMarker(mock.Anything, m.Path(filepath.Join("course", string(tt.exercise.Path))), domain.DefaultMarker).
					Return(tt.marked, nil).Once()
			}

			outcome, err := f.verifier(domain.DefaultMarker).Verify(ctx, tt.exercise, false)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, outcome.Status)
			assert.Contains(t, outcome.Output, tt.wantOutput)
		})
	}
}

func TestVerifier_Verify_NoMarkerConfigured(t *testing.T) {
	f := newVerifierFixture(t)

	f.toolchain.EXPECT().Build(mock.Anything, testRoot, exA.Path).Return(m.ToolResult{}, nil).Once()

	outcome, err := f.verifier("").Verify(context.Background(), exA, false)
	require.NoError(t, err)
	assert.True(t, outcome.Passed())

	f.fs.AssertNotCalled(t, "HasMarker", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifier_Verify_ShowOutput(t *testing.T) {
	f := newVerifierFixture(t)

	f.toolchain.EXPECT().Test(mock.Anything, testRoot, exB.Path).
		Return(m.ToolResult{Output: "ok b\n"}, nil).Once()
	f.ui.EXPECT().DisplayToolOutput(mock.Anything, exB, "ok b\n").Return().Once()

	outcome, err := f.verifier("").Verify(context.Background(), exB, true)
	require.NoError(t, err)
	assert.Equal(t, m.PassOutcome("ok b\n"), outcome)
}

func TestVerifier_Verify_ToolchainUnavailable(t *testing.T) {
	f := newVerifierFixture(t)

	f.toolchain.EXPECT().Build(mock.Anything, testRoot, exA.Path).
		Return(m.ToolResult{}, fmt.Errorf("%w: go: %w", m.ErrToolUnavailable, errors.New("not found"))).Once()

	_, err := f.verifier(domain.DefaultMarker).Verify(context.Background(), exA, false)

	require.ErrorIs(t, err, m.ErrToolUnavailable)
	require.ErrorIs(t, err, m.ErrConfiguration)
}

func TestVerifier_Verify_UnknownMode(t *testing.T) {
	f := newVerifierFixture(t)

	_, err := f.verifier("").Verify(context.Background(), m.Exercise{Name: "x", Mode: "run"}, false)

	require.ErrorIs(t, err, m.ErrConfiguration)
}

func TestVerifier_Verify_MarkerScanError(t *testing.T) {
	f := newVerifierFixture(t)

	f.toolchain.EXPECT().Build(mock.Anything, testRoot, exA.Path).Return(m.ToolResult{}, nil).Once()
	f.fs.EXPECT().HasMarker(mock.Anything, mock.Anything, domain.DefaultMarker).
		Return(false, errors.New("permission denied")).Once()

	_, err := f.verifier(domain.DefaultMarker).Verify(context.Background(), exA, false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestVerifier_Verify_CanceledContext(t *testing.T) {
	f := newVerifierFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.verifier(domain.DefaultMarker).Verify(ctx, exA, false)

	require.ErrorIs(t, err, context.Canceled)
}

func TestVerifier_Verify_CanceledDuringTool(t *testing.T) {
	f := newVerifierFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.toolchain.EXPECT().Build(mock.Anything, testRoot, exA.Path).
		RunAndReturn(func(context.Context, m.Path, m.Path) (m.ToolResult, error) {
			cancel()
			return m.ToolResult{Output: "signal: killed", ExitCode: -1}, nil
		}).Once()

	_, err := f.verifier(domain.DefaultMarker).Verify(ctx, exA, false)

	require.ErrorIs(t, err, context.Canceled)
}
