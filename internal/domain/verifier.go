package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"dojo.dev/pkg/dojo/internal/adapter"
	"dojo.dev/pkg/dojo/internal/controller"
	m "dojo.dev/pkg/dojo/internal/model"
)

// DefaultMarker is the comment learners delete once they consider an exercise finished.
const DefaultMarker = "I AM NOT DONE"

// testFailureMarker is printed by `go test -v` and by the default reporter for each failing test.
const testFailureMarker = "--- FAIL"

// Verifier runs one exercise through the toolchain and classifies the result.
type Verifier interface {
	// Verify returns Pass or Fail. An error means the exercise could not be
	// judged at all: the toolchain is unavailable or ctx was canceled.
	Verify(ctx context.Context, exercise m.Exercise, showOutput bool) (m.Outcome, error)
}

// VerifierConfig locates exercises on disk.
type VerifierConfig struct {
	// Root is the directory exercise paths are relative to.
	Root m.Path
	// Marker, when non-empty, keeps an exercise failing while its sources contain it.
	Marker string
}

type verifier struct {
	toolchain adapter.ToolchainAdapter
	fs        adapter.SourceFSAdapter
	ui        controller.UI
	config    VerifierConfig
}

// NewVerifier constructs a Verifier backed by the provided adapters.
func NewVerifier(toolchain adapter.ToolchainAdapter, fs adapter.SourceFSAdapter, ui controller.UI, config VerifierConfig) Verifier {
	return &verifier{
		toolchain: toolchain,
		fs:        fs,
		ui:        ui,
		config:    config,
	}
}

func (v *verifier) Verify(ctx context.Context, exercise m.Exercise, showOutput bool) (m.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return m.Outcome{}, err
	}

	result, err := v.runTool(ctx, exercise)
	if err != nil {
		slog.Error("Failed to run toolchain", "exercise", exercise.Name, "error", err)
		return m.Outcome{}, fmt.Errorf("verify %s: %w", exercise.Name, err)
	}

	// A process killed by shutdown is not the learner's failure.
	if err := ctx.Err(); err != nil {
		return m.Outcome{}, err
	}

	if showOutput {
		v.ui.DisplayToolOutput(ctx, exercise, result.Output)
	}

	if !toolPassed(exercise.Mode, result) {
		slog.Debug("Exercise failed", "exercise", exercise.Name, "exitCode", result.ExitCode)
		return m.FailOutcome(result.Output), nil
	}

	return v.checkMarker(ctx, exercise, result.Output)
}

func (v *verifier) runTool(ctx context.Context, exercise m.Exercise) (m.ToolResult, error) {
	switch exercise.Mode {
	case m.ModeCompile:
		return v.toolchain.Build(ctx, v.config.Root, exercise.Path)
	case m.ModeTest:
		return v.toolchain.Test(ctx, v.config.Root, exercise.Path)
	default:
		return m.ToolResult{}, m.NewConfigError("verify", fmt.Errorf("exercise %q: unknown mode %q", exercise.Name, exercise.Mode))
	}
}

func (v *verifier) checkMarker(ctx context.Context, exercise m.Exercise, output string) (m.Outcome, error) {
	if v.config.Marker == "" {
		return m.PassOutcome(output), nil
	}

	path := v.fs.JoinPath(string(v.config.Root), string(exercise.Path))

	pending, err := v.fs.HasMarker(ctx, path, v.config.Marker)
	if err != nil {
		slog.Error("Failed to scan exercise sources", "exercise", exercise.Name, "path", path, "error", err)
		return m.Outcome{}, fmt.Errorf("verify %s: %w", exercise.Name, err)
	}

	if pending {
		slog.Debug("Exercise still marked as not done", "exercise", exercise.Name)

		return m.FailOutcome(fmt.Sprintf("%s%s still contains the %q comment. Remove it to move on.\n",
			output, exercise.Path, v.config.Marker)), nil
	}

	return m.PassOutcome(output), nil
}

func toolPassed(mode m.Mode, result m.ToolResult) bool {
	if result.ExitCode != 0 {
		return false
	}

	return mode != m.ModeTest || !strings.Contains(result.Output, testFailureMarker)
}
