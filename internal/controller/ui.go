// Package controller provides output adapters for displaying verification progress.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "dojo.dev/pkg/dojo/internal/model"
)

// UI defines the interface for everything the learner sees.
// Implementations can use different output methods (simple text, TUI, etc).
// Methods may be called from several goroutines at once.
type UI interface {
	DisplayWatching(ctx context.Context, dir m.Path)
	DisplayVerifying(ctx context.Context, exercise m.Exercise, index int, total int)
	DisplayPassed(ctx context.Context, exercise m.Exercise)
	DisplayFailed(ctx context.Context, exercise m.Exercise, outcome m.Outcome)
	DisplayToolOutput(ctx context.Context, exercise m.Exercise, output string)
	DisplayHintPrompt(ctx context.Context, exercise m.Exercise)
	DisplayCompleted(ctx context.Context, total int)
	DisplayHint(ctx context.Context, exercise string, hint string)
	DisplayNoActiveFailure(ctx context.Context)
	DisplayShellHelp(ctx context.Context)
	DisplayUnknownCommand(ctx context.Context, line string)
	DisplayError(ctx context.Context, err error)
	DisplayExerciseList(ctx context.Context, exercises []m.ExerciseStatus) error
	Clear(ctx context.Context)
}

// NewUI returns the interactive UI on a terminal and the plain one otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
