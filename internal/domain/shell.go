package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dojo.dev/pkg/dojo/internal/adapter"
	"dojo.dev/pkg/dojo/internal/controller"
)

// Shell commands. Matching is exact and case-sensitive.
const (
	CommandHint  = "hint"
	CommandHelp  = "help"
	CommandClear = "clear"
	CommandQuit  = "quit"
)

// maxReadErrors bounds consecutive console failures before the shell gives up.
const maxReadErrors = 5

// ErrShellQuit is returned by Shell.Run when the learner asks to leave watch mode.
var ErrShellQuit = errors.New("quit requested")

// Shell is the interactive command loop that runs next to the watch engine.
// It only reads the WatchState, so it stays responsive during a pass.
type Shell struct {
	console adapter.ConsoleAdapter
	state   *WatchState
	ui      controller.UI
}

// NewShell constructs a Shell reading from console.
func NewShell(console adapter.ConsoleAdapter, state *WatchState, ui controller.UI) *Shell {
	return &Shell{
		console: console,
		state:   state,
		ui:      ui,
	}
}

// Run reads commands until input ends, ctx is canceled (nil), the learner
// quits (ErrShellQuit) or the console keeps failing.
// Cancel the console to unblock a pending read.
func (s *Shell) Run(ctx context.Context) error {
	failures := 0

	for {
		line, err := s.console.ReadLine()

		if ctx.Err() != nil {
			return nil
		}

		if err != nil {
			if errors.Is(err, adapter.ErrConsoleClosed) {
				slog.Debug("Console closed")
				return nil
			}

			failures++
			slog.Warn("Console read failed", "error", err, "consecutive", failures)

			if failures >= maxReadErrors {
				return fmt.Errorf("read console: %w", err)
			}

			s.ui.DisplayError(ctx, fmt.Errorf("read console: %w", err))

			continue
		}

		failures = 0

		if err := s.handle(ctx, line); err != nil {
			return err
		}
	}
}

func (s *Shell) handle(ctx context.Context, line string) error {
	switch line {
	case "":
		return nil
	case CommandHint:
		failure, ok := s.state.Current()
		if !ok {
			s.ui.DisplayNoActiveFailure(ctx)
			return nil
		}

		s.ui.DisplayHint(ctx, failure.Exercise, failure.Hint)
	case CommandHelp:
		s.ui.DisplayShellHelp(ctx)
	case CommandClear:
		s.ui.Clear(ctx)
	case CommandQuit:
		slog.Info("Quit requested from console")
		return ErrShellQuit
	default:
		s.ui.DisplayUnknownCommand(ctx, line)
	}

	return nil
}
