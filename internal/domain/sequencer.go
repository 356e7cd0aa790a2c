package domain

import (
	"context"
	"log/slog"

	"dojo.dev/pkg/dojo/internal/controller"
	m "dojo.dev/pkg/dojo/internal/model"
)

// Sequencer walks the registry in order and stops at the first failure.
// Exercises build on each other, so running past a failure only produces
// misleading errors.
type Sequencer interface {
	// RunAll verifies every exercise in order and returns Completed or StoppedAt.
	RunAll(ctx context.Context, registry *Registry, showOutput bool) (m.SequenceResult, error)
	// RunOne verifies only the named exercise.
	RunOne(ctx context.Context, registry *Registry, name string, showOutput bool) (m.Outcome, error)
}

type sequencer struct {
	verifier Verifier
	ui       controller.UI
}

// NewSequencer constructs a Sequencer around verifier.
func NewSequencer(verifier Verifier, ui controller.UI) Sequencer {
	return &sequencer{
		verifier: verifier,
		ui:       ui,
	}
}

func (s *sequencer) RunAll(ctx context.Context, registry *Registry, showOutput bool) (m.SequenceResult, error) {
	total := registry.Len()

	for i := range total {
		exercise := registry.At(i)

		outcome, err := s.verify(ctx, exercise, i, total, showOutput)
		if err != nil {
			return m.SequenceResult{}, err
		}

		if !outcome.Passed() {
			slog.Info("Sequence stopped", "exercise", exercise.Name, "index", i)
			return m.StoppedAt(i), nil
		}
	}

	slog.Info("Sequence completed", "exercises", total)

	return m.Completed(), nil
}

func (s *sequencer) RunOne(ctx context.Context, registry *Registry, name string, showOutput bool) (m.Outcome, error) {
	exercise, i, err := registry.Find(name)
	if err != nil {
		return m.Outcome{}, err
	}

	return s.verify(ctx, exercise, i, registry.Len(), showOutput)
}

func (s *sequencer) verify(ctx context.Context, exercise m.Exercise, i, total int, showOutput bool) (m.Outcome, error) {
	s.ui.DisplayVerifying(ctx, exercise, i, total)

	outcome, err := s.verifier.Verify(ctx, exercise, showOutput)
	if err != nil {
		return m.Outcome{}, err
	}

	if outcome.Passed() {
		s.ui.DisplayPassed(ctx, exercise)
	} else {
		s.ui.DisplayFailed(ctx, exercise, outcome)
	}

	return outcome, nil
}
