// Package domain implements exercise verification: the ordered sequencer,
// the debounced watch engine and the interactive shell that runs beside it.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"dojo.dev/pkg/dojo/internal/adapter"
	"dojo.dev/pkg/dojo/internal/controller"
	m "dojo.dev/pkg/dojo/internal/model"
)

// ProjectArgs locates the exercises.
type ProjectArgs struct {
	Manifest m.Path
	Marker   string
}

// VerifyArgs contains the arguments for verifying every exercise.
type VerifyArgs struct {
	ProjectArgs
	ShowOutput bool
}

// RunArgs contains the arguments for verifying a single exercise.
type RunArgs struct {
	ProjectArgs
	Name       string
	ShowOutput bool
}

// HintArgs contains the arguments for showing an exercise hint.
type HintArgs struct {
	ProjectArgs
	Name string
}

// ListArgs contains the arguments for listing exercises.
type ListArgs struct {
	ProjectArgs
}

// WatchArgs contains the arguments for watch mode.
type WatchArgs struct {
	ProjectArgs
	Dir         m.Path // relative to the manifest directory unless absolute
	Debounce    time.Duration
	InitialPass bool
	ShowOutput  bool
}

// Workflow is the entry point for every CLI command.
type Workflow interface {
	Verify(ctx context.Context, args VerifyArgs) error
	Run(ctx context.Context, args RunArgs) error
	Hint(ctx context.Context, args HintArgs) error
	List(ctx context.Context, args ListArgs) error
	Watch(ctx context.Context, args WatchArgs) error
}

// ConsoleOpener opens the console for watch mode.
type ConsoleOpener func() (adapter.ConsoleAdapter, error)

type workflow struct {
	adapter.ManifestAdapter
	adapter.ToolchainAdapter
	adapter.SourceFSAdapter
	adapter.WatchAdapter
	controller.UI

	openConsole ConsoleOpener
	clock       Clock
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	manifest adapter.ManifestAdapter,
	toolchain adapter.ToolchainAdapter,
	fsAdapter adapter.SourceFSAdapter,
	watchAdapter adapter.WatchAdapter,
	openConsole ConsoleOpener,
	ui controller.UI,
	clock Clock,
) Workflow {
	return &workflow{
		ManifestAdapter:  manifest,
		ToolchainAdapter: toolchain,
		SourceFSAdapter:  fsAdapter,
		WatchAdapter:     watchAdapter,
		UI:               ui,
		openConsole:      openConsole,
		clock:            clock,
	}
}

func (w *workflow) Verify(ctx context.Context, args VerifyArgs) error {
	registry, root, err := w.load(args.ProjectArgs)
	if err != nil {
		return err
	}

	if err := w.checkToolchain(ctx); err != nil {
		return err
	}

	result, err := w.sequencer(root, args.Marker).RunAll(ctx, registry, args.ShowOutput)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	if i, stopped := result.Stopped(); stopped {
		w.DisplayHintPrompt(ctx, registry.At(i))
		return m.ErrVerificationFailed
	}

	w.DisplayCompleted(ctx, registry.Len())

	return nil
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	registry, root, err := w.load(args.ProjectArgs)
	if err != nil {
		return err
	}

	// Resolve the name before touching the toolchain so a typo is reported as such.
	exercise, _, err := registry.Find(args.Name)
	if err != nil {
		return err
	}

	if err := w.checkToolchain(ctx); err != nil {
		return err
	}

	outcome, err := w.sequencer(root, args.Marker).RunOne(ctx, registry, args.Name, args.ShowOutput)
	if err != nil {
		return fmt.Errorf("run %s: %w", args.Name, err)
	}

	if !outcome.Passed() {
		w.DisplayHintPrompt(ctx, exercise)
		return m.ErrVerificationFailed
	}

	return nil
}

func (w *workflow) Hint(ctx context.Context, args HintArgs) error {
	registry, _, err := w.load(args.ProjectArgs)
	if err != nil {
		return err
	}

	exercise, _, err := registry.Find(args.Name)
	if err != nil {
		return err
	}

	w.DisplayHint(ctx, exercise.Name, exercise.Hint)

	return nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	registry, root, err := w.load(args.ProjectArgs)
	if err != nil {
		return err
	}

	statuses := make([]m.ExerciseStatus, 0, registry.Len())

	for _, exercise := range registry.All() {
		pending, err := w.HasMarker(ctx, w.JoinPath(string(root), string(exercise.Path)), args.Marker)
		if err != nil {
			slog.Error("Failed to inspect exercise", "exercise", exercise.Name, "error", err)
			return fmt.Errorf("list %s: %w", exercise.Name, err)
		}

		statuses = append(statuses, m.ExerciseStatus{Exercise: exercise, Done: args.Marker != "" && !pending})
	}

	return w.DisplayExerciseList(ctx, statuses)
}

func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	registry, root, err := w.load(args.ProjectArgs)
	if err != nil {
		return err
	}

	if err := w.checkToolchain(ctx); err != nil {
		return err
	}

	dir := args.Dir
	if !filepath.IsAbs(string(dir)) {
		dir = w.JoinPath(string(root), string(dir))
	}

	sub, err := w.WatchAdapter.Watch(ctx, dir)
	if err != nil {
		slog.Error("Failed to start watching", "dir", dir, "error", err)
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	defer func() { _ = sub.Close() }()

	console, err := w.openConsole()
	if err != nil {
		slog.Error("Failed to open console", "error", err)
		return fmt.Errorf("open console: %w", err)
	}

	defer console.Cancel()

	state := NewWatchState()
	engine := NewWatchEngine(registry, w.sequencer(root, args.Marker), state, w.UI, w.clock, WatchConfig{
		Debounce:    args.Debounce,
		ShowOutput:  args.ShowOutput,
		InitialPass: args.InitialPass,
	})
	shell := NewShell(console, state, w.UI)

	w.DisplayWatching(ctx, dir)

	group, groupCtx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(groupCtx)

	defer cancel()

	group.Go(func() error {
		// The engine ending for any reason ends watch mode.
		defer cancel()

		return engine.Run(runCtx, sub.Events(), sub.Errors())
	})

	group.Go(func() error {
		return shell.Run(runCtx)
	})

	group.Go(func() error {
		<-runCtx.Done()
		console.Cancel()

		if err := sub.Close(); err != nil {
			slog.Warn("Failed to close watcher", "error", err)
		}

		return nil
	})

	err = group.Wait()
	if err == nil || errors.Is(err, ErrShellQuit) || errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

func (w *workflow) load(args ProjectArgs) (*Registry, m.Path, error) {
	exercises, err := w.Load(args.Manifest)
	if err != nil {
		return nil, "", err
	}

	registry, err := NewRegistry(exercises)
	if err != nil {
		slog.Error("Invalid manifest", "manifest", args.Manifest, "error", err)
		return nil, "", err
	}

	return registry, m.Path(filepath.Dir(string(args.Manifest))), nil
}

// checkToolchain runs once per command, before any exercise is verified.
func (w *workflow) checkToolchain(ctx context.Context) error {
	path, err := w.LookPath(ctx)
	if err != nil {
		slog.Error("Toolchain unavailable", "error", err)
		return err
	}

	slog.Debug("Using toolchain", "path", path)

	return nil
}

func (w *workflow) sequencer(root m.Path, marker string) Sequencer {
	return NewSequencer(
		NewVerifier(w.ToolchainAdapter, w.SourceFSAdapter, w.UI, VerifierConfig{Root: root, Marker: marker}),
		w.UI,
	)
}
