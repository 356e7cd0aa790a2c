package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"dojo.dev/pkg/dojo/internal/controller"
	m "dojo.dev/pkg/dojo/internal/model"
)

// DefaultDebounce is the quiet period after the last file event before a pass starts.
const DefaultDebounce = 500 * time.Millisecond

// Phase is the watch engine's state.
type Phase int32

const (
	// PhaseIdle waits for the next file event.
	PhaseIdle Phase = iota
	// PhaseDebouncing waits for the quiet period to elapse.
	PhaseDebouncing
	// PhaseVerifying has a verification pass in flight.
	PhaseVerifying
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDebouncing:
		return "debouncing"
	case PhaseVerifying:
		return "verifying"
	default:
		return "unknown"
	}
}

// WatchConfig tunes the watch engine.
type WatchConfig struct {
	Debounce    time.Duration
	ShowOutput  bool
	InitialPass bool // verify once at start instead of waiting for an edit
}

// WatchStats counts engine activity.
type WatchStats struct {
	Events  uint64 // triggering events handled
	Ignored uint64 // events that cannot affect a build (chmod)
	Queued  uint64 // events that arrived during a pass
	Passes  uint64 // finished verification passes
}

// WatchEngine re-verifies the whole registry after file changes settle.
//
// Events reset a debounce timer; when it fires a single pass runs on its own
// goroutine. Events arriving during a pass are folded into one follow-up pass.
// The engine publishes the outcome of each pass to a WatchState.
type WatchEngine struct {
	registry  *Registry
	sequencer Sequencer
	state     *WatchState
	ui        controller.UI
	clock     Clock
	config    WatchConfig

	phase   atomic.Int32
	events  atomic.Uint64
	ignored atomic.Uint64
	queued  atomic.Uint64
	passes  atomic.Uint64
}

type passResult struct {
	id     string
	result m.SequenceResult
	err    error
}

// NewWatchEngine constructs a WatchEngine. A zero debounce uses DefaultDebounce.
func NewWatchEngine(
	registry *Registry,
	sequencer Sequencer,
	state *WatchState,
	ui controller.UI,
	clock Clock,
	config WatchConfig,
) *WatchEngine {
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}

	return &WatchEngine{
		registry:  registry,
		sequencer: sequencer,
		state:     state,
		ui:        ui,
		clock:     clock,
		config:    config,
	}
}

// Phase returns the current state.
func (e *WatchEngine) Phase() Phase {
	return Phase(e.phase.Load())
}

// Stats returns a snapshot of the engine counters.
func (e *WatchEngine) Stats() WatchStats {
	return WatchStats{
		Events:  e.events.Load(),
		Ignored: e.ignored.Load(),
		Queued:  e.queued.Load(),
		Passes:  e.passes.Load(),
	}
}

// Run drives the engine until ctx is canceled or events is closed, both of
// which return nil. It returns an error only when a pass hits a configuration
// error, such as the toolchain disappearing. errs may be nil.
func (e *WatchEngine) Run(ctx context.Context, events <-chan m.FileChangeEvent, errs <-chan error) error {
	timer := e.clock.NewTimer(e.config.Debounce)
	timer.Stop()

	defer timer.Stop()
	defer e.setPhase(PhaseIdle)

	var (
		fire    <-chan time.Time // non-nil only while debouncing
		done    chan passResult  // non-nil only while verifying
		pending bool
	)

	arm := func() {
		timer.Reset(e.config.Debounce)
		fire = timer.C()
		e.setPhase(PhaseDebouncing)
	}

	start := func() {
		fire = nil
		done = make(chan passResult, 1)
		e.setPhase(PhaseVerifying)

		go e.verify(ctx, done)
	}

	if e.config.InitialPass {
		start()
	}

	for {
		select {
		case <-ctx.Done():
			e.stop(done)
			return nil

		case event, ok := <-events:
			if !ok {
				slog.Debug("Watch subscription closed")
				e.stop(done)

				return nil
			}

			if !event.Triggers() {
				e.ignored.Add(1)
				continue
			}

			slog.Debug("File changed", "path", event.Path, "kind", event.Kind, "phase", e.Phase())

			if done != nil {
				pending = true

				e.queued.Add(1)
				e.events.Add(1)

				continue
			}

			arm()
			e.events.Add(1)

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}

			slog.Warn("Watch subscription error", "error", err)

		case <-fire:
			start()

		case res := <-done:
			done = nil

			if err := e.publish(ctx, res); err != nil {
				return err
			}

			if pending {
				pending = false

				arm()

				continue
			}

			e.setPhase(PhaseIdle)
		}
	}
}

func (e *WatchEngine) setPhase(p Phase) {
	e.phase.Store(int32(p))
}

func (e *WatchEngine) verify(ctx context.Context, done chan<- passResult) {
	id := uuid.NewString()
	slog.Info("Verification pass started", "pass", id, "exercises", e.registry.Len())

	result, err := e.sequencer.RunAll(ctx, e.registry, e.config.ShowOutput)
	done <- passResult{id: id, result: result, err: err}
}

// publish applies a finished pass to the shared state.
func (e *WatchEngine) publish(ctx context.Context, res passResult) error {
	e.passes.Add(1)

	if res.err != nil {
		if ctx.Err() != nil {
			slog.Debug("Verification pass interrupted", "pass", res.id)
			return nil
		}

		slog.Error("Verification pass failed", "pass", res.id, "error", res.err)

		if errors.Is(res.err, m.ErrConfiguration) {
			return fmt.Errorf("verification pass: %w", res.err)
		}

		// The pass never reached a verdict, so the old failure may be fixed already.
		e.state.Clear()
		e.ui.DisplayError(ctx, res.err)

		return nil
	}

	if i, stopped := res.result.Stopped(); stopped {
		exercise := e.registry.At(i)
		e.state.Publish(m.ActiveFailure{Exercise: exercise.Name, Hint: exercise.Hint})
		slog.Info("Verification pass stopped", "pass", res.id, "exercise", exercise.Name)
		e.ui.DisplayHintPrompt(ctx, exercise)

		return nil
	}

	e.state.Clear()
	slog.Info("Verification pass completed", "pass", res.id)
	e.ui.DisplayCompleted(ctx, e.registry.Len())

	return nil
}

// stop waits for an in-flight pass so no goroutine outlives Run. Its result
// is discarded.
func (e *WatchEngine) stop(done <-chan passResult) {
	if done != nil {
		<-done
	}

	stats := e.Stats()
	slog.Debug("Watch engine stopped",
		"events", stats.Events, "ignored", stats.Ignored, "queued", stats.Queued, "passes", stats.Passes)
}
