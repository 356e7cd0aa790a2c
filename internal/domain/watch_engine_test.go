package domain_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	controllermocks "dojo.dev/pkg/dojo/internal/controller/mocks"
	"dojo.dev/pkg/dojo/internal/domain"
	domainmocks "dojo.dev/pkg/dojo/internal/domain/mocks"
	m "dojo.dev/pkg/dojo/internal/model"
)

const waitTimeout = 2 * time.Second

type engineHarness struct {
	engine *domain.WatchEngine
	clock  *fakeClock
	state  *domain.WatchState
	events chan m.FileChangeEvent
	errs   chan error

	cancel context.CancelFunc
	done   chan error
	once   sync.Once
	err    error
}

func startEngine(
	t *testing.T,
	registry *domain.Registry,
	sequencer domain.Sequencer,
	ui *controllermocks.MockUI,
	config domain.WatchConfig,
) *engineHarness {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())

	h := &engineHarness{
		clock:  &fakeClock{},
		state:  domain.NewWatchState(),
		events: make(chan m.FileChangeEvent),
		errs:   make(chan error),
		cancel: cancel,
		done:   make(chan error, 1),
	}
	h.engine = domain.NewWatchEngine(registry, sequencer, h.state, ui, h.clock, config)

	go func() {
		h.done <- h.engine.Run(ctx, h.events, h.errs)
	}()

	t.Cleanup(func() { _ = h.stop(t) })

	return h
}

func (h *engineHarness) stop(t *testing.T) error {
	t.Helper()

	h.once.Do(func() {
		h.cancel()

		select {
		case h.err = <-h.done:
		case <-time.After(waitTimeout):
			t.Error("watch engine did not stop")
		}
	})

	return h.err
}

func (h *engineHarness) edit(t *testing.T, path string) {
	t.Helper()

	want := h.engine.Stats().Events + 1
	h.events <- m.FileChangeEvent{Path: m.Path(path), Kind: m.EventWrite}

	require.Eventually(t, func() bool { return h.engine.Stats().Events == want }, waitTimeout, time.Millisecond)
}

func (h *engineHarness) settle(t *testing.T) {
	t.Helper()

	require.True(t, h.clock.Fire(), "debounce timer was not armed")
}

func (h *engineHarness) waitPasses(t *testing.T, n uint64) {
	t.Helper()

	require.Eventually(t, func() bool { return h.engine.Stats().Passes == n }, waitTimeout, time.Millisecond)
}

func (h *engineHarness) waitPhase(t *testing.T, phase domain.Phase) {
	t.Helper()

	require.Eventually(t, func() bool { return h.engine.Phase() == phase }, waitTimeout, time.Millisecond)
}

func TestWatchEngine_DebouncesBurstIntoOnePass(t *testing.T) {
	registry := mustRegistry(t, exA, exB)
	sequencer := domainmocks.NewMockSequencer(t)
	ui := controllermocks.NewMockUI(t)

	sequencer.EXPECT().RunAll(mock.Anything, registry, false).Return(m.Completed(), nil).Once()
	ui.EXPECT().DisplayCompleted(mock.Anything, 2).Return().Once()

	h := startEngine(t, registry, sequencer, ui, domain.WatchConfig{})

	for range 5 {
		h.edit(t, "exercises/a/main.go")
	}

	assert.Equal(t, domain.PhaseDebouncing, h.engine.Phase())

	h.settle(t)
	h.waitPasses(t, 1)
	h.waitPhase(t, domain.PhaseIdle)

	assert.False(t, h.clock.Fire(), "no second pass may be scheduled")
	require.NoError(t, h.stop(t))

	stats := h.engine.Stats()
	assert.Equal(t, uint64(5), stats.Events)
	assert.Equal(t, uint64(0), stats.Queued)
	assert.Equal(t, uint64(1), stats.Passes)
}

func TestWatchEngine_EditsDuringPassQueueOneMorePass(t *testing.T) {
	registry := mustRegistry(t, exA, exB)
	sequencer := domainmocks.NewMockSequencer(t)
	ui := controllermocks.NewMockUI(t)

	started := make(chan struct{}, 2)
	release := make(chan struct{})

	sequencer.EXPECT().RunAll(mock.Anything, registry, false).
		RunAndReturn(func(context.Context, *domain.Registry, bool) (m.SequenceResult, error) {
			started <- struct{}{}
			<-release

			return m.Completed(), nil
		}).Times(2)
	ui.EXPECT().DisplayCompleted(mock.Anything, 2).Return().Times(2)

	h := startEngine(t, registry, sequencer, ui, domain.WatchConfig{})

	h.edit(t, "exercises/a/main.go")
	h.settle(t)
	<-started

	assert.Equal(t, domain.PhaseVerifying, h.engine.Phase())

	for range 3 {
		h.edit(t, "exercises/b/b.go")
	}

	assert.Equal(t, uint64(3), h.engine.Stats().Queued)
	assert.False(t, h.clock.Fire(), "edits during a pass must not arm the timer")

	release <- struct{}{}

	h.waitPasses(t, 1)
	h.waitPhase(t, domain.PhaseDebouncing)
	h.settle(t)
	<-started
	release <- struct{}{}

	h.waitPasses(t, 2)
	h.waitPhase(t, domain.PhaseIdle)

	assert.False(t, h.clock.Fire(), "queued edits produce exactly one extra pass")
	require.NoError(t, h.stop(t))
}

func TestWatchEngine_PublishesFirstFailure(t *testing.T) {
	registry := mustRegistry(t, exA, exB, exC)
	verifier := domainmocks.NewMockVerifier(t)
	ui := quietUI(t)

	verifier.EXPECT().Verify(mock.Anything, exA, false).Return(m.PassOutcome(""), nil).Once()
	verifier.EXPECT().Verify(mock.Anything, exB, false).Return(m.FailOutcome("boom"), nil).Once()
	ui.EXPECT().DisplayHintPrompt(mock.Anything, exB).Return().Once()

	h := startEngine(t, registry, domain.NewSequencer(verifier, ui), ui, domain.WatchConfig{})

	h.edit(t, "exercises/c/main.go")
	h.settle(t)
	h.waitPasses(t, 1)

	failure, ok := h.state.Current()
	require.True(t, ok)
	assert.Equal(t, m.ActiveFailure{Exercise: "b", Hint: "hint b"}, failure)

	require.NoError(t, h.stop(t))
	verifier.AssertNotCalled(t, "Verify", mock.Anything, exC, mock.Anything)
}

func TestWatchEngine_CompletedClearsFailure(t *testing.T) {
	registry := mustRegistry(t, exA, exB)
	verifier := domainmocks.NewMockVerifier(t)
	ui := quietUI(t)

	verifier.EXPECT().Verify(mock.Anything, exA, false).Return(m.PassOutcome(""), nil).Once()
	verifier.EXPECT().Verify(mock.Anything, exB, false).Return(m.PassOutcome(""), nil).Once()
	ui.EXPECT().DisplayCompleted(mock.Anything, 2).Return().Once()

	h := startEngine(t, registry, domain.NewSequencer(verifier, ui), ui, domain.WatchConfig{})
	h.state.Publish(m.ActiveFailure{Exercise: "b", Hint: "hint b"})

	h.edit(t, "exercises/b/b.go")
	h.settle(t)
	h.waitPasses(t, 1)

	_, ok := h.state.Current()
	assert.False(t, ok)
	require.NoError(t, h.stop(t))
}

func TestWatchEngine_EditAnywhereRerunsFromStart(t *testing.T) {
	registry := mustRegistry(t, exA, exB, exC)
	verifier := domainmocks.NewMockVerifier(t)
	ui := quietUI(t)

	var fixed atomic.Bool

	verifier.EXPECT().Verify(mock.Anything, exA, false).Return(m.PassOutcome(""), nil).Times(2)
	verifier.EXPECT().Verify(mock.Anything, exB, false).
		RunAndReturn(func(context.Context, m.Exercise, bool) (m.Outcome, error) {
			if fixed.Load() {
				return m.PassOutcome(""), nil
			}

			return m.FailOutcome("boom"), nil
		}).Times(2)
	verifier.EXPECT().Verify(mock.Anything, exC, false).Return(m.FailOutcome("todo"), nil).Once()
	ui.EXPECT().DisplayHintPrompt(mock.Anything, exB).Return().Once()
	ui.EXPECT().DisplayHintPrompt(mock.Anything, exC).Return().Once()

	h := startEngine(t, registry, domain.NewSequencer(verifier, ui), ui, domain.WatchConfig{})

	h.edit(t, "exercises/b/b.go")
	h.settle(t)
	h.waitPasses(t, 1)

	failure, _ := h.state.Current()
	assert.Equal(t, "b", failure.Exercise)

	fixed.Store(true)

	h.edit(t, "exercises/c/main.go")
	h.settle(t)
	h.waitPasses(t, 2)

	failure, _ = h.state.Current()
	assert.Equal(t, m.ActiveFailure{Exercise: "c", Hint: "hint c"}, failure)
	require.NoError(t, h.stop(t))
}

func TestWatchEngine_IgnoresChmod(t *testing.T) {
	registry := mustRegistry(t, exA)
	sequencer := domainmocks.NewMockSequencer(t)
	ui := controllermocks.NewMockUI(t)

	h := startEngine(t, registry, sequencer, ui, domain.WatchConfig{})

	h.events <- m.FileChangeEvent{Path: "exercises/a/main.go", Kind: m.EventChmod}

	require.Eventually(t, func() bool { return h.engine.Stats().Ignored == 1 }, waitTimeout, time.Millisecond)
	assert.Equal(t, domain.PhaseIdle, h.engine.Phase())
	assert.False(t, h.clock.Fire())
	require.NoError(t, h.stop(t))
}

func TestWatchEngine_InitialPass(t *testing.T) {
	registry := mustRegistry(t, exA)
	sequencer := domainmocks.NewMockSequencer(t)
	ui := controllermocks.NewMockUI(t)

	sequencer.EXPECT().RunAll(mock.Anything, registry, true).Return(m.StoppedAt(0), nil).Once()
	ui.EXPECT().DisplayHintPrompt(mock.Anything, exA).Return().Once()

	h := startEngine(t, registry, sequencer, ui, domain.WatchConfig{InitialPass: true, ShowOutput: true})

	h.waitPasses(t, 1)

	hint, ok := h.state.Hint()
	assert.True(t, ok)
	assert.Equal(t, "hint a", hint)
	require.NoError(t, h.stop(t))
}

func TestWatchEngine_ConfigurationErrorEndsRun(t *testing.T) {
	registry := mustRegistry(t, exA)
	sequencer := domainmocks.NewMockSequencer(t)
	ui := controllermocks.NewMockUI(t)

	sequencer.EXPECT().RunAll(mock.Anything, registry, false).Return(m.SequenceResult{}, m.ErrToolUnavailable).Once()

	h := startEngine(t, registry, sequencer, ui, domain.WatchConfig{})

	h.edit(t, "exercises/a/main.go")
	h.settle(t)

	select {
	case err := <-h.done:
		require.ErrorIs(t, err, m.ErrConfiguration)
		require.ErrorIs(t, err, m.ErrToolUnavailable)
	case <-time.After(waitTimeout):
		t.Fatal("watch engine kept running after a configuration error")
	}

	h.once.Do(h.cancel)
}

func TestWatchEngine_OtherErrorsAreReportedAndClearFailure(t *testing.T) {
	registry := mustRegistry(t, exA)
	sequencer := domainmocks.NewMockSequencer(t)
	ui := controllermocks.NewMockUI(t)
	scanErr := errors.New("permission denied")

	sequencer.EXPECT().RunAll(mock.Anything, registry, false).Return(m.SequenceResult{}, scanErr).Once()
	ui.EXPECT().DisplayError(mock.Anything, scanErr).Return().Once()

	h := startEngine(t, registry, sequencer, ui, domain.WatchConfig{})
	h.state.Publish(m.ActiveFailure{Exercise: "a", Hint: "hint a"})

	h.edit(t, "exercises/a/main.go")
	h.settle(t)
	h.waitPasses(t, 1)
	h.waitPhase(t, domain.PhaseIdle)

	_, ok := h.state.Current()
	assert.False(t, ok, "a pass without a verdict drops the previous failure")
	require.NoError(t, h.stop(t))
}

func TestWatchEngine_SubscriptionErrorsAreLogged(t *testing.T) {
	registry := mustRegistry(t, exA)

	h := startEngine(t, registry, domainmocks.NewMockSequencer(t), controllermocks.NewMockUI(t), domain.WatchConfig{})

	h.errs <- errors.New("queue overflow")
	h.errs <- errors.New("queue overflow")

	assert.Equal(t, domain.PhaseIdle, h.engine.Phase())
	require.NoError(t, h.stop(t))
}

func TestWatchEngine_StopsWhenEventsClose(t *testing.T) {
	registry := mustRegistry(t, exA)

	h := startEngine(t, registry, domainmocks.NewMockSequencer(t), controllermocks.NewMockUI(t), domain.WatchConfig{})

	close(h.events)

	select {
	case err := <-h.done:
		require.NoError(t, err)
	case <-time.After(waitTimeout):
		t.Fatal("watch engine did not stop after the subscription closed")
	}

	h.once.Do(h.cancel)
}

func TestWatchEngine_ShutdownWaitsForPass(t *testing.T) {
	registry := mustRegistry(t, exA)
	sequencer := domainmocks.NewMockSequencer(t)
	ui := controllermocks.NewMockUI(t)

	started := make(chan struct{})
	var finished atomic.Bool

	sequencer.EXPECT().RunAll(mock.Anything, registry, false).
		RunAndReturn(func(ctx context.Context, _ *domain.Registry, _ bool) (m.SequenceResult, error) {
			close(started)
			<-ctx.Done()
			finished.Store(true)

			return m.SequenceResult{}, ctx.Err()
		}).Once()

	h := startEngine(t, registry, sequencer, ui, domain.WatchConfig{})

	h.edit(t, "exercises/a/main.go")
	h.settle(t)
	<-started

	require.NoError(t, h.stop(t))
	assert.True(t, finished.Load())
	assert.Equal(t, domain.PhaseIdle, h.engine.Phase())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", domain.PhaseIdle.String())
	assert.Equal(t, "debouncing", domain.PhaseDebouncing.String())
	assert.Equal(t, "verifying", domain.PhaseVerifying.String())
	assert.Equal(t, "unknown", domain.Phase(42).String())
}
