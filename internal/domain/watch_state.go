package domain

import (
	"sync"

	m "dojo.dev/pkg/dojo/internal/model"
)

// WatchState holds the failing exercise published by the watch engine and
// read by the command shell. Every access goes through the lock and readers
// receive copies.
type WatchState struct {
	mu      sync.RWMutex
	current m.ActiveFailure
	active  bool
}

// NewWatchState returns an empty state with no active failure.
func NewWatchState() *WatchState {
	return &WatchState{}
}

// Publish records failure as the active one.
func (s *WatchState) Publish(failure m.ActiveFailure) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = failure
	s.active = true
}

// Clear removes the active failure.
func (s *WatchState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = m.ActiveFailure{}
	s.active = false
}

// Current returns a copy of the active failure, if any.
func (s *WatchState) Current() (m.ActiveFailure, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current, s.active
}

// Hint returns the active failure's hint, if any.
func (s *WatchState) Hint() (string, bool) {
	failure, ok := s.Current()

	return failure.Hint, ok
}
