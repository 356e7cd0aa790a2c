package domain

import (
	"errors"
	"fmt"

	m "dojo.dev/pkg/dojo/internal/model"
)

// Registry is the immutable, ordered list of exercises. Order defines the
// recommended progression and where a run stops on failure.
type Registry struct {
	exercises []m.Exercise
	index     map[string]int
}

// NewRegistry validates exercises and copies them into a Registry.
// Duplicate names and invalid modes are configuration errors.
func NewRegistry(exercises []m.Exercise) (*Registry, error) {
	if len(exercises) == 0 {
		return nil, m.NewConfigError("build registry", errors.New("no exercises"))
	}

	registry := &Registry{
		exercises: make([]m.Exercise, len(exercises)),
		index:     make(map[string]int, len(exercises)),
	}

	for i, exercise := range exercises {
		if !exercise.Mode.Valid() {
			return nil, m.NewConfigError("build registry", fmt.Errorf("exercise %q: invalid mode %q", exercise.Name, exercise.Mode))
		}

		if prev, dup := registry.index[exercise.Name]; dup {
			return nil, m.NewConfigError("build registry",
				fmt.Errorf("exercise name %q used at positions %d and %d", exercise.Name, prev+1, i+1))
		}

		registry.index[exercise.Name] = i
		registry.exercises[i] = exercise
	}

	return registry, nil
}

// Len returns the number of exercises.
func (r *Registry) Len() int {
	return len(r.exercises)
}

// At returns the exercise at position i.
func (r *Registry) At(i int) m.Exercise {
	return r.exercises[i]
}

// All returns a copy of the exercises in order.
func (r *Registry) All() []m.Exercise {
	out := make([]m.Exercise, len(r.exercises))
	copy(out, r.exercises)

	return out
}

// Find returns the named exercise and its position.
func (r *Registry) Find(name string) (m.Exercise, int, error) {
	i, ok := r.index[name]
	if !ok {
		return m.Exercise{}, -1, fmt.Errorf("%w: %q", m.ErrExerciseNotFound, name)
	}

	return r.exercises[i], i, nil
}
