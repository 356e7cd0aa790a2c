// Package model defines the data structures shared by the exercise runner.
package model

import "fmt"

// Path represents a file system path.
type Path string

// Mode selects how an exercise is verified.
type Mode string

const (
	// ModeCompile verifies that the exercise builds.
	ModeCompile Mode = "compile"
	// ModeTest builds the exercise and runs its tests.
	ModeTest Mode = "test"
)

// Valid reports whether the mode is one of the known verification modes.
func (md Mode) Valid() bool {
	return md == ModeCompile || md == ModeTest
}

// UnmarshalText rejects unknown modes so a typo in the manifest fails at load time.
func (md *Mode) UnmarshalText(text []byte) error {
	mode := Mode(text)
	if !mode.Valid() {
		return fmt.Errorf("unknown mode %q (want %q or %q)", text, ModeCompile, ModeTest)
	}

	*md = mode

	return nil
}

// Exercise describes one unit of learner work. It is never modified after load.
type Exercise struct {
	Name string `yaml:"name"`
	Path Path   `yaml:"path"`
	Mode Mode   `yaml:"mode"`
	Hint string `yaml:"hint"`
}

// ExerciseStatus pairs an exercise with its done state for listing.
type ExerciseStatus struct {
	Exercise
	Done bool
}
