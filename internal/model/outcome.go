package model

// Status is the classification of a single verification.
type Status int

const (
	// Pass means the exercise built (and tested) cleanly.
	Pass Status = iota
	// Fail means the toolchain rejected the exercise.
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	default:
		return "unknown"
	}
}

// Outcome is the result of verifying one exercise.
type Outcome struct {
	Status Status
	Output string // captured toolchain diagnostics
}

// PassOutcome builds a passing outcome.
func PassOutcome(output string) Outcome {
	return Outcome{Status: Pass, Output: output}
}

// FailOutcome builds a failing outcome carrying the diagnostics.
func FailOutcome(output string) Outcome {
	return Outcome{Status: Fail, Output: output}
}

// Passed reports whether the outcome is a pass.
func (o Outcome) Passed() bool {
	return o.Status == Pass
}

// SequenceResult is either Completed or StoppedAt(index).
type SequenceResult struct {
	completed bool
	index     int
}

// Completed is the result of a run where every exercise passed.
func Completed() SequenceResult {
	return SequenceResult{completed: true, index: -1}
}

// StoppedAt is the result of a run that stopped at the exercise with the given index.
func StoppedAt(index int) SequenceResult {
	return SequenceResult{index: index}
}

// IsCompleted reports whether every exercise passed.
func (r SequenceResult) IsCompleted() bool {
	return r.completed
}

// Stopped returns the index of the failing exercise.
func (r SequenceResult) Stopped() (int, bool) {
	if r.completed {
		return -1, false
	}

	return r.index, true
}

// ToolResult is the raw result of one toolchain invocation.
type ToolResult struct {
	Output   string
	ExitCode int
}

// ActiveFailure is the failing exercise published by watch mode.
type ActiveFailure struct {
	Exercise string
	Hint     string
}
