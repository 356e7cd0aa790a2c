package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	m "dojo.dev/pkg/dojo/internal/model"
)

// DefaultToolTimeout bounds a single toolchain invocation.
const DefaultToolTimeout = 2 * time.Minute

// ToolchainAdapter abstracts the external Go toolchain used to verify exercises.
type ToolchainAdapter interface {
	// LookPath resolves the toolchain binary. A failure wraps model.ErrToolUnavailable.
	LookPath(ctx context.Context) (m.Path, error)
	// Build compiles the package at target inside workDir.
	Build(ctx context.Context, workDir, target m.Path) (m.ToolResult, error)
	// Test builds and runs the tests of the package at target inside workDir.
	Test(ctx context.Context, workDir, target m.Path) (m.ToolResult, error)
}

// LocalToolchainAdapter runs the toolchain with os/exec.
//
// A non-zero exit is reported through ToolResult.ExitCode; the error return is
// reserved for the binary being missing or impossible to start.
type LocalToolchainAdapter struct {
	binary  string
	timeout time.Duration
}

// NewLocalToolchainAdapter constructs a LocalToolchainAdapter for binary.
// A zero timeout falls back to DefaultToolTimeout.
func NewLocalToolchainAdapter(binary string, timeout time.Duration) *LocalToolchainAdapter {
	if binary == "" {
		binary = "go"
	}

	if timeout <= 0 {
		timeout = DefaultToolTimeout
	}

	return &LocalToolchainAdapter{
		binary:  binary,
		timeout: timeout,
	}
}

// LookPath resolves the configured binary on PATH.
func (a *LocalToolchainAdapter) LookPath(ctx context.Context) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := exec.LookPath(a.binary)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", m.ErrToolUnavailable, a.binary, err)
	}

	return m.Path(path), nil
}

// Build runs `<binary> build -o <null> ./target`.
func (a *LocalToolchainAdapter) Build(ctx context.Context, workDir, target m.Path) (m.ToolResult, error) {
	return a.run(ctx, workDir, "build", "-o", os.DevNull, packageTarget(target))
}

// Test runs `<binary> test -count=1 ./target`.
func (a *LocalToolchainAdapter) Test(ctx context.Context, workDir, target m.Path) (m.ToolResult, error) {
	return a.run(ctx, workDir, "test", "-count=1", packageTarget(target))
}

func (a *LocalToolchainAdapter) run(ctx context.Context, workDir m.Path, args ...string) (m.ToolResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, a.binary, args...)
	cmd.Dir = string(workDir)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := stdout.String() + stderr.String()

	if err == nil {
		return m.ToolResult{Output: output, ExitCode: 0}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return m.ToolResult{Output: output, ExitCode: exitErr.ExitCode()}, nil
	}

	return m.ToolResult{Output: output, ExitCode: -1}, fmt.Errorf("%w: %s: %w", m.ErrToolUnavailable, a.binary, err)
}

// packageTarget turns an exercise path into a package pattern relative to the work dir.
func packageTarget(target m.Path) string {
	clean := filepath.ToSlash(filepath.Clean(string(target)))
	if filepath.IsAbs(string(target)) {
		return clean
	}

	return "./" + clean
}
