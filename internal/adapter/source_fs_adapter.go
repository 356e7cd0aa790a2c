// Package adapter contains the infrastructure adapters used by the exercise runner:
// manifest loading, toolchain execution, source inspection, file watching and console input.
package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	m "dojo.dev/pkg/dojo/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer needs
// when inspecting exercise sources. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// HasMarker reports whether any Go source under path contains marker.
	// path may be a single file or a package directory.
	HasMarker(ctx context.Context, path m.Path, marker string) (bool, error)

	// Dirs returns root and every non-hidden directory beneath it.
	Dirs(ctx context.Context, root m.Path) ([]m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// HasMarker scans the Go files of a file or package directory for marker.
// Sub-packages are not scanned: an exercise is a single package.
func (a *LocalSourceFSAdapter) HasMarker(ctx context.Context, path m.Path, marker string) (bool, error) {
	if marker == "" {
		return false, nil
	}

	found := false

	err := a.Walk(path, false, func(file string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if info.IsDir() || filepath.Ext(file) != ".go" {
			return nil
		}

		hit, err := fileContains(file, marker)
		if err != nil {
			return err
		}

		if hit {
			found = true
			return filepath.SkipAll
		}

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("scan %s: %w", path, err)
	}

	return found, nil
}

func fileContains(path, marker string) (bool, error) {
	// #nosec G304 - path comes from the exercise manifest
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}

	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), marker) {
			return true, nil
		}
	}

	return false, scanner.Err()
}

// Dirs lists root and its non-hidden subdirectories.
func (a *LocalSourceFSAdapter) Dirs(ctx context.Context, root m.Path) ([]m.Path, error) {
	var dirs []m.Path

	err := filepath.WalkDir(string(root), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if !d.IsDir() {
			return nil
		}

		if path != string(root) && isHidden(d.Name()) {
			return filepath.SkipDir
		}

		dirs = append(dirs, m.Path(path))

		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("watch root %s: %w", root, err)
		}

		return nil, err
	}

	return dirs, nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
