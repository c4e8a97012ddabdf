// Package workdir manages the uniquely named scratch directory that hosts
// one test case run: the child's working directory plus the captured
// output streams.
package workdir

import (
	"fmt"
	"os"
	"path/filepath"
)

// pattern handed to os.MkdirTemp; the '*' is replaced with a random
// string so creation is atomic and collision free across concurrent runs.
const pattern = "testexec.*"

const (
	runDirName = "run"
	stdoutName = "stdout.txt"
	stderrName = "stderr.txt"

	runDirPerm = 0755
)

// Dir is an acquired work directory. It is exclusively owned by one run
// and must be released exactly once.
type Dir struct {
	path string
}

// Acquire atomically creates a new uniquely named work directory under
// root. An empty root falls back to os.TempDir, which already honors the
// TMPDIR environment override.
func Acquire(root string) (*Dir, error) {
	if root == "" {
		root = os.TempDir()
	}
	path, err := os.MkdirTemp(root, pattern)
	if err != nil {
		return nil, fmt.Errorf("workdir: create under %s: %w", root, err)
	}
	return &Dir{path: path}, nil
}

// Release recursively removes the work directory tree. The caller decides
// whether a removal failure is reported or only logged.
func (d *Dir) Release() error {
	if err := os.RemoveAll(d.path); err != nil {
		return fmt.Errorf("workdir: remove %s: %w", d.path, err)
	}
	return nil
}

// Path is the root of the work directory.
func (d *Dir) Path() string { return d.path }

// RunDir is the directory the test program runs in.
func (d *Dir) RunDir() string { return filepath.Join(d.path, runDirName) }

// Stdout is the file capturing the test program's standard output.
func (d *Dir) Stdout() string { return filepath.Join(d.path, stdoutName) }

// Stderr is the file capturing the test program's standard error.
func (d *Dir) Stderr() string { return filepath.Join(d.path, stderrName) }

// CreateRunDir creates the run subdirectory the child will chdir into.
func (d *Dir) CreateRunDir() error {
	if err := os.Mkdir(d.RunDir(), runDirPerm); err != nil {
		return fmt.Errorf("workdir: create run dir: %w", err)
	}
	return nil
}
