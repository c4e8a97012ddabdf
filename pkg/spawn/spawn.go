// Package spawn starts the isolation shim as a supervised child process
// and reports how it terminated.
//
// The child is always created as the leader of a new process group with
// its standard output and error redirected to capture files, so the
// whole group can be killed when the run is cut short.
package spawn

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/plainrun/go-testexec/pkg/isolate"
)

// Runner configures one spawn of the isolation shim.
type Runner struct {
	Exec    string // test program path, executed with no arguments
	RunDir  string // working directory for the test program
	Stdout  string // file capturing standard output
	Stderr  string // file capturing standard error
	Seccomp bool   // harden the child with the seccomp policy
}

// Child is a spawned shim process.
type Child struct {
	pid  int
	done chan Status
}

// Start launches the shim in its own process group with the standard
// streams redirected to the capture files.
func (r *Runner) Start() (*Child, error) {
	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("spawn: resolve own executable: %w", err)
	}

	outf, err := os.Create(r.Stdout)
	if err != nil {
		return nil, fmt.Errorf("spawn: create stdout file: %w", err)
	}
	defer outf.Close()
	errf, err := os.Create(r.Stderr)
	if err != nil {
		return nil, fmt.Errorf("spawn: create stderr file: %w", err)
	}
	defer errf.Close()

	req := isolate.Request{Exec: r.Exec, RunDir: r.RunDir, Seccomp: r.Seccomp}
	cmd := exec.Command(self)
	cmd.Env = req.Env()
	cmd.Stdout = outf
	cmd.Stderr = errf
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("spawn: start shim: %w", err)
	}

	c := &Child{pid: cmd.Process.Pid, done: make(chan Status, 1)}
	go func() { c.done <- waitStatus(cmd) }()
	return c, nil
}

// waitStatus blocks until the child terminates and decodes how.
func waitStatus(cmd *exec.Cmd) Status {
	_ = cmd.Wait()
	ws, ok := cmd.ProcessState.Sys().(syscall.WaitStatus)
	if !ok {
		return Status{}
	}
	switch {
	case ws.Exited():
		return Status{Exited: true, ExitCode: ws.ExitStatus()}
	case ws.Signaled():
		return Status{Signaled: true, Signal: ws.Signal(), CoreDump: ws.CoreDump()}
	default:
		return Status{}
	}
}

// Pid of the spawned child, which is also its process group id.
func (c *Child) Pid() int { return c.pid }

// Done delivers the termination status exactly once.
func (c *Child) Done() <-chan Status { return c.done }

// KillGroup sends an unconditional SIGKILL to the child's whole process
// group.
func (c *Child) KillGroup() {
	unix.Kill(-c.pid, unix.SIGKILL)
}

// Reap blocks without a deadline until the child is collected.
func (c *Child) Reap() Status {
	return <-c.done
}
