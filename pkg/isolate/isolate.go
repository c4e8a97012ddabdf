// Package isolate prepares a child process environment before it executes
// a test program.
//
// Go offers no way to run code between fork and exec, so the isolation
// runs in a re-executed copy of the current binary: the spawner starts
// /proc/self/exe with marker variables in the environment and Init, called
// before anything else in main, takes the process over, applies the
// isolation steps and execs the test program.
//
// Isolation means:
//
//   - verify the process is the leader of its own process group
//   - reset the umask to 0022
//   - reset signal dispositions to default (except SIGKILL / SIGSTOP)
//   - clear the locale environment variables and force TZ=UTC
//   - chdir into the run directory and point HOME at it
//   - optionally load a hardening seccomp policy
package isolate

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// ExecFailureCode is the reserved exit code reporting that the exec of
// the test program itself failed. A test program that exits with this
// same code for its own reasons is indistinguishable from an exec
// failure.
const ExecFailureCode = 120

// Marker environment variables consumed by Init.
const (
	envExec    = "TESTEXEC_SHIM_EXEC"
	envRunDir  = "TESTEXEC_SHIM_RUNDIR"
	envSeccomp = "TESTEXEC_SHIM_SECCOMP"
)

// umask applied before the test program runs so its file permissions are
// deterministic.
const umask = 0022

// maxSignal bounds the disposition reset loop. Numbers that do not name a
// signal on the running platform are silently skipped.
const maxSignal = 64

// localeVars are cleared so the test program never observes the host
// locale.
var localeVars = []string{
	"LANG",
	"LC_ALL",
	"LC_COLLATE",
	"LC_CTYPE",
	"LC_MESSAGES",
	"LC_MONETARY",
	"LC_NUMERIC",
	"LC_TIME",
}

// Request carries the spawn parameters for one shim child.
type Request struct {
	Exec    string // test program to execute, with no arguments
	RunDir  string // working directory for the test program
	Seccomp bool   // load the hardening seccomp policy before exec
}

// Env returns the current environment extended with the marker variables
// for the shim child.
func (r *Request) Env() []string {
	env := append(os.Environ(),
		envExec+"="+r.Exec,
		envRunDir+"="+r.RunDir,
	)
	if r.Seccomp {
		env = append(env, envSeccomp+"=1")
	}
	return env
}

// Init checks whether this process is a shim child and, if so, isolates
// it and execs the test program. It never returns in the child; in any
// other process it is a no-op. Call it first thing in main.
func Init() {
	prog := os.Getenv(envExec)
	if prog == "" {
		return
	}
	runDir := os.Getenv(envRunDir)
	sec := os.Getenv(envSeccomp) != ""
	for _, v := range []string{envExec, envRunDir, envSeccomp} {
		os.Unsetenv(v)
	}

	if err := setup(runDir, sec); err != nil {
		// the test program never got to execute; die by signal so the
		// parent reports an anomaly instead of a verdict
		fmt.Fprintf(os.Stderr, "failed to set up the test case: %v\n", err)
		abort()
	}

	if err := syscall.Exec(prog, []string{prog}, os.Environ()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to execute test program %s: %v\n", prog, err)
		os.Exit(ExecFailureCode)
	}
}

// setup applies the isolation steps in order. Every step is required.
func setup(runDir string, sec bool) error {
	// the spawner created us as a process group leader; the kill and
	// reap logic in the parent depends on it
	if unix.Getpgrp() != unix.Getpid() {
		return fmt.Errorf("process %d is not its own process group leader", unix.Getpid())
	}

	unix.Umask(umask)
	resetSignals()

	for _, v := range localeVars {
		os.Unsetenv(v)
	}
	os.Setenv("TZ", "UTC")

	if err := os.Chdir(runDir); err != nil {
		return fmt.Errorf("enter run directory %s: %w", runDir, err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve run directory: %w", err)
	}
	os.Setenv("HOME", cwd)

	if sec {
		if err := loadPolicy(); err != nil {
			return fmt.Errorf("load seccomp policy: %w", err)
		}
	}
	return nil
}

// resetSignals restores default dispositions across the signal range.
// SIGKILL and SIGSTOP cannot be altered. The exec of the test program
// finishes the job for anything the runtime still holds.
func resetSignals() {
	for i := 1; i <= maxSignal; i++ {
		sig := syscall.Signal(i)
		if sig == syscall.SIGKILL || sig == syscall.SIGSTOP {
			continue
		}
		signal.Reset(sig)
	}
}

// abort terminates the shim the way an assertion failure would, so the
// parent observes a signal termination instead of an exit code that could
// collide with a code the test program uses.
func abort() {
	unix.Kill(unix.Getpid(), unix.SIGABRT)
	os.Exit(2) // only reached if SIGABRT is blocked
}
