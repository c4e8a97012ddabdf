// Package interrupt implements cooperative interruption of a test run
// driven by the terminal signals SIGHUP, SIGINT and SIGTERM.
//
// Signal arrival is recorded asynchronously into a single process-wide
// cell; the watcher does nothing beyond storing the signal number and
// writing a fixed diagnostic with a raw write. All decision making
// happens at synchronous Check call sites.
package interrupt

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"
)

// Signals are the terminal signals that trigger cooperative interruption.
// SIGKILL and SIGSTOP are never touched.
var Signals = []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}

// diagnostic is written straight to stderr upon signal receipt, before
// any higher level reporting happens.
var diagnostic = []byte("[-- Signal caught; please wait for cleanup --]\n")

// pending holds the last received termination signal number, 0 meaning
// none. It is the only state shared with the asynchronous watcher.
var pending atomic.Int32

// Interrupted reports that the operator requested termination. It is
// always propagated past the execution core, never converted into a
// result.
type Interrupted struct {
	Signal syscall.Signal
}

func (e *Interrupted) Error() string {
	return fmt.Sprintf("interrupted by signal %d", int(e.Signal))
}

// AsInterrupted returns the Interrupted wrapped in err, or nil.
func AsInterrupted(err error) *Interrupted {
	var ie *Interrupted
	if errors.As(err, &ie) {
		return ie
	}
	return nil
}

// Controller owns the installed handlers for one run.
type Controller struct {
	ch       chan os.Signal
	notified chan struct{}
	done     chan struct{}
}

// Arm resets the pending cell and installs handlers for the terminal
// signals. Disarm must be called exactly once on every exit path.
func Arm() *Controller {
	c := &Controller{
		ch:       make(chan os.Signal, 1),
		notified: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	pending.Store(0)
	signal.Notify(c.ch, Signals...)
	go c.watch()
	return c
}

func (c *Controller) watch() {
	for {
		select {
		case sig := <-c.ch:
			s, ok := sig.(syscall.Signal)
			if !ok {
				continue
			}
			pending.Store(int32(s))
			unix.Write(int(os.Stderr.Fd()), diagnostic)
			select {
			case c.notified <- struct{}{}:
			default:
			}
		case <-c.done:
			return
		}
	}
}

// Notified delivers an event when a termination signal arrives while the
// caller is blocked; the supervisor selects on it during the child wait.
func (c *Controller) Notified() <-chan struct{} { return c.notified }

// Disarm removes the handlers, restoring the previous dispositions.
func (c *Controller) Disarm() {
	signal.Stop(c.ch)
	close(c.done)
}

// Check fails with an Interrupted error if a termination signal is
// pending; otherwise it is a no-op. The main flow never assumes a signal
// was or was not observed except immediately after calling Check.
func Check() error {
	if s := pending.Load(); s != 0 {
		return &Interrupted{Signal: syscall.Signal(s)}
	}
	return nil
}
