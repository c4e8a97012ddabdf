//go:build linux

package interrupt

import (
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func waitPending(t *testing.T) error {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if err := Check(); err != nil {
			return err
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("signal never observed by Check")
	return nil
}

func TestCheckNoPending(t *testing.T) {
	c := Arm()
	defer c.Disarm()

	if err := Check(); err != nil {
		t.Errorf("expected no pending interrupt, got %v", err)
	}
}

func TestSignalSetsPending(t *testing.T) {
	c := Arm()
	defer c.Disarm()

	if err := unix.Kill(unix.Getpid(), unix.SIGHUP); err != nil {
		t.Fatalf("kill: %v", err)
	}
	err := waitPending(t)

	var ie *Interrupted
	if !errors.As(err, &ie) {
		t.Fatalf("expected *Interrupted, got %T: %v", err, err)
	}
	if ie.Signal != syscall.SIGHUP {
		t.Errorf("expected signal %d, got %d", syscall.SIGHUP, ie.Signal)
	}

	select {
	case <-c.Notified():
	case <-time.After(5 * time.Second):
		t.Error("Notified never delivered an event")
	}
}

func TestArmResetsPending(t *testing.T) {
	c := Arm()
	if err := unix.Kill(unix.Getpid(), unix.SIGHUP); err != nil {
		t.Fatalf("kill: %v", err)
	}
	waitPending(t)
	c.Disarm()

	c = Arm()
	defer c.Disarm()
	if err := Check(); err != nil {
		t.Errorf("expected pending cell reset after Arm, got %v", err)
	}
}

func TestInterruptedError(t *testing.T) {
	e := &Interrupted{Signal: syscall.SIGTERM}
	want := fmt.Sprintf("interrupted by signal %d", int(syscall.SIGTERM))
	if e.Error() != want {
		t.Errorf("got %q, want %q", e.Error(), want)
	}
	if AsInterrupted(fmt.Errorf("wrapped: %w", e)) == nil {
		t.Error("AsInterrupted failed to unwrap")
	}
	if AsInterrupted(errors.New("plain")) != nil {
		t.Error("AsInterrupted matched a plain error")
	}
}
