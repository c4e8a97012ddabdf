package spawn

import (
	"fmt"
	"syscall"
)

// Status describes the termination of a child process, or the timeout
// sentinel when the wait gave up and the child was forcibly killed.
type Status struct {
	Exited   bool // terminated through exit
	ExitCode int
	Signaled bool // terminated by a signal
	Signal   syscall.Signal
	CoreDump bool
	TimedOut bool // wait exceeded the deadline, status unknown
}

func (s Status) String() string {
	switch {
	case s.TimedOut:
		return "timed out"
	case s.Exited:
		return fmt.Sprintf("Exited with code %d", s.ExitCode)
	case s.Signaled:
		if s.CoreDump {
			return fmt.Sprintf("Received signal %d (core dumped)", int(s.Signal))
		}
		return fmt.Sprintf("Received signal %d", int(s.Signal))
	default:
		return "Terminated in an unknown manner"
	}
}
