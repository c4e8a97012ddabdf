package runtest

import (
	"github.com/plainrun/go-testexec/pkg/isolate"
	"github.com/plainrun/go-testexec/pkg/spawn"
	"github.com/plainrun/go-testexec/runner"
)

// classify maps a child termination status to a test case result.
//
// An unhandled signal is an environment anomaly worth distinguishing from
// a deliberate nonzero exit, so it classifies as broken rather than
// failed. Total over every status shape.
func classify(st spawn.Status) runner.Result {
	switch {
	case st.TimedOut:
		return runner.Broken("Test case timed out")
	case st.Exited && st.ExitCode == 0:
		return runner.Passed()
	case st.Exited && st.ExitCode == isolate.ExecFailureCode:
		return runner.Broken("Failed to execute test program")
	case st.Exited:
		return runner.Failed(st.String())
	case st.Signaled:
		return runner.Broken(st.String())
	default:
		return runner.Broken(st.String())
	}
}
