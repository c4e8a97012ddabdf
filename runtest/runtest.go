package runtest

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/plainrun/go-testexec/pkg/interrupt"
	"github.com/plainrun/go-testexec/pkg/workdir"
	"github.com/plainrun/go-testexec/runner"
)

// DefaultTimeout bounds the wait for one test program.
const DefaultTimeout = 60 * time.Second

// Runner executes test cases one at a time. The zero value is usable.
type Runner struct {
	// Timeout for one test program; DefaultTimeout when zero.
	Timeout time.Duration
	// TempRoot overrides the directory under which work directories
	// are created; empty means the system temporary directory.
	TempRoot string
	// Seccomp hardens test programs with the restrictive syscall
	// policy.
	Seccomp bool
	// Logger receives orchestration diagnostics; the logrus standard
	// logger when nil.
	Logger logrus.FieldLogger
}

func (r *Runner) logger() logrus.FieldLogger {
	if r.Logger != nil {
		return r.Logger
	}
	return logrus.StandardLogger()
}

func (r *Runner) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return DefaultTimeout
}

// Run executes one test case and classifies its outcome.
//
// Interruption is a distinct, non-result control flow outcome: it aborts
// the run after best effort cleanup and is re-raised to the caller, never
// converted into a result. A work directory acquisition failure is
// returned as a plain error; the run could not even be attempted.
func (r *Runner) Run(tc runner.TestCase) (runner.Result, error) {
	log := r.logger().WithField("test_case", tc.ID)

	ctl := interrupt.Arm()

	wd, err := workdir.Acquire(r.TempRoot)
	if err != nil {
		ctl.Disarm()
		return runner.Result{}, fmt.Errorf("set up test case %s: %w", tc.ID, err)
	}

	res, err := r.runGuarded(ctl, wd, tc, log)
	if err != nil {
		// interruption fast path: best effort cleanup, then re-raise
		if rmErr := wd.Release(); rmErr != nil {
			log.WithError(rmErr).Warn("could not clean up work directory during interruption")
		}
		ctl.Disarm()
		return runner.Result{}, err
	}

	// a cleanup failure invalidates confidence in a good result, but a
	// more specific broken reason is never overwritten
	if rmErr := wd.Release(); rmErr != nil {
		if res.Good() {
			res = runner.Broken(fmt.Sprintf("Could not clean up test work directory: %v", rmErr))
		} else {
			log.WithError(rmErr).Warn("not reporting work directory cleanup failure; the test is already broken")
		}
	}

	ctl.Disarm()
	if err := interrupt.Check(); err != nil {
		return runner.Result{}, err
	}
	return res, nil
}

// runGuarded performs the interruptible portion of a run. The only error
// it returns is *interrupt.Interrupted; any other failure, panics
// included, becomes a broken result.
func (r *Runner) runGuarded(ctl *interrupt.Controller, wd *workdir.Dir, tc runner.TestCase, log logrus.FieldLogger) (res runner.Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			res = runner.Broken(fmt.Sprintf("The test caused an error in the runtime system: %v", p))
			err = nil
		}
	}()

	st, runErr := r.supervise(ctl, wd, tc, log)
	if runErr != nil {
		if interrupt.AsInterrupted(runErr) != nil {
			return runner.Result{}, runErr
		}
		return runner.Broken(fmt.Sprintf("The test caused an error in the runtime system: %v", runErr)), nil
	}
	return classify(st), nil
}
