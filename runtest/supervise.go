package runtest

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/plainrun/go-testexec/pkg/interrupt"
	"github.com/plainrun/go-testexec/pkg/spawn"
	"github.com/plainrun/go-testexec/pkg/workdir"
	"github.com/plainrun/go-testexec/runner"
)

// supervise prepares the run directory and shepherds the test program
// from spawn to a termination status.
func (r *Runner) supervise(ctl *interrupt.Controller, wd *workdir.Dir, tc runner.TestCase, log logrus.FieldLogger) (spawn.Status, error) {
	if err := interrupt.Check(); err != nil {
		return spawn.Status{}, err
	}
	if err := wd.CreateRunDir(); err != nil {
		return spawn.Status{}, err
	}

	log.Info("running test case")
	st, err := r.spawnAndWait(ctl, wd, tc, log)
	if err != nil {
		return spawn.Status{}, err
	}

	// catch a signal that arrived during the wait but was absorbed as a
	// normal return instead of breaking the wait
	if err := interrupt.Check(); err != nil {
		return spawn.Status{}, err
	}
	return st, nil
}

// spawnAndWait starts the isolated child and waits for it with the
// configured timeout, handling a termination signal arriving while
// blocked.
func (r *Runner) spawnAndWait(ctl *interrupt.Controller, wd *workdir.Dir, tc runner.TestCase, log logrus.FieldLogger) (spawn.Status, error) {
	child, err := (&spawn.Runner{
		Exec:    tc.Path,
		RunDir:  wd.RunDir(),
		Stdout:  wd.Stdout(),
		Stderr:  wd.Stderr(),
		Seccomp: r.Seccomp,
	}).Start()
	if err != nil {
		return spawn.Status{}, err
	}

	timer := time.NewTimer(r.timeout())
	defer timer.Stop()

	select {
	case st := <-child.Done():
		return st, nil

	case <-timer.C:
		log.Warn("test case timed out; killing its process group")
		child.KillGroup()
		child.Reap()
		return spawn.Status{TimedOut: true}, nil

	case <-ctl.Notified():
		// the wait was broken by a termination signal: kill the whole
		// group, reap without a deadline, then surface the pending
		// interruption
		child.KillGroup()
		child.Reap()
		if err := interrupt.Check(); err != nil {
			return spawn.Status{}, err
		}
		return spawn.Status{}, errors.New("wait broken by a signal but no interrupt pending")
	}
}
