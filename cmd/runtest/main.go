// Command runtest executes test programs in an isolated, supervised
// environment and reports their results.
//
// Each program argument is run as one test case: in a fresh work
// directory, with the environment isolated, under a timeout, with its
// output captured. The exit status is 0 when every case passed, 1 when
// any case failed or broke, 2 on usage or setup errors, and 128+signo
// when the run was interrupted.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/plainrun/go-testexec/pkg/interrupt"
	"github.com/plainrun/go-testexec/pkg/isolate"
	"github.com/plainrun/go-testexec/runner"
	"github.com/plainrun/go-testexec/runtest"
)

func main() {
	// must run before anything else: takes over the process when it is
	// a re-executed isolation shim
	isolate.Init()
	os.Exit(run())
}

func run() int {
	var (
		configPath string
		timeout    time.Duration
		tmpRoot    string
		seccomp    bool
		verbose    bool
	)
	flag.StringVar(&configPath, "config", "", "Path to a YAML configuration file")
	flag.DurationVar(&timeout, "timeout", runtest.DefaultTimeout, "Timeout for one test program")
	flag.StringVar(&tmpRoot, "tmp-root", "", "Directory for per-run work directories (default: system temporary directory)")
	flag.BoolVar(&seccomp, "seccomp", false, "Deny destructive administrative syscalls in test programs")
	flag.BoolVar(&verbose, "v", false, "Enable debug logging")
	flag.Parse()

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "runtest: %v\n", err)
			return 2
		}
		cfg.apply(&timeout, &tmpRoot, &seccomp, log)
	}

	progs := flag.Args()
	if len(progs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: runtest [flags] test-program [test-program ...]")
		flag.PrintDefaults()
		return 2
	}

	r := &runtest.Runner{
		Timeout:  timeout,
		TempRoot: tmpRoot,
		Seccomp:  seccomp,
		Logger:   log,
	}

	exit := 0
	for _, prog := range progs {
		abs, err := filepath.Abs(prog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "runtest: resolve %s: %v\n", prog, err)
			return 2
		}
		tc := runner.TestCase{ID: filepath.Base(prog), Path: abs}

		res, err := r.Run(tc)
		if err != nil {
			if ie := interrupt.AsInterrupted(err); ie != nil {
				fmt.Fprintf(os.Stderr, "runtest: interrupted by signal %d\n", int(ie.Signal))
				return 128 + int(ie.Signal)
			}
			fmt.Fprintf(os.Stderr, "runtest: %v\n", err)
			return 2
		}

		fmt.Printf("%s: %s\n", tc.ID, res)
		if res.Status != runner.StatusPassed {
			exit = 1
		}
	}
	return exit
}
