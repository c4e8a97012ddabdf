package runtest

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plainrun/go-testexec/pkg/spawn"
	"github.com/plainrun/go-testexec/runner"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		st   spawn.Status
		want runner.Result
	}{
		{
			name: "Timeout",
			st:   spawn.Status{TimedOut: true},
			want: runner.Broken("Test case timed out"),
		},
		{
			name: "ExitZero",
			st:   spawn.Status{Exited: true, ExitCode: 0},
			want: runner.Passed(),
		},
		{
			name: "ExecFailureSentinel",
			st:   spawn.Status{Exited: true, ExitCode: 120},
			want: runner.Broken("Failed to execute test program"),
		},
		{
			name: "NonzeroExit",
			st:   spawn.Status{Exited: true, ExitCode: 1},
			want: runner.Failed("Exited with code 1"),
		},
		{
			name: "NonzeroExitLarge",
			st:   spawn.Status{Exited: true, ExitCode: 255},
			want: runner.Failed("Exited with code 255"),
		},
		{
			name: "Signaled",
			st:   spawn.Status{Signaled: true, Signal: syscall.SIGSEGV},
			want: runner.Broken("Received signal 11"),
		},
		{
			name: "SignaledWithCore",
			st:   spawn.Status{Signaled: true, Signal: syscall.SIGABRT, CoreDump: true},
			want: runner.Broken("Received signal 6 (core dumped)"),
		},
		{
			name: "UnknownShape",
			st:   spawn.Status{},
			want: runner.Broken("Terminated in an unknown manner"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.st))
		})
	}
}
