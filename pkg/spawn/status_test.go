package spawn

import (
	"syscall"
	"testing"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		name string
		st   Status
		want string
	}{
		{"Exited", Status{Exited: true, ExitCode: 3}, "Exited with code 3"},
		{"Signaled", Status{Signaled: true, Signal: syscall.SIGSEGV}, "Received signal 11"},
		{"SignaledCore", Status{Signaled: true, Signal: syscall.SIGABRT, CoreDump: true}, "Received signal 6 (core dumped)"},
		{"TimedOut", Status{TimedOut: true}, "timed out"},
		{"Unknown", Status{}, "Terminated in an unknown manner"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.st.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
