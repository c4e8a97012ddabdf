package isolate

import (
	"slices"
	"testing"
)

func TestRequestEnv(t *testing.T) {
	r := &Request{Exec: "/bin/true", RunDir: "/tmp/w/run"}
	env := r.Env()

	if !slices.Contains(env, "TESTEXEC_SHIM_EXEC=/bin/true") {
		t.Error("exec marker missing")
	}
	if !slices.Contains(env, "TESTEXEC_SHIM_RUNDIR=/tmp/w/run") {
		t.Error("run dir marker missing")
	}
	for _, e := range env {
		if e == "TESTEXEC_SHIM_SECCOMP=1" {
			t.Error("seccomp marker present without the option set")
		}
	}

	r.Seccomp = true
	if !slices.Contains(r.Env(), "TESTEXEC_SHIM_SECCOMP=1") {
		t.Error("seccomp marker missing")
	}
}

func TestInitNoMarker(t *testing.T) {
	// without the marker Init must be a no-op; reaching the next line
	// is the assertion
	Init()
}
