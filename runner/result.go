package runner

import "fmt"

// Result is the classified outcome of one test case run.
type Result struct {
	Status        // result kind
	Reason string // detail for failed / broken results
}

// Passed returns the result for a program that exited with code 0.
func Passed() Result {
	return Result{Status: StatusPassed}
}

// Failed returns the result for a program that ran to completion but
// reported failure through its exit code.
func Failed(reason string) Result {
	return Result{Status: StatusFailed, Reason: reason}
}

// Broken returns the result for a run whose verdict could not be
// determined due to an infrastructure-level anomaly.
func Broken(reason string) Result {
	return Result{Status: StatusBroken, Reason: reason}
}

// Good reports whether the test program itself ran to a verdict, i.e. the
// result is trustworthy as the program's own outcome.
func (r Result) Good() bool {
	return r.Status == StatusPassed || r.Status == StatusFailed
}

func (r Result) String() string {
	if r.Reason == "" {
		return r.Status.String()
	}
	return fmt.Sprintf("%s: %s", r.Status, r.Reason)
}
