// Package runner provides the common types shared by the test case
// execution core: TestCase, Result and Status.
//
// # Status
//
// Status defines the kind of a test case result:
//
//	Passed  the program exited with code 0
//	Failed  the program exited with a nonzero, non-sentinel code
//	Broken  an infrastructure-level anomaly prevented a verdict
//	        (timeout, exec failure, unexpected signal, cleanup failure)
//
// # Result
//
// Result is a tagged value of Status plus a human readable reason for the
// Failed and Broken kinds. It is produced exactly once per run and is
// immutable once constructed.
package runner
