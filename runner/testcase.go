package runner

// TestCase identifies one executable test program. It is created by the
// caller and only read by the execution core.
type TestCase struct {
	ID   string // identifier used in reports and logs
	Path string // absolute path to the test program
}
