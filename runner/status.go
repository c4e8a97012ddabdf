package runner

// Status is the kind of a test case result.
type Status int

// Result status for a single test case run
const (
	StatusInvalid Status = iota // 0 not initialized
	StatusPassed                // 1 exited with code 0
	StatusFailed                // 2 nonzero, non-sentinel exit code
	StatusBroken                // 3 verdict unavailable
)

var statusString = []string{
	"invalid",
	"passed",
	"failed",
	"broken",
}

func (s Status) String() string {
	i := int(s)
	if i >= 0 && i < len(statusString) {
		return statusString[i]
	}
	return statusString[0]
}
