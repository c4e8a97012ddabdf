// Package runtest orchestrates the execution of one test case: work
// directory acquisition, interrupt arming, supervised spawn with a
// timeout, outcome classification and crash safe cleanup.
//
// The outward contract of Runner.Run is narrow: it returns a Result, or
// an *interrupt.Interrupted error when the operator requested
// termination, or a setup error when the work directory could not be
// acquired. Internal failures never escape; they are reported as a broken
// result so a suite always gets a verdict per test case.
package runtest
