// Package test holds assertions shared by the package tests.
package test

import (
	"math"
	"testing"

	"github.com/cbsinteractive/annotate/timecode"
)

// Tolerance is the slack allowed by AssertFloat.
const Tolerance = 1e-9

// AssertWantErr checks err against the expected message. An empty wantErr
// means no error is expected. It returns true when an error was returned or
// expected, so callers can stop checking the result.
func AssertWantErr(err error, wantErr, caller string, t *testing.T) bool {
	t.Helper()
	if err != nil {
		if wantErr != err.Error() {
			t.Errorf("%s error = %v, wantErr %q", caller, err, wantErr)
		}
		return true
	} else if wantErr != "" {
		t.Errorf("%s expected error %q, did not receive an error", caller, wantErr)
		return true
	}
	return false
}

// AssertInvalid fails unless err is a timecode.InvalidArgumentError.
func AssertInvalid(err error, caller string, t *testing.T) {
	t.Helper()
	if err == nil {
		t.Errorf("%s expected an invalid argument error, got none", caller)
		return
	}
	if !timecode.IsInvalidArgument(err) {
		t.Errorf("%s error = %v (%T), want an invalid argument error", caller, err, err)
	}
}

// AssertFloat fails unless got is within Tolerance of want.
func AssertFloat(got, want float64, caller string, t *testing.T) {
	t.Helper()
	if math.Abs(got-want) > Tolerance {
		t.Errorf("%s = %v, want %v", caller, got, want)
	}
}
