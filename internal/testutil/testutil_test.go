package testutil

import (
	"testing"
	"time"
)

// TestContextHasDeadline verifies the context expires within the timeout.
func TestContextHasDeadline(t *testing.T) {
	start := time.Now()
	ctx := Context(t, time.Second)
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected a deadline")
	}
	if deadline.After(start.Add(time.Second + 100*time.Millisecond)) {
		t.Fatalf("deadline %v exceeds the requested timeout", deadline)
	}
}

// TestContextDefaultTimeout verifies a non-positive timeout falls back to the default.
func TestContextDefaultTimeout(t *testing.T) {
	start := time.Now()
	ctx := Context(t, 0)
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected a deadline")
	}
	if deadline.After(start.Add(DefaultTimeout + 100*time.Millisecond)) {
		t.Fatalf("deadline %v exceeds the default timeout", deadline)
	}
}
