package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner("Enumerating orbit...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
}

func TestSpinnerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Rendering...")
	s.Start()

	cancel()

	// Give the goroutine time to notice cancellation.
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should report cancelled after context cancellation")
	}
}

func TestSpinnerContextTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinnerWithContext(ctx, "Waiting...")
	s.Start()

	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should report cancelled after context timeout")
	}
}

func TestSpinnerStopIdempotent(t *testing.T) {
	s := newSpinner("Stopping...")
	s.Start()

	// Multiple stops must not panic.
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithMessages(t *testing.T) {
	s := newSpinner("Working...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithSuccess("done")

	s = newSpinner("Working...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithError("failed")
}
