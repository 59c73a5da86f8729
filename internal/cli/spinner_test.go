package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerBasic(t *testing.T) {
	s := newSpinner("Generating graph...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	// Not asserted: Stop cancels the internal context, so Cancelled cannot
	// distinguish an explicit stop from a parent cancellation afterwards.
	_ = s.Cancelled()
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Solving...")
	s.Start()

	cancel()

	// Let the animation goroutine observe the cancellation.
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should report cancelled after parent context cancellation")
	}
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinnerWithContext(ctx, "Rendering...")
	s.Start()

	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should report cancelled after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner("Benchmarking...")
	s.Start()

	// Repeated stops must not panic or block.
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithSuccess(t *testing.T) {
	s := newSpinner("Writing graph...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithSuccess("Graph written")
}

func TestSpinnerStopWithError(t *testing.T) {
	s := newSpinner("Reading graph...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithError("Read failed")
}

func TestNewSpinnerWithContextBackground(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "Analyzing...")
	s.Start()
	s.Stop()
}
