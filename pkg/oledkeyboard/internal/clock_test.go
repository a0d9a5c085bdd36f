package internal

import (
	"math"
	"testing"
	"time"
)

func TestMonotonicClock(t *testing.T) {
	clock := NewMonotonicClock()

	t1 := clock.Millis()
	time.Sleep(15 * time.Millisecond)
	t2 := clock.Millis()

	if t2-t1 < 10 {
		t.Errorf("Expected at least 10ms between readings, got %d", t2-t1)
	}
}

func TestManualClockAdvanceWraps(t *testing.T) {
	clock := NewManualClock(math.MaxUint32 - 99)

	clock.Advance(250 * time.Millisecond)
	if got := clock.Millis(); got != 150 {
		t.Fatalf("Millis() after wrap = %d, want 150", got)
	}

	clock.Set(42)
	if got := clock.Millis(); got != 42 {
		t.Fatalf("Millis() after Set = %d, want 42", got)
	}
}
