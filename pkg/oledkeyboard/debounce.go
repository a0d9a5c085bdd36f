package oledkeyboard

import (
	"math"
	"time"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
)

// Debouncer drops repeated triggers of a button that arrive within the
// threshold of its last accepted trigger. Timestamps are compared as unsigned
// 32-bit differences so a wrapping clock is handled.
type Debouncer struct {
	threshold    uint32
	lastAccepted map[constants.VirtualButton]uint32
}

func NewDebouncer(threshold time.Duration) *Debouncer {
	return &Debouncer{
		threshold:    durationToMillis(threshold),
		lastAccepted: make(map[constants.VirtualButton]uint32),
	}
}

// TryAccept reports whether an event on button at now is accepted, and if so
// records now as the button's last accepted time.
func (d *Debouncer) TryAccept(button constants.VirtualButton, now uint32) bool {
	if now-d.lastAccepted[button] > d.threshold {
		d.lastAccepted[button] = now
		return true
	}
	return false
}

func (d *Debouncer) SetThreshold(threshold time.Duration) {
	d.threshold = durationToMillis(threshold)
}

func (d *Debouncer) Threshold() time.Duration {
	return time.Duration(d.threshold) * time.Millisecond
}

// durationToMillis rounds positive sub-millisecond durations up to 1ms and
// saturates at math.MaxUint32.
func durationToMillis(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	ms := d.Milliseconds()
	if ms == 0 {
		return 1
	}
	if ms > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(ms)
}
