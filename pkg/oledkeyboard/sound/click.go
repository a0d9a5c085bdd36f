// Package sound plays a short click for every accepted key press.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clickDuration = 30 * time.Millisecond

	characterFreq = 2000.0
	specialFreq   = 1200.0
)

// tone is a square wave that fades out linearly over its duration.
type tone struct {
	freq     float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, total: rate.N(duration), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		val := -1.0
		if t.phase < 0.5 {
			val = 1.0
		}
		val *= 1 - float64(t.position)/float64(t.total)

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Clicker mixes clicks into the speaker.
type Clicker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewClicker creates a clicker. volume is in halvings: 0 is full scale,
// -1 half, -2 a quarter.
func NewClicker(volume float64) *Clicker {
	return &Clicker{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

func (c *Clicker) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Click plays the click for label. Special keys get a lower pitch.
// It is a no-op until Initialize succeeds.
func (c *Clicker) Click(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Add(c.clickStreamer(label))
	speaker.Unlock()
}

func (c *Clicker) clickStreamer(label string) beep.Streamer {
	freq := characterFreq
	if oledkeyboard.IsSpecialKey(label) {
		freq = specialFreq
	}

	return &effects.Volume{
		Streamer: NewTone(freq, clickDuration, sampleRate),
		Base:     2,
		Volume:   c.volume,
	}
}

func (c *Clicker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Clear()
	c.mixer.Clear()
	c.initialized = false
}
