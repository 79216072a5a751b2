// Package audio is the wheel's haptic-equivalent feedback channel: a short
// click on every step crossing and a thud on boundary hits, synthesized
// with beep. The whole package degrades to a silent no-op when the speaker
// cannot be initialized, so a headless host still works.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Sound shaping parameters
const (
	tickFrequency = 1760.0 // A6
	tickDuration  = 30 * time.Millisecond
	tickAttack    = 2 * time.Millisecond
	tickRelease   = 20 * time.Millisecond

	boundaryFrequency = 220.0 // A3
	boundaryDuration  = 80 * time.Millisecond
	boundaryAttack    = 2 * time.Millisecond
	boundaryRelease   = 60 * time.Millisecond
)

// Feedback owns the speaker and mixer for wheel feedback sounds.
type Feedback struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewFeedback creates a feedback channel at the given volume in [0,1].
func NewFeedback(volume float64) *Feedback {
	return &Feedback{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the audio device. Failure is returned but the Feedback
// stays usable as a no-op.
func (f *Feedback) Initialize() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(f.mixer)
	f.initialized = true
	return nil
}

// Close stops playback and releases the audio device.
func (f *Feedback) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return
	}
	speaker.Lock()
	f.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	f.initialized = false
}

// Tick plays the step-crossing click. Non-blocking; safe from any goroutine.
func (f *Feedback) Tick() {
	f.play(CreateTickSound(sampleRate, f.volume))
}

// Boundary plays the boundary thud.
func (f *Feedback) Boundary() {
	f.play(CreateBoundarySound(sampleRate, f.volume))
}

func (f *Feedback) play(s beep.Streamer) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return
	}
	speaker.Lock()
	f.mixer.Add(s)
	speaker.Unlock()
}
