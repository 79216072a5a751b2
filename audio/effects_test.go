package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams everything a streamer produces and returns the samples.
func drain(t *testing.T, s beep.Streamer, maxSamples int) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for len(out) < maxSamples {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatalf("Expected streamer to terminate within %d samples", maxSamples)
	return nil
}

func TestOscillatorTerminatesAtDuration(t *testing.T) {
	rate := beep.SampleRate(48000)
	dur := 30 * time.Millisecond
	osc := NewOscillator(1760, dur, WaveSine, rate)

	samples := drain(t, osc, rate.N(dur)+1024)
	if len(samples) != rate.N(dur) {
		t.Errorf("Expected %d samples, got %d", rate.N(dur), len(samples))
	}
}

func TestOscillatorSamplesInRange(t *testing.T) {
	rate := beep.SampleRate(48000)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle} {
		osc := NewOscillator(440, 10*time.Millisecond, wave, rate)
		for i, s := range drain(t, osc, 48000) {
			if math.Abs(s[0]) > 1.0 || math.Abs(s[1]) > 1.0 {
				t.Fatalf("Wave %d: Expected samples in [-1,1], sample %d is %v", wave, i, s)
			}
		}
	}
}

func TestEnvelopeShapesAttackAndRelease(t *testing.T) {
	rate := beep.SampleRate(48000)
	dur := 30 * time.Millisecond

	// Square wave holds full amplitude, so the envelope shape is directly
	// observable in the output.
	osc := NewOscillator(0, dur, WaveSquare, rate)
	shaped := NewEnvelope(osc, dur, 5*time.Millisecond, 10*time.Millisecond, rate)
	samples := drain(t, shaped, rate.N(dur)+1024)

	if len(samples) == 0 {
		t.Fatal("Expected envelope output")
	}
	if math.Abs(samples[0][0]) > 0.01 {
		t.Errorf("Expected attack to start near silence, got %v", samples[0][0])
	}
	last := samples[len(samples)-1]
	if math.Abs(last[0]) > 0.05 {
		t.Errorf("Expected release to end near silence, got %v", last[0])
	}

	mid := samples[len(samples)/2]
	if math.Abs(mid[0]) < 0.9 {
		t.Errorf("Expected sustain at full amplitude, got %v", mid[0])
	}
}

func TestTickSoundFiniteAndBounded(t *testing.T) {
	s := CreateTickSound(beep.SampleRate(48000), 0.8)
	samples := drain(t, s, 48000)
	if len(samples) == 0 {
		t.Fatal("Expected tick sound output")
	}
	for i, smp := range samples {
		if math.IsNaN(smp[0]) || math.Abs(smp[0]) > 1.0 {
			t.Fatalf("Expected bounded samples, sample %d is %v", i, smp)
		}
	}
}

func TestUninitializedFeedbackIsNoOp(t *testing.T) {
	f := NewFeedback(0.8)
	// Must not panic or block without a speaker.
	f.Tick()
	f.Boundary()
	f.Close()
}
