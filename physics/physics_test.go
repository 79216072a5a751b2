package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/stepwheel/constants"
)

func TestDecayMatchesPerFrameMultiplier(t *testing.T) {
	// At exactly one reference frame of elapsed time, decay must equal a
	// single multiplication by the friction factor.
	dt := 1.0 / constants.ReferenceFrameRate
	got := Decay(100, 0.97, dt)
	expected := 100 * 0.97
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected decay %v, got %v", expected, got)
	}
}

func TestDecayFrameRateIndependent(t *testing.T) {
	// Integrating the same wall-clock second at 60 Hz and 120 Hz must
	// produce the same residual velocity.
	v60 := 500.0
	for i := 0; i < 60; i++ {
		v60 = Decay(v60, 0.97, 1.0/60.0)
	}
	v120 := 500.0
	for i := 0; i < 120; i++ {
		v120 = Decay(v120, 0.97, 1.0/120.0)
	}
	if math.Abs(v60-v120) > 1e-6 {
		t.Errorf("Expected rate-independent decay, got %v at 60Hz vs %v at 120Hz", v60, v120)
	}
}

func TestRubberBand(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		expected float64
	}{
		{"Inside window", 10, 10},
		{"At max", 24, 24},
		{"Beyond max", 74, 24 + 50*0.2},
		{"At min", -36, -36},
		{"Beyond min", -86, -36 - 50*0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RubberBand(tt.raw, -36, 24, 0.2)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRubberBandNeverExceedsDampedExcess(t *testing.T) {
	// Damped offset must never exceed bound + excess*factor.
	for raw := 0.0; raw < 500; raw += 7 {
		got := RubberBand(raw, -100, 0, 0.2)
		limit := 0 + raw*0.2
		if raw > 0 && got > limit+1e-9 {
			t.Errorf("Expected damped offset <= %v at raw %v, got %v", limit, raw, got)
		}
	}
}

func TestEaseOutCubicEndpoints(t *testing.T) {
	if got := EaseOutCubic(0); got != 0 {
		t.Errorf("Expected 0 at t=0, got %v", got)
	}
	if got := EaseOutCubic(1); got != 1 {
		t.Errorf("Expected 1 at t=1, got %v", got)
	}
	// Ease-out: first half covers more than half the distance
	if got := EaseOutCubic(0.5); got <= 0.5 {
		t.Errorf("Expected ease-out midpoint above 0.5, got %v", got)
	}
}

func TestCoastTerminates(t *testing.T) {
	c := &Coast{
		Velocity:    500,
		Offset:      0,
		MinOffset:   -10000,
		MaxOffset:   10000,
		Friction:    0.97,
		MinVelocity: 20,
	}

	frames := 0
	for {
		_, done := c.Step(1.0 / 60.0)
		frames++
		if done {
			break
		}
		if frames > 1000 {
			t.Fatal("Expected coast to terminate within 1000 frames")
		}
	}

	if math.Abs(c.Velocity) >= 500 {
		t.Errorf("Expected velocity to have decayed, got %v", c.Velocity)
	}
	// ln(20/500)/ln(0.97) ~ 105 frames
	if frames < 50 || frames > 200 {
		t.Errorf("Expected termination near 105 frames, got %d", frames)
	}
}

func TestCoastBoundaryHit(t *testing.T) {
	c := &Coast{
		Velocity:    1000,
		Offset:      0,
		MinOffset:   -100,
		MaxOffset:   50,
		Friction:    0.99,
		MinVelocity: 5,
	}

	var boundary bool
	for i := 0; i < 600; i++ {
		b, done := c.Step(1.0 / 60.0)
		if done {
			boundary = b
			break
		}
	}

	if !boundary {
		t.Error("Expected boundary hit terminating the coast")
	}
	if c.Offset != 50 {
		t.Errorf("Expected offset clamped at 50, got %v", c.Offset)
	}
	if c.Velocity != 0 {
		t.Errorf("Expected velocity zeroed at boundary, got %v", c.Velocity)
	}
}

func TestCoastHardDurationBound(t *testing.T) {
	// Degenerate configuration: friction ~1 never decays below threshold.
	c := &Coast{
		Velocity:    100,
		Offset:      0,
		MinOffset:   -1e12,
		MaxOffset:   1e12,
		Friction:    0.9999999,
		MinVelocity: 1,
	}

	maxFrames := int(constants.MaxCoastDuration.Seconds()*60) + 2
	done := false
	for i := 0; i < maxFrames && !done; i++ {
		_, done = c.Step(1.0 / 60.0)
	}
	if !done {
		t.Error("Expected hard duration bound to terminate degenerate coast")
	}
}

func TestSettleReachesTarget(t *testing.T) {
	s := &Settle{From: 37, To: 0, Duration: 0.15}

	var offset float64
	var done bool
	prev := 37.0
	for i := 0; i < 20 && !done; i++ {
		offset, done = s.Step(1.0 / 60.0)
		// Monotonic approach toward the target
		if offset > prev+1e-9 {
			t.Errorf("Expected monotonic settle, offset rose from %v to %v", prev, offset)
		}
		prev = offset
	}

	if !done {
		t.Error("Expected settle to complete within 20 frames at 60Hz")
	}
	if offset != 0 {
		t.Errorf("Expected final offset exactly 0, got %v", offset)
	}
}

func TestSettleZeroDurationImmediate(t *testing.T) {
	s := &Settle{From: 5, To: 2, Duration: 0}
	offset, done := s.Step(1.0 / 60.0)
	if !done || offset != 2 {
		t.Errorf("Expected immediate completion at target 2, got %v done=%v", offset, done)
	}
}
