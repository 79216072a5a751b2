// Package physics implements the frame-driven integrators behind the
// stepping wheel: friction-decayed inertia coasting, rubber-band overscroll
// dampening, and the eased settle animation.
package physics

import (
	"math"

	"github.com/lixenwraith/stepwheel/constants"
)

// Decay applies exponential velocity decay scaled for variable dt.
// friction is the per-reference-frame multiplier (e.g. 0.97 at 60 Hz), so
// coast distance is independent of the caller's actual frame rate.
func Decay(velocity, friction, dt float64) float64 {
	return velocity * math.Pow(friction, dt*constants.ReferenceFrameRate)
}

// RubberBand dampens the portion of a raw offset that exceeds the hard
// window [min, max]. Inside the window the offset passes through unchanged.
func RubberBand(raw, min, max, factor float64) float64 {
	if raw > max {
		return max + (raw-max)*factor
	}
	if raw < min {
		return min + (raw-min)*factor
	}
	return raw
}

// EaseOutCubic maps linear progress t in [0,1] to 1-(1-t)^3: fast start,
// decelerating finish.
func EaseOutCubic(t float64) float64 {
	inv := 1 - t
	return 1 - inv*inv*inv
}

// Coast integrates a friction-decayed inertia animation: v decays per
// frame, offset advances by v*dt, and the offset is clamped to the hard
// window precomputed from the drag's start index.
type Coast struct {
	Velocity    float64 // px/s, signed
	Offset      float64 // px
	MinOffset   float64 // hard window toward the last index (negative side)
	MaxOffset   float64 // hard window toward index 0 (positive side)
	Friction    float64 // per-reference-frame multiplier in (0,1)
	MinVelocity float64 // px/s magnitude at which the coast stops
	Elapsed     float64 // seconds since coast start
}

// Step advances the coast by dt seconds. boundary reports a hard-window
// hit (velocity zeroed, offset clamped); done reports that the animation
// terminated this frame, either by boundary, by velocity decaying below
// MinVelocity, or by exceeding the defensive maximum coast duration.
func (c *Coast) Step(dt float64) (boundary, done bool) {
	c.Elapsed += dt
	c.Velocity = Decay(c.Velocity, c.Friction, dt)
	c.Offset += c.Velocity * dt

	if c.Offset >= c.MaxOffset {
		c.Offset = c.MaxOffset
		c.Velocity = 0
		return true, true
	}
	if c.Offset <= c.MinOffset {
		c.Offset = c.MinOffset
		c.Velocity = 0
		return true, true
	}
	if math.Abs(c.Velocity) < c.MinVelocity {
		return false, true
	}
	if c.Elapsed >= constants.MaxCoastDuration.Seconds() {
		return false, true
	}
	return false, false
}

// Settle animates an offset from From to To over Duration seconds with an
// ease-out cubic curve.
type Settle struct {
	From     float64
	To       float64
	Duration float64 // seconds
	elapsed  float64
}

// Step advances the settle by dt seconds and returns the current offset.
// done is true once the full duration has elapsed, at which point the
// returned offset is exactly To.
func (s *Settle) Step(dt float64) (offset float64, done bool) {
	s.elapsed += dt
	if s.Duration <= 0 || s.elapsed >= s.Duration {
		return s.To, true
	}
	t := EaseOutCubic(s.elapsed / s.Duration)
	return s.From + (s.To-s.From)*t, false
}
