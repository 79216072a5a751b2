// Package scale holds the pure value/step/offset conversions for a discrete
// range. Everything here is stateless; the interaction engine in package
// wheel layers state on top of these functions.
package scale

import (
	"fmt"
	"math"
)

// Range describes a finite discrete value range: evenly spaced steps from
// Lower to Upper, Step apart. Index 0 sits at Lower.
type Range struct {
	Lower float64
	Upper float64
	Step  float64
}

// Validate rejects ranges that make step arithmetic meaningless.
// A malformed range is a construction-time error, never a runtime one.
func (r Range) Validate() error {
	if math.IsNaN(r.Lower) || math.IsInf(r.Lower, 0) ||
		math.IsNaN(r.Upper) || math.IsInf(r.Upper, 0) {
		return fmt.Errorf("range bounds must be finite, got [%v, %v]", r.Lower, r.Upper)
	}
	if r.Upper <= r.Lower {
		return fmt.Errorf("range upper %v must exceed lower %v", r.Upper, r.Lower)
	}
	if math.IsNaN(r.Step) || r.Step <= 0 {
		return fmt.Errorf("range step must be positive, got %v", r.Step)
	}
	if math.IsInf(r.Step, 0) {
		return fmt.Errorf("range step must be finite")
	}
	return nil
}

// StepCount returns the number of discrete positions, including both ends.
func (r Range) StepCount() int {
	return int(math.Floor((r.Upper-r.Lower)/r.Step)) + 1
}

// IndexOf maps a value to its nearest step index, clamped to the valid
// index window. Rounding is half-away-from-zero (math.Round) so that step
// crossings trigger at the midpoint between ticks, deterministically.
func (r Range) IndexOf(value float64) int {
	idx := int(math.Round((value - r.Lower) / r.Step))
	return ClampIndex(idx, r.StepCount())
}

// ValueOf maps a step index back to its value, clamped into the range.
func (r Range) ValueOf(index int) float64 {
	v := r.Lower + float64(index)*r.Step
	if v < r.Lower {
		return r.Lower
	}
	if v > r.Upper {
		return r.Upper
	}
	return v
}

// Snap returns the step-aligned value nearest to value.
func (r Range) Snap(value float64) float64 {
	return r.ValueOf(r.IndexOf(value))
}

// OffsetOf returns the tape pixel offset at which the given index aligns
// with the coordinate origin. Positive indices shift content left.
func OffsetOf(index int, tickSpacing float64) float64 {
	return -float64(index) * tickSpacing
}

// ClampIndex confines an index to [0, stepCount-1].
func ClampIndex(index, stepCount int) int {
	if index < 0 {
		return 0
	}
	if index > stepCount-1 {
		return stepCount - 1
	}
	return index
}
