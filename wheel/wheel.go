// Package wheel implements the stepping-wheel interaction engine: a state
// machine (idle, dragging, decelerating) over a discrete range, fed by
// normalized gesture events and frame ticks, producing a committed value,
// a render offset, and synchronous change notifications.
//
// The engine is single-threaded by contract: all entry points must be
// called from the goroutine that owns the frame loop. It holds no locks.
package wheel

import (
	"math"

	"github.com/lixenwraith/stepwheel/constants"
	"github.com/lixenwraith/stepwheel/physics"
	"github.com/lixenwraith/stepwheel/scale"
)

// Wheel is the engine facade. Create with New, drive with the Gesture*
// methods and OnFrame, read with the accessors.
type Wheel struct {
	cfg Config
	cb  Callbacks

	state   State
	value   float64
	editing bool
	closed  bool

	// Drag session, valid while state != StateIdle. The offset window is
	// fixed at drag start: moving right is bounded by the distance to
	// index 0, moving left by the distance to the last index.
	startIndex  int
	rawOffset   float64 // undamped cumulative translation, drives step selection
	dragOffset  float64 // damped displayed offset
	lastCrossed int
	minOffset   float64
	maxOffset   float64

	// Animation job: at most one of coast/settle is non-nil, and only
	// while state == StateDecelerating. Replaced atomically with respect
	// to the single-threaded contract; a new gesture cancels it before
	// any further frame can touch it.
	coast  *physics.Coast
	settle *physics.Settle
}

// New constructs a wheel engine. initial is clamped and snapped into the
// range silently: this is a UI input, and rejecting a slightly off initial
// value would be worse than correcting it. Malformed configuration is the
// only construction failure.
func New(cfg Config, initial float64, cb Callbacks) (*Wheel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(initial) || math.IsInf(initial, 0) {
		initial = cfg.Range.Lower
	}
	return &Wheel{
		cfg:   cfg,
		cb:    cb,
		state: StateIdle,
		value: cfg.Range.Snap(initial),
	}, nil
}

// Value returns the current value. Step-aligned whenever the wheel is idle;
// intermediate step values are reported live during drag and coast.
func (w *Wheel) Value() float64 { return w.value }

// State returns the current interaction state.
func (w *Wheel) State() State { return w.state }

// StepIndex returns the current step index in [0, StepCount-1].
func (w *Wheel) StepIndex() int { return w.cfg.Range.IndexOf(w.value) }

// RenderOffset returns the tape pixel offset to draw at, derived from the
// owned state on every call and never stored as independent truth.
func (w *Wheel) RenderOffset() float64 {
	if w.state == StateIdle {
		return scale.OffsetOf(w.StepIndex(), w.cfg.TickSpacing)
	}
	return scale.OffsetOf(w.startIndex, w.cfg.TickSpacing) + w.dragOffset
}

// Editing reports whether an interaction (drag or animation) is in flight.
func (w *Wheel) Editing() bool { return w.editing }

// GestureBegan starts a drag. A touch-down during deceleration cancels the
// running animation synchronously before the new session starts.
func (w *Wheel) GestureBegan() {
	if w.closed {
		return
	}
	if w.state == StateDecelerating {
		w.cancelAnimation()
	}

	w.startIndex = w.cfg.Range.IndexOf(w.value)
	w.lastCrossed = w.startIndex
	w.rawOffset = 0
	w.dragOffset = 0
	stepCount := w.cfg.Range.StepCount()
	w.maxOffset = float64(w.startIndex) * w.cfg.TickSpacing
	w.minOffset = -float64(stepCount-1-w.startIndex) * w.cfg.TickSpacing

	w.state = StateDragging
	w.setEditing(true)
}

// GestureChanged updates the drag with the cumulative horizontal
// translation since drag start. A changed event without a preceding began,
// or one carrying a non-finite translation, is ignored.
func (w *Wheel) GestureChanged(translationPx, velocityPxPerSec float64) {
	_ = velocityPxPerSec // release velocity arrives with GestureEnded
	if w.closed || w.state != StateDragging {
		return
	}
	if math.IsNaN(translationPx) || math.IsInf(translationPx, 0) {
		return
	}

	w.rawOffset = translationPx
	w.dragOffset = physics.RubberBand(translationPx, w.minOffset, w.maxOffset, w.cfg.RubberBand)
	w.trackSteps(w.rawOffset)
}

// GestureEnded releases the drag. Fast releases inside the offset window
// coast; overscrolled or slow releases snap back and settle.
func (w *Wheel) GestureEnded(velocityPxPerSec float64) {
	if w.closed || w.state != StateDragging {
		return
	}
	v := velocityPxPerSec
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}

	overscrolled := w.rawOffset > w.maxOffset || w.rawOffset < w.minOffset
	blocked := (v > 0 && w.dragOffset >= w.maxOffset) || (v < 0 && w.dragOffset <= w.minOffset)

	if !overscrolled && !blocked && math.Abs(v) >= w.cfg.FlickVelocity {
		w.coast = &physics.Coast{
			Velocity:    v,
			Offset:      w.dragOffset,
			MinOffset:   w.minOffset,
			MaxOffset:   w.maxOffset,
			Friction:    w.cfg.Friction,
			MinVelocity: w.cfg.MinVelocity,
		}
		w.state = StateDecelerating
		return
	}

	w.beginSettle()
}

// GestureInterrupted handles a touch-down that the host cancels before it
// becomes a drag (mid-deceleration re-touch). The animation is cancelled
// synchronously and the wheel stops where its committed value is, without
// a snap animation.
func (w *Wheel) GestureInterrupted() {
	if w.closed || w.state != StateDecelerating {
		return
	}
	w.cancelAnimation()
	w.finishInteraction()
}

// OnFrame advances the running animation by one physics step. No-op unless
// the wheel is decelerating. dt is seconds of elapsed frame time; degenerate
// values are clamped defensively so a stalled frame clock cannot teleport
// the tape.
func (w *Wheel) OnFrame(dt float64) {
	if w.closed || w.state != StateDecelerating {
		return
	}
	if math.IsNaN(dt) || dt <= 0 {
		return
	}
	if dt > constants.MaxFrameDelta {
		dt = constants.MaxFrameDelta
	}

	switch {
	case w.coast != nil:
		boundary, done := w.coast.Step(dt)
		w.dragOffset = w.coast.Offset
		w.trackSteps(w.coast.Offset)
		if boundary {
			w.emitBoundaryHit()
		}
		if done {
			w.coast = nil
			w.beginSettle()
		}
	case w.settle != nil:
		offset, done := w.settle.Step(dt)
		w.dragOffset = offset
		if done {
			w.settle = nil
			w.finishInteraction()
		}
	default:
		// Decelerating with no job should be unreachable; recover to idle
		w.finishInteraction()
	}
}

// Close tears the engine down. Any in-flight animation is cancelled and no
// further callbacks fire, so a destroyed host is never called back.
func (w *Wheel) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.cancelAnimation()
	w.state = StateIdle
}

// trackSteps applies the step-selection rule to an undamped offset: the
// nearest step relative to the session's start index, clamped to the valid
// index window. Emits crossing feedback and value changes.
func (w *Wheel) trackSteps(rawOffset float64) {
	stepsDelta := int(math.Round(-rawOffset / w.cfg.TickSpacing))
	candidate := scale.ClampIndex(w.startIndex+stepsDelta, w.cfg.Range.StepCount())

	if candidate != w.lastCrossed {
		w.lastCrossed = candidate
		w.emitStepCrossing()
	}
	if v := w.cfg.Range.ValueOf(candidate); v != w.value {
		w.value = v
		w.emitStep(v)
	}
}

// beginSettle starts the snap-to-step animation, or completes immediately
// when the displayed offset is already within tolerance of the target.
// Covers both the plain settle and the rubber-band snap-back: the target
// is the resting offset of the current step relative to the session
// baseline, which is 0 plus the steps crossed.
func (w *Wheel) beginSettle() {
	target := -float64(w.lastCrossed-w.startIndex) * w.cfg.TickSpacing

	if math.Abs(w.dragOffset-target) <= constants.SettleTolerancePx {
		w.finishInteraction()
		return
	}

	w.settle = &physics.Settle{
		From:     w.dragOffset,
		To:       target,
		Duration: w.cfg.SettleDuration.Seconds(),
	}
	w.state = StateDecelerating
}

// finishInteraction commits the current step and returns to idle.
func (w *Wheel) finishInteraction() {
	w.coast = nil
	w.settle = nil
	w.rawOffset = 0
	w.dragOffset = 0
	w.state = StateIdle
	if v := w.cfg.Range.ValueOf(w.lastCrossed); v != w.value {
		w.value = v
		w.emitStep(v)
	}
	w.setEditing(false)
}

func (w *Wheel) cancelAnimation() {
	w.coast = nil
	w.settle = nil
}

func (w *Wheel) setEditing(editing bool) {
	if w.editing == editing {
		return
	}
	w.editing = editing
	if w.cb.OnEditingChanged != nil && !w.closed {
		w.cb.OnEditingChanged(editing)
	}
}

func (w *Wheel) emitStep(v float64) {
	if w.cb.OnStep != nil && !w.closed {
		w.cb.OnStep(v)
	}
}

func (w *Wheel) emitStepCrossing() {
	if w.cb.OnStepCrossing != nil && !w.closed {
		w.cb.OnStepCrossing()
	}
}

func (w *Wheel) emitBoundaryHit() {
	if w.cb.OnBoundaryHit != nil && !w.closed {
		w.cb.OnBoundaryHit()
	}
}
