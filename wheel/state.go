package wheel

// State identifies the interaction state machine position.
type State uint8

const (
	StateIdle         State = iota // At rest on a step, no animation running
	StateDragging                  // Finger down, tracking translation
	StateDecelerating              // Released: coasting, snapping back, or settling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateDecelerating:
		return "decelerating"
	}
	return "unknown"
}

// Callbacks are the engine's push notifications, fired synchronously at the
// point of change on the caller's goroutine. Nil members are skipped.
type Callbacks struct {
	// OnStep fires exactly once per distinct committed value change.
	OnStep func(value float64)

	// OnEditingChanged fires on edges only: once when an interaction starts
	// and once when the final settle completes.
	OnEditingChanged func(editing bool)

	// OnStepCrossing fires whenever the tracked step index changes during a
	// drag or coast. Intended for haptic/click feedback.
	OnStepCrossing func()

	// OnBoundaryHit fires when an inertia coast clamps at a range boundary.
	OnBoundaryHit func()
}
