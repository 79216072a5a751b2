// Package event carries normalized gesture events from producer goroutines
// (terminal input, websocket controllers) to the single-threaded frame
// loop that owns the wheel engine.
package event

// Type identifies a gesture event.
type Type int

const (
	// GestureBegan marks a touch/press down starting a drag session
	GestureBegan Type = iota

	// GestureChanged carries cumulative horizontal translation since the
	// drag began, plus instantaneous velocity
	GestureChanged

	// GestureEnded carries the release velocity
	GestureEnded

	// GestureInterrupted marks a touch the host cancelled mid-animation
	GestureInterrupted

	// Quit asks the frame loop to shut down
	Quit
)

func (t Type) String() string {
	switch t {
	case GestureBegan:
		return "began"
	case GestureChanged:
		return "changed"
	case GestureEnded:
		return "ended"
	case GestureInterrupted:
		return "interrupted"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// GestureEvent is a single normalized input event. Translation and velocity
// are in pixels / pixels-per-second; unused fields are zero for Began,
// Interrupted and Quit.
type GestureEvent struct {
	Type             Type
	TranslationPx    float64
	VelocityPxPerSec float64
}
