package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the demo frame loop interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// ReferenceFrameRate is the frame rate the friction factor is expressed
	// against. Decay is scaled by dt so coast distance stays the same at
	// other refresh rates.
	ReferenceFrameRate = 60.0

	// MaxFrameDelta caps a single integration step. Longer gaps (debugger
	// stop, terminal suspend) would otherwise teleport the tape.
	MaxFrameDelta = 0.1
)

// Physics Defaults
const (
	// DefaultFriction is the per-reference-frame velocity multiplier
	DefaultFriction = 0.97

	// DefaultFlickVelocity is the minimum release speed (px/s) that starts
	// an inertia coast instead of an immediate settle
	DefaultFlickVelocity = 50.0

	// DefaultMinVelocity is the coast speed (px/s) below which inertia stops
	DefaultMinVelocity = 20.0

	// DefaultRubberBand is the dampening applied to drag offset beyond the
	// range boundary
	DefaultRubberBand = 0.2

	// DefaultSettleDuration is the snap-to-step animation length
	DefaultSettleDuration = 150 * time.Millisecond

	// MaxCoastDuration is the defensive hard bound on any inertia animation,
	// regardless of friction/velocity configuration
	MaxCoastDuration = 4 * time.Second

	// SettleTolerancePx is the offset gap below which settle completes
	// immediately instead of animating
	SettleTolerancePx = 1.0
)

// Default Tape Geometry
const (
	// DefaultTickSpacing is the pixel distance between adjacent ticks at rest
	DefaultTickSpacing = 12.0
)

// Event Queue Sizing
const (
	// GestureQueueSize is the fixed capacity of the gesture event ring buffer
	GestureQueueSize = 256

	// GestureQueueMask is the bitmask for fast modulo (GestureQueueSize - 1)
	GestureQueueMask = 255
)
