package wheel

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/stepwheel/constants"
	"github.com/lixenwraith/stepwheel/scale"
)

// Config holds the wheel's range and physics tuning. Zero values for the
// tuning fields are filled from constants defaults by DefaultConfig; a
// hand-built Config must pass Validate.
type Config struct {
	Range scale.Range

	// TickSpacing is the pixel distance between adjacent ticks at rest
	TickSpacing float64

	// Friction is the per-reference-frame velocity multiplier in (0,1)
	Friction float64

	// FlickVelocity is the minimum release speed (px/s) that triggers an
	// inertia coast; slower releases settle directly
	FlickVelocity float64

	// MinVelocity is the coast speed (px/s) below which inertia stops
	MinVelocity float64

	// RubberBand is the dampening factor in [0,1] applied to drag offset
	// beyond the range boundary
	RubberBand float64

	// SettleDuration is the snap-to-step animation length
	SettleDuration time.Duration
}

// DefaultConfig returns a Config for the given range with standard tuning.
func DefaultConfig(r scale.Range) Config {
	return Config{
		Range:          r,
		TickSpacing:    constants.DefaultTickSpacing,
		Friction:       constants.DefaultFriction,
		FlickVelocity:  constants.DefaultFlickVelocity,
		MinVelocity:    constants.DefaultMinVelocity,
		RubberBand:     constants.DefaultRubberBand,
		SettleDuration: constants.DefaultSettleDuration,
	}
}

// Validate fails fast on configuration that would make the physics or step
// arithmetic meaningless.
func (c Config) Validate() error {
	if err := c.Range.Validate(); err != nil {
		return err
	}
	if math.IsNaN(c.TickSpacing) || c.TickSpacing <= 0 {
		return fmt.Errorf("tick spacing must be positive, got %v", c.TickSpacing)
	}
	if math.IsNaN(c.Friction) || c.Friction <= 0 || c.Friction >= 1 {
		return fmt.Errorf("friction must be in (0,1), got %v", c.Friction)
	}
	if math.IsNaN(c.FlickVelocity) || c.FlickVelocity <= 0 {
		return fmt.Errorf("flick velocity threshold must be positive, got %v", c.FlickVelocity)
	}
	if math.IsNaN(c.MinVelocity) || c.MinVelocity <= 0 {
		return fmt.Errorf("minimum velocity threshold must be positive, got %v", c.MinVelocity)
	}
	if math.IsNaN(c.RubberBand) || c.RubberBand < 0 || c.RubberBand > 1 {
		return fmt.Errorf("rubber band factor must be in [0,1], got %v", c.RubberBand)
	}
	if c.SettleDuration <= 0 {
		return fmt.Errorf("settle duration must be positive, got %v", c.SettleDuration)
	}
	return nil
}
