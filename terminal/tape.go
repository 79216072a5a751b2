package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stepwheel/scale"
	"github.com/lixenwraith/stepwheel/wheel"
)

// Tick glyph selection
const (
	minorTick    = '│'
	majorTick    = '┃'
	indicator    = '▼'
	majorEvery   = 5 // every Nth tick is major and labeled
	labelPadding = 1
)

// Tape draws the wheel's tick tape on a tcell screen. The current render
// offset is pulled from the engine on every draw; the tape itself holds no
// interaction state.
type Tape struct {
	screen    tcell.Screen
	pxPerCell float64

	tickStyle      tcell.Style
	majorStyle     tcell.Style
	indicatorStyle tcell.Style
	labelStyle     tcell.Style
	valueStyle     tcell.Style
}

// NewTape creates a renderer for the given screen.
func NewTape(screen tcell.Screen, pxPerCell float64) *Tape {
	return &Tape{
		screen:    screen,
		pxPerCell: pxPerCell,

		tickStyle:      tcell.StyleDefault.Foreground(tcell.ColorGray),
		majorStyle:     tcell.StyleDefault.Foreground(tcell.ColorWhite),
		indicatorStyle: tcell.StyleDefault.Foreground(tcell.ColorYellow),
		labelStyle:     tcell.StyleDefault.Foreground(tcell.ColorTeal),
		valueStyle:     tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	}
}

// Draw renders the tape centered vertically, with the indicator marking the
// engine's current position.
func (t *Tape) Draw(w *wheel.Wheel, r scale.Range, tickSpacing float64) {
	t.screen.Clear()
	width, height := t.screen.Size()
	centerX := width / 2
	tapeY := height / 2

	offset := w.RenderOffset()
	stepCount := r.StepCount()

	for i := 0; i < stepCount; i++ {
		// Screen position of tick i: render offset plus the tick's own
		// resting distance from index 0.
		px := offset + float64(i)*tickSpacing
		x := centerX + int(math.Round(px/t.pxPerCell))
		if x < 0 || x >= width {
			continue
		}

		if i%majorEvery == 0 {
			t.screen.SetContent(x, tapeY, majorTick, nil, t.majorStyle)
			label := trimFloat(r.ValueOf(i))
			t.drawText(x-len(label)/2, tapeY+labelPadding+1, label, t.labelStyle)
		} else {
			t.screen.SetContent(x, tapeY, minorTick, nil, t.tickStyle)
		}
	}

	t.screen.SetContent(centerX, tapeY-1, indicator, nil, t.indicatorStyle)

	readout := fmt.Sprintf("%s  [%s]", trimFloat(w.Value()), w.State())
	t.drawText(centerX-len(readout)/2, tapeY-3, readout, t.valueStyle)

	t.screen.Show()
}

func (t *Tape) drawText(x, y int, text string, style tcell.Style) {
	width, height := t.screen.Size()
	if y < 0 || y >= height {
		return
	}
	for i, r := range text {
		cx := x + i
		if cx < 0 || cx >= width {
			continue
		}
		t.screen.SetContent(cx, y, r, nil, style)
	}
}

// trimFloat formats a value without trailing float noise.
func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
