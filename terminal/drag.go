// Package terminal is the tcell front end for the wheel: it renders the
// tick tape and turns terminal mouse input into the engine's normalized
// gesture stream. It is presentation glue; all interaction logic lives in
// package wheel.
package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stepwheel/event"
)

// velocityWindow is the sample age considered when estimating release
// velocity. Mirrors the short look-back touch systems use so a stop-then-
// release reads as velocity zero.
const velocityWindow = 120 * time.Millisecond

// maxSamples bounds the sliding sample buffer.
const maxSamples = 16

type dragSample struct {
	at time.Time
	x  int
}

// DragTracker converts tcell mouse events into gesture events on the
// queue. Horizontal cell movement is scaled by pxPerCell so the engine
// works in pixel units regardless of terminal cell geometry.
type DragTracker struct {
	queue     *event.Queue
	pxPerCell float64
	now       func() time.Time // injectable for tests

	dragging bool
	startX   int
	samples  []dragSample
}

// NewDragTracker creates a tracker pushing onto the given queue.
func NewDragTracker(queue *event.Queue, pxPerCell float64) *DragTracker {
	return &DragTracker{
		queue:     queue,
		pxPerCell: pxPerCell,
		now:       time.Now,
		samples:   make([]dragSample, 0, maxSamples),
	}
}

// HandleEvent processes one tcell event. Returns false when the event asks
// the application to quit.
func (d *DragTracker) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			d.queue.Push(event.GestureEvent{Type: event.Quit})
			return false
		}
	case *tcell.EventMouse:
		d.handleMouse(ev)
	}
	return true
}

func (d *DragTracker) handleMouse(ev *tcell.EventMouse) {
	x, _ := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !d.dragging:
		d.dragging = true
		d.startX = x
		d.samples = d.samples[:0]
		d.record(x)
		d.queue.Push(event.GestureEvent{Type: event.GestureBegan})

	case pressed && d.dragging:
		d.record(x)
		d.queue.Push(event.GestureEvent{
			Type:             event.GestureChanged,
			TranslationPx:    float64(x-d.startX) * d.pxPerCell,
			VelocityPxPerSec: d.velocity(),
		})

	case !pressed && d.dragging:
		d.dragging = false
		d.record(x)
		d.queue.Push(event.GestureEvent{
			Type:             event.GestureEnded,
			VelocityPxPerSec: d.velocity(),
		})
	}
}

// record appends a position sample and trims ones older than the window.
func (d *DragTracker) record(x int) {
	now := d.now()
	d.samples = append(d.samples, dragSample{at: now, x: x})

	cutoff := now.Add(-velocityWindow)
	trim := 0
	for trim < len(d.samples)-1 && d.samples[trim].at.Before(cutoff) {
		trim++
	}
	d.samples = d.samples[trim:]
	if len(d.samples) > maxSamples {
		d.samples = d.samples[len(d.samples)-maxSamples:]
	}
}

// velocity estimates px/s across the sample window. Fewer than two samples,
// or a degenerate time span, reads as zero.
func (d *DragTracker) velocity() float64 {
	if len(d.samples) < 2 {
		return 0
	}
	first := d.samples[0]
	last := d.samples[len(d.samples)-1]
	span := last.at.Sub(first.at).Seconds()
	if span <= 0 {
		return 0
	}
	return float64(last.x-first.x) * d.pxPerCell / span
}
