// wheeldemo renders a stepping wheel in the terminal. Drag it with the
// mouse, flick it to coast, overshoot the ends to feel the rubber band.
// Optionally accepts remote gesture events over WebSocket.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stepwheel/audio"
	"github.com/lixenwraith/stepwheel/clock"
	"github.com/lixenwraith/stepwheel/constants"
	"github.com/lixenwraith/stepwheel/event"
	"github.com/lixenwraith/stepwheel/remote"
	"github.com/lixenwraith/stepwheel/terminal"
	"github.com/lixenwraith/stepwheel/wheel"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (optional)")
		listen     = flag.String("listen", "", "enable WebSocket gesture source on this address (e.g. :8137)")
		mute       = flag.Bool("mute", false, "disable audio feedback")
	)
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *listen != "" {
		cfg.Remote.Enabled = true
		cfg.Remote.Listen = *listen
	}
	if *mute {
		cfg.Audio.Enabled = false
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	feedback := audio.NewFeedback(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := feedback.Initialize(); err != nil {
			// Non-fatal, the wheel works without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer feedback.Close()

	engineCfg := cfg.engineConfig()
	w, err := wheel.New(engineCfg, cfg.Wheel.Initial, wheel.Callbacks{
		OnStepCrossing: feedback.Tick,
		OnBoundaryHit:  feedback.Boundary,
	})
	if err != nil {
		return err
	}
	defer w.Close()

	queue := event.NewQueue()

	if cfg.Remote.Enabled {
		src := remote.NewSource(cfg.Remote.Listen, queue)
		if err := src.Start(); err != nil {
			return err
		}
		defer src.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	tracker := terminal.NewDragTracker(queue, cfg.Display.PxPerCell)
	tape := terminal.NewTape(screen, cfg.Display.PxPerCell)

	// Input goroutine: tcell events are normalized onto the queue, which
	// the frame loop drains. The engine is only ever touched from the
	// frame callback.
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if !tracker.HandleEvent(ev) {
				return
			}
		}
	}()

	done := make(chan struct{})
	frames := clock.NewTicker(constants.FrameUpdateInterval)
	frames.Start(func(dt float64) {
		for _, ev := range queue.Consume() {
			if !apply(w, ev) {
				select {
				case <-done:
				default:
					close(done)
				}
				return
			}
		}
		w.OnFrame(dt)
		tape.Draw(w, engineCfg.Range, engineCfg.TickSpacing)
	})

	<-done
	frames.Stop()
	return nil
}

// apply feeds one queued event into the engine. Returns false on quit.
func apply(w *wheel.Wheel, ev event.GestureEvent) bool {
	switch ev.Type {
	case event.GestureBegan:
		w.GestureBegan()
	case event.GestureChanged:
		w.GestureChanged(ev.TranslationPx, ev.VelocityPxPerSec)
	case event.GestureEnded:
		w.GestureEnded(ev.VelocityPxPerSec)
	case event.GestureInterrupted:
		w.GestureInterrupted()
	case event.Quit:
		return false
	}
	return true
}
