package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/riemann-tutor/audio"
	"github.com/lixenwraith/riemann-tutor/config"
	"github.com/lixenwraith/riemann-tutor/curves"
	"github.com/lixenwraith/riemann-tutor/engine"
	"github.com/lixenwraith/riemann-tutor/input"
	"github.com/lixenwraith/riemann-tutor/render"
)

// App wires the screen, the session, the input machine and the
// renderer into one frame-driven loop.
type App struct {
	screen   tcell.Screen
	session  *engine.Session
	machine  *input.Machine
	renderer *render.Renderer
	feedback *audio.Feedback
	cfg      config.Config
}

func NewApp(cfg config.Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	a := &App{
		screen:   screen,
		session:  engine.NewSession(),
		machine:  input.NewMachine(),
		renderer: render.New(screen, cfg.SampleStep),
		cfg:      cfg,
	}

	if cfg.Audio {
		fb, err := audio.NewFeedback()
		if err != nil {
			// Non-fatal, the tutor can run without sound.
			log.Printf("audio initialization failed: %v", err)
		}
		a.feedback = fb
	}

	return a, nil
}

// handle applies one intent to the session. Returns false on quit.
func (a *App) handle(it *input.Intent) bool {
	switch it.Type {
	case input.IntentQuit:
		return false

	case input.IntentResize:
		a.renderer.Resize()
		a.screen.Sync()

	case input.IntentSelectCurve:
		a.session.Select(it.Kind)
		a.feedback.Accept()

	case input.IntentBeginPoints:
		a.session.BeginCustom()

	case input.IntentClear:
		a.session.Clear()

	case input.IntentCount:
		a.session.SetCount(it.Count)
		a.feedback.Accept()

	case input.IntentRule:
		a.session.SetRule(it.Rule)
		a.feedback.Accept()

	case input.IntentPoint:
		full, err := a.session.AddPoint(curvePoint(it))
		if err != nil {
			// The whole entry was discarded; stop prompting.
			a.machine.Reset()
			a.feedback.Reject()
			break
		}
		a.feedback.Accept()
		if full {
			a.machine.Reset()
			a.finishPoints()
		}

	case input.IntentPointsDone:
		a.finishPoints()

	case input.IntentCancel:
		if a.session.Entering {
			a.session.CancelCustom()
		}

	case input.IntentInvalid:
		a.session.Status = "could not parse entry"
		a.feedback.Reject()
	}

	return true
}

func curvePoint(it *input.Intent) curves.Point {
	return curves.Point{X: it.X, Y: it.Y}
}

func (a *App) finishPoints() {
	if err := a.session.FinishCustom(); err != nil {
		a.feedback.Reject()
		return
	}
	a.feedback.Accept()
}

// run is the frame loop: input events are applied as they arrive,
// the approximation is recomputed and drawn on every tick. There is
// no termination condition beyond a quit intent.
func (a *App) run() {
	ticker := time.NewTicker(a.cfg.FrameInterval())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			it := a.machine.Process(ev)
			if it == nil {
				continue
			}
			if !a.handle(it) {
				return
			}

		case <-ticker.C:
			label, echo, active := a.machine.Prompt()
			a.renderer.Frame(a.session, a.session.Step(), label, echo, active)
		}
	}
}

func (a *App) cleanup() {
	a.feedback.Close()
	a.screen.Fini()
}

func main() {
	cfg, err := config.Load("riemann.yaml")
	if err != nil {
		// Fall back to defaults rather than refusing to start.
		log.Printf("config load failed, using defaults: %v", err)
		cfg = config.Default()
	}

	app, err := NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
