// Package vis implements a Gio-based step-through visualization of a
// Rover plan.
package vis

import (
	"fmt"
	"image/color"
	"time"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/roverplan/internal/algo"
	"github.com/elektrokombinacija/roverplan/internal/core"
	"github.com/elektrokombinacija/roverplan/internal/vis/draw"
	"github.com/elektrokombinacija/roverplan/internal/vis/interact"
)

// App is the plan visualizer. It owns a solved plan and a cursor into it;
// playback steps the cursor forward through the resulting states.
type App struct {
	theme  *material.Theme
	camera *interact.Camera

	initial *core.State
	goal    *core.Goal
	states  []*core.State // states[i] is the state after plan.Plan[i-1]; states[0] is initial
	plan    *algo.Result

	cursor    int
	playing   bool
	frameTick int
}

// NewApp builds the default demonstration scenario, solves it, and
// prepares the step-through view.
func NewApp() *App {
	initial, goal := defaultScenario()
	result, err := algo.NewSolver(algo.BestFirst, 10*time.Second).Solve(initial, goal)

	states := []*core.State{initial}
	if err == nil {
		cur := initial
		for _, n := range result.Plan {
			next, _, ok := core.Apply(cur, goal, n.Action)
			if !ok {
				break
			}
			states = append(states, next)
			cur = next
		}
	}

	return &App{
		theme:   material.NewTheme(),
		camera:  interact.NewCamera(),
		initial: initial,
		goal:    goal,
		states:  states,
		plan:    result,
	}
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(
					key.Filter{Focus: tag, Optional: key.ModCtrl},
					pointer.Filter{Target: tag, Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll},
				)
				if !ok {
					break
				}
				switch e := ev.(type) {
				case key.Event:
					if e.State == key.Press {
						a.handleKeyEvent(e)
					}
				case pointer.Event:
					a.camera.HandleEvent(gtx, e)
				}
			}
			event.Op(gtx.Ops, tag)

			a.layout(gtx)
			e.Frame(gtx.Ops)

			if a.playing {
				a.frameTick++
				const framesPerStep = 30 // ~0.5s at 60fps
				if a.frameTick >= framesPerStep {
					a.frameTick = 0
					a.stepForward()
				}
				w.Invalidate()
			}
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case key.NameSpace:
		a.playing = !a.playing
	case key.NameLeftArrow:
		a.stepBack()
	case key.NameRightArrow:
		a.stepForward()
	case key.NameHome:
		a.cursor = 0
	case "R":
		a.camera.Reset()
	}
}

func (a *App) stepForward() {
	if a.cursor < len(a.states)-1 {
		a.cursor++
	} else {
		a.playing = false
	}
}

func (a *App) stepBack() {
	if a.cursor > 0 {
		a.cursor--
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	current := a.states[a.cursor]
	positions := draw.CircleLayout(len(current.Waypoints), 220)

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			draw.DrawGraph(gtx, current, positions, a.camera)
			return layout.Dimensions{Size: gtx.Constraints.Max}
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutStatusBar(gtx)
		}),
	)
}

func (a *App) layoutStatusBar(gtx layout.Context) layout.Dimensions {
	label := material.Body1(a.theme, a.statusText())
	label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	return layout.UniformInset(8).Layout(gtx, label.Layout)
}

func (a *App) statusText() string {
	if a.plan == nil || len(a.plan.Plan) == 0 {
		return "step 0/0 — no plan (space: play, arrows: step, R: reset camera)"
	}
	step := "initial state"
	if a.cursor > 0 {
		step = a.plan.Plan[a.cursor-1].Action.Kind.String()
	}
	return fmt.Sprintf("step %d/%d — %s (space: play, arrows: step, R: reset camera)",
		a.cursor, len(a.states)-1, step)
}

// defaultScenario builds a small, hand-authored instance so the
// visualizer has something to show without requiring a problem file.
func defaultScenario() (*core.State, *core.Goal) {
	const n = 5
	s := &core.State{
		Waypoints: make([]core.Waypoint, n),
		Rovers:    make([]core.Rover, 1),
		Stores:    []core.Store{{ID: 0, RoverID: 0}},
	}
	for i := range s.Waypoints {
		s.Waypoints[i].ID = i
		s.Waypoints[i].VisibleWaypoints = make([]bool, n)
	}
	link := func(a, b int) {
		s.Waypoints[a].VisibleWaypoints[b] = true
		s.Waypoints[b].VisibleWaypoints[a] = true
	}
	link(0, 1)
	link(1, 2)
	link(2, 3)
	link(3, 4)
	link(4, 0)

	r := &s.Rovers[0]
	r.ID = 0
	r.Position = 0
	r.Energy = 80
	r.Available = true
	r.EquippedSoil = true
	r.HasSoilAnalysis = make([]bool, n)
	r.HasRockAnalysis = make([]bool, n)
	r.HaveImage = [][]bool{}
	r.CanTraverse = make([][]bool, n)
	for i := range r.CanTraverse {
		r.CanTraverse[i] = make([]bool, n)
	}
	traverse := func(a, b int) {
		r.CanTraverse[a][b] = true
		r.CanTraverse[b][a] = true
	}
	traverse(0, 1)
	traverse(1, 2)
	traverse(2, 3)
	traverse(3, 4)
	traverse(4, 0)

	s.Waypoints[2].HasSoilSample = true
	s.Lander.Position = 3
	s.Lander.ChannelFree = true
	s.Waypoints[3].VisibleWaypoints[2] = true
	s.Waypoints[2].VisibleWaypoints[3] = true

	goal := &core.Goal{
		Soil: make([]bool, n),
		Rock: make([]bool, n),
	}
	goal.Soil[2] = true

	return s, goal
}
