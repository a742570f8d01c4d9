// Package draw renders a Rover problem's waypoint graph and the rovers
// moving over it.
package draw

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/roverplan/internal/core"
	"github.com/elektrokombinacija/roverplan/internal/vis/interact"
)

// Pos is a rendering-only 2D position; the domain model carries no
// coordinates of its own, so the visualizer lays waypoints out itself.
type Pos struct{ X, Y float64 }

// CircleLayout places n waypoints evenly around a circle of the given
// radius, centered on the origin.
func CircleLayout(n int, radius float64) []Pos {
	positions := make([]Pos, n)
	if n == 0 {
		return positions
	}
	for i := range positions {
		angle := 2 * math.Pi * float64(i) / float64(n)
		positions[i] = Pos{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return positions
}

var (
	ColorWaypoint    = color.NRGBA{R: 100, G: 120, B: 140, A: 255}
	ColorWaypointLit = color.NRGBA{R: 220, G: 200, B: 90, A: 255}
	ColorLander      = color.NRGBA{R: 200, G: 90, B: 90, A: 255}
	ColorEdge        = color.NRGBA{R: 80, G: 90, B: 100, A: 180}
	ColorRover       = color.NRGBA{R: 90, G: 180, B: 220, A: 255}
)

// DrawGraph renders every waypoint, the visibility edges between them,
// the lander, and the current rover positions.
func DrawGraph(gtx layout.Context, s *core.State, layoutPos []Pos, camera *interact.Camera) {
	for from, wp := range s.Waypoints {
		for to, visible := range wp.VisibleWaypoints {
			if !visible || from >= to {
				continue
			}
			DrawEdge(gtx, layoutPos[from], layoutPos[to], camera, ColorEdge)
		}
	}

	for i, wp := range s.Waypoints {
		col := ColorWaypoint
		if wp.InSun {
			col = ColorWaypointLit
		}
		DrawCircle(gtx, layoutPos[i], camera, col, 10)
	}

	if s.Lander.Position >= 0 && s.Lander.Position < len(layoutPos) {
		DrawCircle(gtx, layoutPos[s.Lander.Position], camera, ColorLander, 6)
	}

	for _, r := range s.Rovers {
		if r.Position < 0 || r.Position >= len(layoutPos) {
			continue
		}
		DrawCircle(gtx, offset(layoutPos[r.Position], r.ID), camera, ColorRover, 5)
	}
}

// offset nudges overlapping rover markers apart so two rovers sharing a
// waypoint remain individually visible.
func offset(p Pos, roverID int) Pos {
	const spread = 6
	return Pos{X: p.X + float64(roverID)*spread, Y: p.Y + float64(roverID)*spread}
}

// DrawCircle draws a filled circle at a world position.
func DrawCircle(gtx layout.Context, pos Pos, camera *interact.Camera, col color.NRGBA, radius float32) {
	cx, cy := camera.WorldToScreen(pos.X, pos.Y)
	r := radius * camera.Zoom

	var path clip.Path
	path.Begin(gtx.Ops)
	path.Move(f32.Pt(cx+r, cy))
	const segments = 20
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		x := cx + r*float32(math.Cos(angle))
		y := cy + r*float32(math.Sin(angle))
		path.Line(f32.Pt(x-path.Pos().X, y-path.Pos().Y))
	}
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// DrawEdge draws a line between two world positions.
func DrawEdge(gtx layout.Context, p1, p2 Pos, camera *interact.Camera, col color.NRGBA) {
	x1, y1 := camera.WorldToScreen(p1.X, p1.Y)
	x2, y2 := camera.WorldToScreen(p2.X, p2.Y)

	dx, dy := x2-x1, y2-y1
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}
	dx, dy = dx/length, dy/length
	width := float32(2.0) * camera.Zoom
	px, py := -dy*width/2, dx*width/2

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x1+px, y1+py))
	path.LineTo(f32.Pt(x2+px, y2+py))
	path.LineTo(f32.Pt(x2-px, y2-py))
	path.LineTo(f32.Pt(x1-px, y1-py))
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}
