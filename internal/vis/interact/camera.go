// Package interact handles pan and zoom for the plan visualizer.
package interact

import (
	"gioui.org/io/pointer"
	"gioui.org/layout"
)

// Camera manages the view transform (pan and zoom) between world and
// screen coordinates.
type Camera struct {
	OffsetX float32
	OffsetY float32
	Zoom    float32

	dragging bool
	lastX    float32
	lastY    float32
}

// NewCamera creates a camera with a default view.
func NewCamera() *Camera {
	return &Camera{OffsetX: 300, OffsetY: 300, Zoom: 1.0}
}

// Reset restores the default view.
func (c *Camera) Reset() {
	c.OffsetX, c.OffsetY, c.Zoom = 300, 300, 1.0
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(worldX, worldY float64) (screenX, screenY float32) {
	return float32(worldX)*c.Zoom + c.OffsetX, float32(worldY)*c.Zoom + c.OffsetY
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(screenX, screenY float32) (worldX, worldY float64) {
	return float64((screenX - c.OffsetX) / c.Zoom), float64((screenY - c.OffsetY) / c.Zoom)
}

// HandleEvent processes a pointer event for drag-to-pan and scroll-to-zoom.
func (c *Camera) HandleEvent(gtx layout.Context, ev pointer.Event) {
	switch ev.Kind {
	case pointer.Press:
		c.dragging = ev.Buttons.Contain(pointer.ButtonSecondary) || ev.Buttons.Contain(pointer.ButtonTertiary)
		c.lastX, c.lastY = ev.Position.X, ev.Position.Y

	case pointer.Drag:
		if c.dragging {
			c.OffsetX += ev.Position.X - c.lastX
			c.OffsetY += ev.Position.Y - c.lastY
		}
		c.lastX, c.lastY = ev.Position.X, ev.Position.Y

	case pointer.Release:
		c.dragging = false

	case pointer.Scroll:
		if ev.Scroll.Y == 0 {
			return
		}
		worldX, worldY := c.ScreenToWorld(ev.Position.X, ev.Position.Y)
		factor := float32(1.1)
		if ev.Scroll.Y > 0 {
			c.Zoom /= factor
		} else {
			c.Zoom *= factor
		}
		if c.Zoom < 0.1 {
			c.Zoom = 0.1
		}
		if c.Zoom > 10 {
			c.Zoom = 10
		}
		newX, newY := c.WorldToScreen(worldX, worldY)
		c.OffsetX += ev.Position.X - newX
		c.OffsetY += ev.Position.Y - newY
	}
}
