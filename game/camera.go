package game

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrOutsideViewport = errors.New("pointer outside viewport")
	ErrNoProjection    = errors.New("camera has no usable projection")
)

// Viewport is the rectangle of the window the camera renders to, in pixels,
// origin top-left.
type Viewport struct {
	X, Y, W, H int
}

func (v Viewport) Contains(p mgl64.Vec2) bool {
	x, y := p.X()-float64(v.X), p.Y()-float64(v.Y)
	return x >= 0 && x < float64(v.W) && y >= 0 && y < float64(v.H)
}

// Camera is an orthographic 2D camera. The world point at Position is drawn in
// the centre of the viewport, +y points up and one pixel covers Scale world units.
type Camera struct {
	Position mgl64.Vec2
	Scale    float64
	Viewport Viewport
}

// NewCamera returns a camera centred on the world origin covering a w x h window.
func NewCamera(w, h int, scale float64) Camera {
	return Camera{
		Scale:    scale,
		Viewport: Viewport{W: w, H: h},
	}
}

func (c Camera) view() mgl64.Mat4 {
	return mgl64.Translate3D(-c.Position.X(), -c.Position.Y(), 0)
}

func (c Camera) projection() mgl64.Mat4 {
	hw := float64(c.Viewport.W) / 2 * c.Scale
	hh := float64(c.Viewport.H) / 2 * c.Scale
	return mgl64.Ortho2D(-hw, hw, -hh, hh)
}

func (c Camera) usable() bool {
	return c.Viewport.W > 0 && c.Viewport.H > 0 && c.Scale > 0
}

// ViewportToWorld2D maps a window pixel position to world coordinates.
func (c Camera) ViewportToWorld2D(screen mgl64.Vec2) (mgl64.Vec2, error) {
	if !c.usable() {
		return mgl64.Vec2{}, ErrNoProjection
	}
	if !c.Viewport.Contains(screen) {
		return mgl64.Vec2{}, ErrOutsideViewport
	}
	// Window coordinates for unprojection have their origin bottom-left.
	win := mgl64.Vec3{
		screen.X() - float64(c.Viewport.X),
		float64(c.Viewport.H) - (screen.Y() - float64(c.Viewport.Y)),
		0,
	}
	obj, err := mgl64.UnProject(win, c.view(), c.projection(), 0, 0, c.Viewport.W, c.Viewport.H)
	if err != nil {
		return mgl64.Vec2{}, errors.Join(ErrNoProjection, err)
	}
	return mgl64.Vec2{obj.X(), obj.Y()}, nil
}

// WorldToViewport maps a world position to window pixels. Points outside the
// view map outside the viewport rectangle.
func (c Camera) WorldToViewport(world mgl64.Vec2) mgl64.Vec2 {
	if !c.usable() {
		return mgl64.Vec2{}
	}
	win := mgl64.Project(mgl64.Vec3{world.X(), world.Y(), 0}, c.view(), c.projection(), 0, 0, c.Viewport.W, c.Viewport.H)
	return mgl64.Vec2{
		float64(c.Viewport.X) + win.X(),
		float64(c.Viewport.Y) + float64(c.Viewport.H) - win.Y(),
	}
}
