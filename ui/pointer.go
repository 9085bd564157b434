package ui

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// CursorPointer reports the ebiten cursor, treating positions outside the
// screen as no cursor at all.
type CursorPointer struct {
	Width, Height int
}

func (p CursorPointer) Position() (mgl64.Vec2, bool) {
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return mgl64.Vec2{}, false
	}
	return cursor(x, y), true
}

func cursor(x, y int) mgl64.Vec2 {
	return mgl64.Vec2{float64(x), float64(y)}
}
