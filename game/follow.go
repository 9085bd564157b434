package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Pointer reports where the cursor is in window pixels. ok is false when the
// cursor is not over the window.
type Pointer interface {
	Position() (pos mgl64.Vec2, ok bool)
}

// FixedPointer is a Pointer parked at one spot, for scripted runs and tests.
type FixedPointer struct {
	At      mgl64.Vec2
	Present bool
}

func (p *FixedPointer) Position() (mgl64.Vec2, bool) {
	return p.At, p.Present
}

// MoveTo parks the pointer at x, y and marks it present.
func (p *FixedPointer) MoveTo(x, y float64) {
	p.At = mgl64.Vec2{x, y}
	p.Present = true
}

// followCursor glues the held card to the pointer. Depth is left alone so the
// card keeps its draw order.
func (g *Game) followCursor() {
	entry, ok := g.heldCards.First(g.World)
	if !ok || !entry.HasComponent(TransformComponent) || g.Pointer == nil {
		return
	}
	cursor, ok := g.Pointer.Position()
	if !ok {
		return
	}
	world, err := g.Camera.ViewportToWorld2D(cursor)
	if err != nil {
		return
	}
	tf := donburi.Get[Transform](entry, TransformComponent)
	tf.Translation[0] = world.X()
	tf.Translation[1] = world.Y()
}
