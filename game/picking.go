package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PickCard returns the topmost card under a world position. Cards are stacked
// by depth first and by slot second, matching the draw order.
func (g *Game) PickCard(point mgl64.Vec2) (donburi.Entity, bool) {
	best := donburi.Null
	found := false
	bestZ, bestSlot := math.Inf(-1), -1

	hw, hh := g.Config.CardWidth/2, g.Config.CardHeight/2
	g.placedCards.Each(g.World, func(entry *donburi.Entry) {
		pos := donburi.Get[Transform](entry, TransformComponent).Translation
		if math.Abs(point.X()-pos.X()) > hw || math.Abs(point.Y()-pos.Y()) > hh {
			return
		}
		slot, _ := g.Hand.OffsetOf(entry.Entity())
		if found && (pos.Z() < bestZ || (pos.Z() == bestZ && slot < bestSlot)) {
			return
		}
		best, found = entry.Entity(), true
		bestZ, bestSlot = pos.Z(), slot
	})
	return best, found
}

// PickCardAt picks with a window pixel position.
func (g *Game) PickCardAt(screen mgl64.Vec2) (donburi.Entity, bool) {
	world, err := g.Camera.ViewportToWorld2D(screen)
	if err != nil {
		return donburi.Null, false
	}
	return g.PickCard(world)
}
