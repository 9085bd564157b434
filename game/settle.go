package game

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// SmoothNudge moves from towards to by an exponentially decaying step. The
// fraction covered depends only on rate*dt, so a card crosses the same
// distance per second at any frame rate and never passes its target.
func SmoothNudge(from, to mgl64.Vec3, rate float64, dt time.Duration) mgl64.Vec3 {
	t := 1 - math.Exp(-rate*dt.Seconds())
	return from.Add(to.Sub(from).Mul(t))
}

// SlotTarget is the resting position of the card in the given slot.
func (g *Game) SlotTarget(slot int) mgl64.Vec3 {
	return mgl64.Vec3{float64(slot) * g.Config.SlotSpacing, g.Config.SlotOffsetY, 0}
}

// settleCards eases every card that is not held towards its slot.
func (g *Game) settleCards(dt time.Duration) {
	g.restingCards.Each(g.World, func(entry *donburi.Entry) {
		offset, ok := g.Hand.OffsetOf(entry.Entity())
		if !ok {
			panic(fmt.Sprintf("card %v is tagged but missing from the hand", entry.Entity()))
		}
		tf := donburi.Get[Transform](entry, TransformComponent)
		tf.Translation = SmoothNudge(tf.Translation, g.SlotTarget(offset), g.Config.SmoothingRate, dt)
	})
}
