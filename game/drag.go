package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/SvenDH/ward/audio"
)

type PointerAction int

const (
	PointerPress PointerAction = iota
	PointerRelease
)

type PointerEvent struct {
	Action PointerAction
	Entity donburi.Entity
}

var PointerInput = events.NewEventType[PointerEvent]()

// DropHandler is called after a held card has been released. It decides what,
// if anything, dropping the card at that spot does.
type DropHandler interface {
	CardDropped(g *Game, card donburi.Entity, at mgl64.Vec3)
}

type DropFunc func(g *Game, card donburi.Entity, at mgl64.Vec3)

func (f DropFunc) CardDropped(g *Game, card donburi.Entity, at mgl64.Vec3) {
	f(g, card, at)
}

// Press queues a pointer press on an entity.
func (g *Game) Press(e donburi.Entity) {
	PointerInput.Publish(g.World, PointerEvent{Action: PointerPress, Entity: e})
}

// Release queues a pointer release on an entity.
func (g *Game) Release(e donburi.Entity) {
	PointerInput.Publish(g.World, PointerEvent{Action: PointerRelease, Entity: e})
}

func (g *Game) onPointer(w donburi.World, ev PointerEvent) {
	switch ev.Action {
	case PointerPress:
		g.holdCard(ev.Entity)
	case PointerRelease:
		g.dropCard(ev.Entity)
	}
}

func (g *Game) holdCard(e donburi.Entity) {
	entry, ok := g.entry(e)
	if !ok || !entry.HasComponent(CardTag) || entry.HasComponent(HeldTag) {
		return
	}
	// Only one card can be in the pointer's grip.
	if g.heldCards.Count(g.World) > 0 {
		return
	}
	entry.AddComponent(HeldTag)
	g.Logger.Printf("picked up card %s", g.describe(entry))
	g.Cues.Play(audio.CuePickup)
}

func (g *Game) dropCard(e donburi.Entity) {
	entry, ok := g.entry(e)
	if !ok || !entry.HasComponent(CardTag) || !entry.HasComponent(HeldTag) {
		return
	}
	entry.RemoveComponent(HeldTag)
	g.Logger.Printf("dropped card %s", g.describe(entry))
	g.Cues.Play(audio.CueDrop)

	if g.Drop != nil {
		var at mgl64.Vec3
		if entry.HasComponent(TransformComponent) {
			at = donburi.Get[Transform](entry, TransformComponent).Translation
		}
		g.Drop.CardDropped(g, e, at)
	}
}

// Held returns the card in the pointer's grip.
func (g *Game) Held() (donburi.Entity, bool) {
	entry, ok := g.heldCards.First(g.World)
	if !ok {
		return donburi.Null, false
	}
	return entry.Entity(), true
}
