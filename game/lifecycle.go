package game

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type LifecycleKind int

const (
	CardAttached LifecycleKind = iota
	CardDetached
)

// LifecycleEvent is queued whenever the card tag is attached to or detached
// from an entity. One event type keeps attach/detach pairs in publish order.
type LifecycleEvent struct {
	Kind   LifecycleKind
	Entity donburi.Entity
}

var CardLifecycle = events.NewEventType[LifecycleEvent]()

// AttachCard tags an entity as a card. The hand picks it up when the event
// queue is drained at the start of the next update.
func (g *Game) AttachCard(e donburi.Entity) {
	entry, ok := g.entry(e)
	if !ok || entry.HasComponent(CardTag) {
		return
	}
	entry.AddComponent(CardTag)
	CardLifecycle.Publish(g.World, LifecycleEvent{Kind: CardAttached, Entity: e})
}

// DetachCard strips the card tag, and the held tag with it.
func (g *Game) DetachCard(e donburi.Entity) {
	entry, ok := g.entry(e)
	if !ok || !entry.HasComponent(CardTag) {
		return
	}
	if entry.HasComponent(HeldTag) {
		entry.RemoveComponent(HeldTag)
	}
	entry.RemoveComponent(CardTag)
	CardLifecycle.Publish(g.World, LifecycleEvent{Kind: CardDetached, Entity: e})
}

// Despawn removes an entity from the world, detaching it from the hand first
// if it is a card.
func (g *Game) Despawn(e donburi.Entity) {
	entry, ok := g.entry(e)
	if !ok {
		return
	}
	if entry.HasComponent(CardTag) {
		CardLifecycle.Publish(g.World, LifecycleEvent{Kind: CardDetached, Entity: e})
	}
	g.World.Remove(e)
}

func (g *Game) onCardLifecycle(w donburi.World, ev LifecycleEvent) {
	switch ev.Kind {
	case CardAttached:
		g.Hand.Insert(ev.Entity)
	case CardDetached:
		g.Hand.Remove(ev.Entity)
	}
}
