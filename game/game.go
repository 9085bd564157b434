package game

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/SvenDH/ward/audio"
	"github.com/SvenDH/ward/config"
	"github.com/SvenDH/ward/hand"
)

// CuePlayer plays short interface sounds.
type CuePlayer interface {
	Play(cue audio.Cue)
}

// Game owns the world and everything the per-frame systems share. All of it
// is touched from the update loop only.
type Game struct {
	World    donburi.World
	Hand     *hand.Hand
	Patients PatientQueue
	Camera   Camera
	Config   config.Config
	Status   Status

	Pointer Pointer
	Logger  *log.Logger
	Cues    CuePlayer
	Drop    DropHandler

	// Labels dealt when treatment starts
	StartingHand []string

	state    State
	next     *State
	admitted int

	heldCards    *donburi.Query
	restingCards *donburi.Query
	placedCards  *donburi.Query
	allCards     *donburi.Query
}

// New creates a game in the start menu.
func New(cfg config.Config) *Game {
	g := &Game{
		World:  donburi.NewWorld(),
		Hand:   hand.New(),
		Camera: NewCamera(cfg.WindowWidth, cfg.WindowHeight, cfg.CameraScale),
		Config: cfg,
		Logger: log.Default(),
		Cues:   audio.Nop{},
		state:  StateStartMenu,

		heldCards: donburi.NewQuery(filter.Contains(CardTag, HeldTag)),
		restingCards: donburi.NewQuery(filter.And(
			filter.Contains(CardTag, TransformComponent),
			filter.Not(filter.Contains(HeldTag)),
		)),
		placedCards: donburi.NewQuery(filter.Contains(CardTag, TransformComponent)),
		allCards:    donburi.NewQuery(filter.Contains(CardTag)),
	}
	PointerInput.Subscribe(g.World, g.onPointer)
	CardLifecycle.Subscribe(g.World, g.onCardLifecycle)
	return g
}

// Update runs one frame. Queued pointer input is handled before card
// lifecycle events, and both before any card moves, so the hand is settled
// by the time slots are read.
func (g *Game) Update(dt time.Duration) {
	g.applyTransition()
	g.fillPatients()

	PointerInput.ProcessEvents(g.World)
	CardLifecycle.ProcessEvents(g.World)

	if g.state == StateTreatment {
		g.followCursor()
		g.settleCards(dt)
	}
}

// Deal spawns a card at the world origin and attaches it to the hand.
func (g *Game) Deal(label string) donburi.Entity {
	e := g.World.Create(TransformComponent, LabelComponent)
	entry := g.World.Entry(e)
	donburi.SetValue(entry, LabelComponent, Label{Text: label})
	g.AttachCard(e)
	return e
}

// Position returns the world position of an entity.
func (g *Game) Position(e donburi.Entity) (mgl64.Vec3, bool) {
	entry, ok := g.entry(e)
	if !ok || !entry.HasComponent(TransformComponent) {
		return mgl64.Vec3{}, false
	}
	return donburi.Get[Transform](entry, TransformComponent).Translation, true
}

// SetPosition moves an entity without any smoothing.
func (g *Game) SetPosition(e donburi.Entity, pos mgl64.Vec3) {
	entry, ok := g.entry(e)
	if !ok || !entry.HasComponent(TransformComponent) {
		return
	}
	donburi.Get[Transform](entry, TransformComponent).Translation = pos
}

// LabelOf returns the card's printed text.
func (g *Game) LabelOf(e donburi.Entity) string {
	entry, ok := g.entry(e)
	if !ok || !entry.HasComponent(LabelComponent) {
		return ""
	}
	return donburi.Get[Label](entry, LabelComponent).Text
}

// IsHeld reports whether e is the card in the pointer's grip.
func (g *Game) IsHeld(e donburi.Entity) bool {
	entry, ok := g.entry(e)
	return ok && entry.HasComponent(HeldTag)
}

// IsCard reports whether e carries the card tag.
func (g *Game) IsCard(e donburi.Entity) bool {
	entry, ok := g.entry(e)
	return ok && entry.HasComponent(CardTag)
}

// entry looks an entity up, failing for entities that have been removed.
func (g *Game) entry(e donburi.Entity) (*donburi.Entry, bool) {
	if e == donburi.Null || !g.World.Valid(e) {
		return nil, false
	}
	return g.World.Entry(e), true
}

func (g *Game) describe(entry *donburi.Entry) string {
	if entry.HasComponent(LabelComponent) {
		return fmt.Sprintf("%q", donburi.Get[Label](entry, LabelComponent).Text)
	}
	return fmt.Sprintf("%v", entry.Entity())
}
