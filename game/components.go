package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oklog/ulid/v2"
	"github.com/yohamta/donburi"
)

// Transform is the world-space placement of an entity.
type Transform struct {
	Translation mgl64.Vec3
}

// Label is the text printed on a card, usually the name of its effect.
type Label struct {
	Text string
}

// PatientData is the placeholder record shown in the patient panel.
type PatientData struct {
	ID       ulid.ULID
	Name     string
	Health   int
	Delirium int
}

var (
	// CardTag marks an entity as a card in the player's hand. Attaching and
	// detaching it goes through Game.AttachCard and Game.DetachCard so the hand
	// stays in sync.
	CardTag = donburi.NewTag()
	// HeldTag marks the card currently grabbed by the pointer.
	HeldTag    = donburi.NewTag()
	PatientTag = donburi.NewTag()

	TransformComponent = donburi.NewComponentType[Transform]()
	LabelComponent     = donburi.NewComponentType[Label]()
	PatientComponent   = donburi.NewComponentType[PatientData]()
)
