package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/SvenDH/ward/audio"
)

func heldCount(g *Game) int {
	return g.heldCards.Count(g.World)
}

func TestPressHoldsCard(t *testing.T) {
	tg := newTestGame(t)
	a := tg.Deal("Sedative")
	tg.Update(frame)

	tg.Press(a)
	assert.False(t, tg.IsHeld(a), "press is applied on update")
	tg.Update(frame)

	assert.True(t, tg.IsHeld(a))
	held, ok := tg.Held()
	require.True(t, ok)
	assert.Equal(t, a, held)
	assert.Contains(t, tg.logs.String(), `picked up card "Sedative"`)
	assert.Equal(t, []audio.Cue{audio.CuePickup}, tg.cues.cues)
}

func TestPressOnHeldCardIsNoop(t *testing.T) {
	tg := newTestGame(t)
	a := tg.Deal("A")
	tg.Update(frame)

	tg.Press(a)
	tg.Press(a)
	tg.Update(frame)

	assert.Equal(t, 1, heldCount(tg.Game))
	assert.Len(t, tg.cues.cues, 1)
}

func TestSecondPressDoesNotTransferGrip(t *testing.T) {
	tg := newTestGame(t)
	a, b := tg.Deal("A"), tg.Deal("B")
	tg.Update(frame)

	tg.Press(a)
	tg.Update(frame)
	tg.Press(b)
	tg.Update(frame)

	assert.True(t, tg.IsHeld(a))
	assert.False(t, tg.IsHeld(b))
	assert.Equal(t, 1, heldCount(tg.Game))
}

func TestPressIgnoresNonCards(t *testing.T) {
	tg := newTestGame(t)
	patient, ok := tg.Patients.Front()
	require.True(t, ok)

	tg.Press(patient)
	tg.Press(donburi.Null)
	tg.Update(frame)

	assert.Equal(t, 0, heldCount(tg.Game))
	assert.Empty(t, tg.cues.cues)
}

func TestPressOnDespawnedCardIsSkipped(t *testing.T) {
	tg := newTestGame(t)
	a := tg.Deal("A")
	tg.Update(frame)

	tg.Press(a)
	tg.Despawn(a)
	assert.NotPanics(t, func() { tg.Update(frame) })
	assert.Equal(t, 0, heldCount(tg.Game))
	assert.Equal(t, 0, tg.Hand.Len())
}

func TestReleaseOnlyDropsHeldCard(t *testing.T) {
	tg := newTestGame(t)
	a, b := tg.Deal("A"), tg.Deal("B")
	tg.Update(frame)

	tg.Press(a)
	tg.Update(frame)
	tg.Release(b)
	tg.Update(frame)
	assert.True(t, tg.IsHeld(a))

	tg.Release(a)
	tg.Update(frame)
	assert.False(t, tg.IsHeld(a))
	assert.Contains(t, tg.logs.String(), `dropped card "A"`)
	assert.Equal(t, []audio.Cue{audio.CuePickup, audio.CueDrop}, tg.cues.cues)
}

func TestReleaseCallsDropHandler(t *testing.T) {
	tg := newTestGame(t)
	a := tg.Deal("A")
	tg.Update(frame)

	var dropped []donburi.Entity
	var at mgl64.Vec3
	tg.Drop = DropFunc(func(g *Game, card donburi.Entity, pos mgl64.Vec3) {
		dropped = append(dropped, card)
		at = pos
	})

	tg.pointAt(40, 60)
	tg.Press(a)
	tg.Update(frame)
	tg.Release(a)
	tg.Update(frame)

	assert.Equal(t, []donburi.Entity{a}, dropped)
	assertNear(t, mgl64.Vec3{40, 60, 0}, at, 1e-6)
}

func TestDropHandlerCanDiscardInSameFrame(t *testing.T) {
	tg := newTestGame(t)
	a, b := tg.Deal("A"), tg.Deal("B")
	tg.Update(frame)

	tg.Drop = DropFunc(func(g *Game, card donburi.Entity, pos mgl64.Vec3) {
		g.DetachCard(card)
	})
	tg.Press(a)
	tg.Update(frame)
	tg.Release(a)
	assert.NotPanics(t, func() { tg.Update(frame) })

	assert.Equal(t, []donburi.Entity{b}, tg.Hand.Cards())
	assert.False(t, tg.IsCard(a))
}

func TestDetachHeldCardClearsGrip(t *testing.T) {
	tg := newTestGame(t)
	a := tg.Deal("A")
	tg.Update(frame)
	tg.Press(a)
	tg.Update(frame)

	tg.DetachCard(a)
	tg.Update(frame)

	assert.False(t, tg.IsHeld(a))
	_, ok := tg.Held()
	assert.False(t, ok)
}
