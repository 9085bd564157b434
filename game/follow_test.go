package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowKeepsDepth(t *testing.T) {
	tg := newTestGame(t)
	a := tg.Deal("A")
	tg.Update(0)
	tg.SetPosition(a, mgl64.Vec3{0, 0, 3})

	tg.Press(a)
	tg.pointAt(-120, 80)
	tg.Update(frame)

	assert.Equal(t, 3.0, mustPosition(t, tg.Game, a).Z())
	assertNear(t, mgl64.Vec3{-120, 80, 3}, mustPosition(t, tg.Game, a), 1e-6)
}

func TestFollowSkipsFrameWithoutPointer(t *testing.T) {
	tests := []struct {
		name  string
		point func(tg *testGame)
	}{
		{"pointer left the window", func(tg *testGame) { tg.pointer.Present = false }},
		{"pointer outside viewport", func(tg *testGame) { tg.pointer.MoveTo(-5, 10) }},
		{"pointer past the right edge", func(tg *testGame) { tg.pointer.MoveTo(float64(tg.Camera.Viewport.W), 10) }},
		{"no usable camera", func(tg *testGame) { tg.Camera.Viewport = Viewport{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg := newTestGame(t)
			a := tg.Deal("A")
			tg.Update(0)
			tg.pointAt(10, 20)
			tg.Press(a)
			tg.Update(frame)
			require.True(t, tg.IsHeld(a))
			before := mustPosition(t, tg.Game, a)

			tt.point(tg)
			tg.Update(frame)
			assert.Equal(t, before, mustPosition(t, tg.Game, a))
		})
	}
}

func TestFollowWithoutPointerSource(t *testing.T) {
	tg := newTestGame(t)
	a := tg.Deal("A")
	tg.Update(0)
	tg.Pointer = nil
	tg.Press(a)
	assert.NotPanics(t, func() { tg.Update(frame) })
	assert.Equal(t, mgl64.Vec3{}, mustPosition(t, tg.Game, a))
}

func TestFollowMovesOnlyOneHeldCard(t *testing.T) {
	tg := newTestGame(t)
	a, b := tg.Deal("A"), tg.Deal("B")
	tg.Update(0)
	// Two held cards can only come from tagging directly.
	tg.World.Entry(a).AddComponent(HeldTag)
	tg.World.Entry(b).AddComponent(HeldTag)

	tg.pointAt(100, 100)
	tg.Update(0)

	moved := 0
	for _, pos := range []mgl64.Vec3{mustPosition(t, tg.Game, a), mustPosition(t, tg.Game, b)} {
		if pos.ApproxEqualThreshold(mgl64.Vec3{100, 100, 0}, 1e-6) {
			moved++
		}
	}
	assert.Equal(t, 1, moved)
}
