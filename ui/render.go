package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"golang.org/x/image/font/basicfont"

	"github.com/SvenDH/ward/game"
)

const lineHeight = 16

var face = text.NewGoXFace(basicfont.Face7x13)

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = lineHeight
	text.Draw(screen, s, face, op)
}

func drawCentered(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = lineHeight
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

func drawPanel(screen *ebiten.Image, x, y, w, h int, lines ...string) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), panelColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, borderColor, false)
	for i, line := range lines {
		drawText(screen, line, float64(x+8), float64(y+8+i*lineHeight), textColor)
	}
}

// drawCards paints the hand left to right with the held card last, so it is
// never hidden under its neighbours.
func drawCards(screen *ebiten.Image, g *game.Game) {
	held, holding := g.Held()
	for _, e := range g.Hand.Cards() {
		if holding && e == held {
			continue
		}
		drawCard(screen, g, e, cardColor)
	}
	if holding {
		drawCard(screen, g, held, heldCardColor)
	}
}

func drawCard(screen *ebiten.Image, g *game.Game, e donburi.Entity, fill color.Color) {
	pos, ok := g.Position(e)
	if !ok {
		return
	}
	centre := g.Camera.WorldToViewport(pos.Vec2())
	w := g.Config.CardWidth / g.Camera.Scale
	h := g.Config.CardHeight / g.Camera.Scale
	x, y := centre.X()-w/2, centre.Y()-h/2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fill, true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, cardTextColor, true)
	drawCentered(screen, g.LabelOf(e), centre.X(), centre.Y(), cardTextColor)
}

func statusLines(s game.Status) []string {
	return []string{
		fmt.Sprintf("Turn      %d", s.Turn),
		fmt.Sprintf("Score     %d", s.Score),
		fmt.Sprintf("Suspicion %d", s.Suspicion),
	}
}

func patientLines(g *game.Game) []string {
	p, ok := g.CurrentPatient()
	if !ok {
		return []string{"No patients waiting"}
	}
	return []string{
		p.Name,
		fmt.Sprintf("Health   %d", p.Health),
		fmt.Sprintf("Delirium %d", p.Delirium),
		fmt.Sprintf("Waiting  %d", g.Patients.Len()-1),
	}
}
