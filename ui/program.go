package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/SvenDH/ward/game"
)

const (
	buttonWidth  = 140
	buttonHeight = 40
	panelWidth   = 220
)

// Program is the ebiten frontend. It turns mouse buttons into queued pointer
// events and draws whatever the game state holds after each update.
type Program struct {
	G *game.Game
	// Deck contents listed in the deck shop
	Deck      []string
	ShowDebug bool

	menu, shop, treatment []*Zone
}

func NewProgram(g *game.Game, deck []string) *Program {
	p := &Program{G: g, Deck: deck}
	w, h := g.Config.WindowWidth, g.Config.WindowHeight
	cx, cy := w/2-buttonWidth/2, h/2-buttonHeight/2

	p.menu = []*Zone{
		{X: cx, Y: cy, W: buttonWidth, H: buttonHeight, Label: "Play", Click: func() {
			g.RequestState(game.StateTreatment)
		}},
		{X: cx, Y: cy + buttonHeight + 10, W: buttonWidth, H: buttonHeight, Label: "Deck", Click: func() {
			g.RequestState(game.StateDeckShop)
		}},
	}
	p.shop = []*Zone{
		{X: 10, Y: h - buttonHeight - 10, W: buttonWidth, H: buttonHeight, Label: "Back", Click: func() {
			g.RequestState(game.StateStartMenu)
		}},
	}
	p.treatment = []*Zone{
		{X: w - buttonWidth - 10, Y: h - buttonHeight - 10, W: buttonWidth, H: buttonHeight, Label: "End Turn", Click: g.EndTurn},
	}
	return p
}

func (p *Program) zones() []*Zone {
	switch p.G.State() {
	case game.StateStartMenu:
		return p.menu
	case game.StateDeckShop:
		return p.shop
	case game.StateTreatment:
		return p.treatment
	}
	return nil
}

func (p *Program) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		p.ShowDebug = !p.ShowDebug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && p.G.State() != game.StateStartMenu {
		p.G.RequestState(game.StateStartMenu)
	}

	mx, my := ebiten.CursorPosition()
	zones := p.zones()
	for _, z := range zones {
		z.hovered = z.InBounds(mx, my)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.press(zones, mx, my)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if held, ok := p.G.Held(); ok {
			p.G.Release(held)
		}
	}

	p.G.Update(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (p *Program) press(zones []*Zone, mx, my int) {
	for _, z := range zones {
		if z.InBounds(mx, my) {
			if z.Click != nil {
				z.Click()
			}
			return
		}
	}
	if p.G.State() != game.StateTreatment {
		return
	}
	if card, ok := p.G.PickCardAt(cursor(mx, my)); ok {
		p.G.Press(card)
	}
}

func (p *Program) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	w := p.G.Config.WindowWidth

	switch p.G.State() {
	case game.StateStartMenu:
		drawCentered(screen, "WARD", float64(w/2), float64(p.G.Config.WindowHeight/3), textColor)
	case game.StateDeckShop:
		lines := append([]string{fmt.Sprintf("Deck (%d cards)", len(p.Deck)), ""}, p.Deck...)
		drawPanel(screen, 10, 10, panelWidth, (len(lines)+1)*lineHeight, lines...)
	case game.StateTreatment:
		status := statusLines(p.G.Status)
		drawPanel(screen, 10, 10, panelWidth, (len(status)+1)*lineHeight, status...)
		patient := patientLines(p.G)
		drawPanel(screen, w-panelWidth-10, 10, panelWidth, (len(patient)+1)*lineHeight, patient...)
		drawCards(screen, p.G)
	}
	for _, z := range p.zones() {
		z.Draw(screen)
	}

	if p.ShowDebug {
		msg := fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f\nState: %s", ebiten.ActualTPS(), ebiten.ActualFPS(), p.G.State())
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (p *Program) Layout(outsideW, outsideH int) (int, int) {
	return p.G.Config.WindowWidth, p.G.Config.WindowHeight
}
