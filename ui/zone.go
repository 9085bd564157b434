package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Zone is a clickable rectangle in window pixels.
type Zone struct {
	X, Y, W, H int
	Label      string
	Click      func()
	hovered    bool
}

func (z Zone) InBounds(x, y int) bool {
	return x >= z.X && x < z.X+z.W && y >= z.Y && y < z.Y+z.H
}

func (z *Zone) Draw(screen *ebiten.Image) {
	fill := buttonColor
	if z.hovered {
		fill = buttonHoverColor
	}
	vector.DrawFilledRect(screen, float32(z.X), float32(z.Y), float32(z.W), float32(z.H), fill, false)
	vector.StrokeRect(screen, float32(z.X), float32(z.Y), float32(z.W), float32(z.H), 1, borderColor, false)
	drawCentered(screen, z.Label, float64(z.X+z.W/2), float64(z.Y+z.H/2), textColor)
}

var (
	backgroundColor  = color.RGBA{0x1e, 0x24, 0x2b, 0xff}
	panelColor       = color.RGBA{0x2b, 0x33, 0x3d, 0xff}
	buttonColor      = color.RGBA{0x3a, 0x5a, 0x7a, 0xff}
	buttonHoverColor = color.RGBA{0x4b, 0x72, 0x9a, 0xff}
	borderColor      = color.RGBA{0xc8, 0xd0, 0xd8, 0xff}
	cardColor        = color.RGBA{0xf2, 0xec, 0xdc, 0xff}
	heldCardColor    = color.RGBA{0xff, 0xf6, 0xc8, 0xff}
	cardTextColor    = color.RGBA{0x20, 0x20, 0x20, 0xff}
	textColor        = color.RGBA{0xee, 0xee, 0xee, 0xff}
)
