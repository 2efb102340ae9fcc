// pkg/render/color.go
package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Palette holds every color the world renderer needs.
type Palette struct {
	Background color.RGBA
	Grid       color.RGBA
	Player     color.RGBA
	Enemy      color.RGBA
	Elite      color.RGBA
	Boss       color.RGBA
	Flash      color.RGBA
	Projectile color.RGBA
	Pool       color.RGBA
	Beam       color.RGBA
	Orbit      color.RGBA
	Pickups    []color.RGBA // indexed by component.PickupKind
	Outline    color.RGBA
}

// DefaultPalette is used when the caller has no theme of its own.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{18, 16, 28, 255},
		Grid:       color.RGBA{40, 36, 58, 255},
		Player:     colornames.Ghostwhite,
		Enemy:      colornames.Indianred,
		Elite:      colornames.Orange,
		Boss:       colornames.Darkorchid,
		Flash:      colornames.White,
		Projectile: colornames.Lightskyblue,
		Pool:       WithAlpha(colornames.Limegreen, 120),
		Beam:       WithAlpha(colornames.Paleturquoise, 200),
		Orbit:      colornames.Gold,
		Pickups: []color.RGBA{
			colornames.Royalblue,
			colornames.Gold,
			colornames.Mediumseagreen,
			colornames.Peru,
			colornames.Orchid,
			colornames.Aqua,
		},
		Outline: colornames.Black,
	}
}

// Pickup returns the color of a pickup kind, falling back to white.
func (p Palette) Pickup(kind int) color.RGBA {
	if kind >= 0 && kind < len(p.Pickups) {
		return p.Pickups[kind]
	}
	return colornames.White
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with alpha a, premultiplying the color channels.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	f := float64(a) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: a,
	}
}
