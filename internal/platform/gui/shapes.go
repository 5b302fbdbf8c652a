package gui

import (
	"image/color"

	"github.com/vovakirdan/critter-catcher/internal/core"
)

// Shape is the outline family used to draw a category.
type Shape int

const (
	ShapeBlob  Shape = iota // Round body with a head
	ShapeShell              // Body under a round shell
	ShapeWings              // Small body between two wings
	ShapeLong               // Stretched body with a tail
	ShapeEars               // Round body with two ears
)

// shapes maps built-in category IDs to shapes. Unknown IDs are blobs.
var shapes = map[string]Shape{
	"snails":        ShapeShell,
	"koalas":        ShapeEars,
	"gnomes":        ShapeBlob,
	"wombats":       ShapeBlob,
	"fairies":       ShapeWings,
	"echidnas":      ShapeShell,
	"butterflies":   ShapeWings,
	"crabs":         ShapeShell,
	"fireflies":     ShapeWings,
	"fish":          ShapeLong,
	"ladybugs":      ShapeShell,
	"kookaburras":   ShapeWings,
	"ants":          ShapeLong,
	"cats":          ShapeEars,
	"mice":          ShapeLong,
	"sugar_gliders": ShapeWings,
	"dogs":          ShapeEars,
	"dragonflies":   ShapeWings,
	"frogs":         ShapeBlob,
	"rabbits":       ShapeEars,
}

// ShapeFor returns the shape for a category ID.
func ShapeFor(id string) Shape {
	return shapes[id]
}

// palette maps terminal colors to window colors.
var palette = [...]color.RGBA{
	core.ColorDefault:       {0xee, 0xee, 0xee, 0xff},
	core.ColorRed:           {0xcc, 0x33, 0x33, 0xff},
	core.ColorGreen:         {0x33, 0x99, 0x33, 0xff},
	core.ColorYellow:        {0xdd, 0xbb, 0x22, 0xff},
	core.ColorBlue:          {0x33, 0x66, 0xcc, 0xff},
	core.ColorMagenta:       {0xaa, 0x44, 0xaa, 0xff},
	core.ColorCyan:          {0x33, 0xaa, 0xbb, 0xff},
	core.ColorWhite:         {0xdd, 0xdd, 0xdd, 0xff},
	core.ColorBrightRed:     {0xff, 0x55, 0x55, 0xff},
	core.ColorBrightGreen:   {0x66, 0xdd, 0x66, 0xff},
	core.ColorBrightYellow:  {0xff, 0xee, 0x55, 0xff},
	core.ColorBrightBlue:    {0x66, 0x99, 0xff, 0xff},
	core.ColorBrightMagenta: {0xee, 0x77, 0xee, 0xff},
	core.ColorBrightCyan:    {0x77, 0xee, 0xee, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xee, 0x88, 0x22, 0xff},
	core.ColorGray:          {0x88, 0x88, 0x88, 0xff},
}

// RGBA converts a terminal color to a window color.
// Out of range values map to the default color.
func RGBA(c core.Color) color.RGBA {
	if int(c) >= len(palette) {
		return palette[core.ColorDefault]
	}
	return palette[c]
}

// backdrops are soft field colors, one per level in catalog order.
var backdrops = []color.RGBA{
	{0xcf, 0xe8, 0xc0, 0xff}, // meadow
	{0xc4, 0xdd, 0xf0, 0xff}, // sky
	{0xf3, 0xe2, 0xb8, 0xff}, // sand
	{0xe6, 0xd0, 0xec, 0xff}, // lilac
	{0xbf, 0xe4, 0xdd, 0xff}, // lagoon
}

// Backdrop returns the field color for a category index.
func Backdrop(idx int) color.RGBA {
	if idx < 0 {
		idx = -idx
	}
	return backdrops[idx%len(backdrops)]
}

// darken scales a color towards black; f is in [0, 1].
func darken(c color.RGBA, f float64) color.RGBA {
	f = core.ClampF(f, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * (1 - f)),
		G: uint8(float64(c.G) * (1 - f)),
		B: uint8(float64(c.B) * (1 - f)),
		A: c.A,
	}
}
