package catcher

import (
	"strings"

	"github.com/vovakirdan/critter-catcher/internal/core"
)

// Sprite is the terminal look of one category.
type Sprite struct {
	Right string // Glyphs when moving right
	Left  string // Glyphs when moving left; empty reuses Right
	Color core.Color
}

// Glyph returns the glyphs for a heading.
func (s Sprite) Glyph(dir float64) string {
	if dir < 0 && s.Left != "" {
		return s.Left
	}
	return s.Right
}

// SpriteTable maps category IDs to sprites.
type SpriteTable map[string]Sprite

// DefaultSprites covers the built-in animals.
var DefaultSprites = SpriteTable{
	"snails":        {Right: "_@)", Left: "(@_", Color: core.ColorYellow},
	"koalas":        {Right: "(oYo)", Color: core.ColorGray},
	"gnomes":        {Right: "^o^", Color: core.ColorRed},
	"wombats":       {Right: "(..)~", Left: "~(..)", Color: core.ColorOrange},
	"fairies":       {Right: "*<o>*", Color: core.ColorBrightMagenta},
	"echidnas":      {Right: "^^^>", Left: "<^^^", Color: core.ColorOrange},
	"butterflies":   {Right: "}|{", Color: core.ColorBrightCyan},
	"crabs":         {Right: "V(;,;)V", Color: core.ColorBrightRed},
	"fireflies":     {Right: "*", Color: core.ColorBrightYellow},
	"fish":          {Right: "><>", Left: "<><", Color: core.ColorBlue},
	"ladybugs":      {Right: "(:)", Color: core.ColorRed},
	"kookaburras":   {Right: "<v)", Left: "(v>", Color: core.ColorCyan},
	"ants":          {Right: "oo>", Left: "<oo", Color: core.ColorWhite},
	"cats":          {Right: "=^.^=", Color: core.ColorOrange},
	"mice":          {Right: "~o>", Left: "<o~", Color: core.ColorGray},
	"sugar_gliders": {Right: "<^o^>", Color: core.ColorMagenta},
	"dogs":          {Right: "U'.'U", Color: core.ColorYellow},
	"dragonflies":   {Right: "-=+>", Left: "<+=-", Color: core.ColorBrightGreen},
	"frogs":         {Right: "@..@", Color: core.ColorGreen},
	"rabbits":       {Right: "(\\_/)", Color: core.ColorBrightWhite},
}

// Lookup returns the sprite for a category. Unknown categories get a
// bracketed initial so custom catalogs still render.
func (t SpriteTable) Lookup(cat string, name string) Sprite {
	if s, ok := t[cat]; ok {
		return s
	}
	initial := "?"
	if name != "" {
		initial = strings.ToUpper(string([]rune(name)[:1]))
	}
	return Sprite{Right: "[" + initial + "]", Color: core.ColorWhite}
}
