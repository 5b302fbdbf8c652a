package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// rows builds the expected String output from its lines.
func rows(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(4, 2)

	assert.Equal(t, 4, s.Width())
	assert.Equal(t, 2, s.Height())
	assert.Equal(t, rows("    ", "    "), s.String())
}

func TestScreenSetClipsOutOfBounds(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(1, 1, 'x')
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 2}} {
		s.Set(p[0], p[1], '!')
	}

	assert.Equal(t, rows("   ", " x "), s.String())
	assert.Equal(t, Cell{Rune: ' '}, s.GetCell(9, 9))
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(6, 1)
	s.SetColored(0, 0, '@', ColorGreen)
	assert.Equal(t, Cell{Rune: '@', Color: ColorGreen}, s.GetCell(0, 0))

	// Plain Set drops the color.
	s.Set(0, 0, '#')
	assert.Equal(t, ColorDefault, s.GetCell(0, 0).Color)

	// Multi-byte runes take one cell each.
	s.DrawTextColored(1, 0, "né@", ColorYellow)
	assert.Equal(t, "#né@  ", s.Row(0))
	assert.Equal(t, ColorYellow, s.GetCell(3, 0).Color)
}

func TestScreenDrawTextClipsAtEdge(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(4, 0, "Snails")
	assert.Equal(t, "    Sn", s.Row(0))
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		name  string
		width int
		text  string
		want  string
	}{
		{"even", 8, "Hi", "   Hi   "},
		{"odd leftover goes right", 7, "Hi", "  Hi   "},
		{"wider than screen", 4, "Hooray", "oora"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(tt.width, 1)
			s.DrawTextCentered(0, tt.text, ColorBrightYellow)
			assert.Equal(t, tt.want, s.Row(0))
		})
	}
}

func TestScreenBannerBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawHLine(0, 4, 7, '─')
	s.DrawRect(NewRect(1, 0, 5, 4), '.')
	s.DrawBox(NewRect(1, 0, 5, 4))

	assert.Equal(t, rows(
		" ┌───┐ ",
		" │...│ ",
		" │...│ ",
		" └───┘ ",
		"───────",
	), s.String())
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColored(0, 0, "abc", ColorRed)
	s.Clear()

	assert.Equal(t, rows("   ", "   "), s.String())
	assert.Equal(t, ColorDefault, s.GetCell(0, 0).Color)
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "Koalas")
	s.DrawText(0, 2, "Frogs")

	s.Resize(4, 2)
	assert.Equal(t, rows("Koal", "    "), s.String())

	s.Resize(6, 3)
	assert.Equal(t, rows("Koal  ", "      ", "      "), s.String())
}

func TestScreenRowOffScreen(t *testing.T) {
	s := NewScreen(3, 1)
	s.DrawText(0, 0, "fox")

	assert.Equal(t, "fox", s.Row(0))
	assert.Equal(t, "   ", s.Row(-1))
	assert.Equal(t, "   ", s.Row(1))
}
