package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/critter-catcher/internal/catch"
	"github.com/vovakirdan/critter-catcher/internal/games/catcher"
)

// hudHeight is the strip below the field reserved for the status line.
const hudHeight = 24

var (
	netColor       = color.RGBA{0x55, 0x3a, 0x1e, 0xff}
	netClosedColor = color.RGBA{0xd9, 0x8a, 0x00, 0xff}
	hudColor       = color.RGBA{0x20, 0x24, 0x30, 0xff}
	bannerColor    = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

// drawActor draws one animal as a few filled shapes around its center.
func drawActor(dst *ebiten.Image, a catch.Actor, cat catch.Category) {
	body := RGBA(catcher.DefaultSprites.Lookup(cat.ID, cat.Name).Color)
	edge := darken(body, 0.4)

	x, y := float32(a.Pos.X), float32(a.Pos.Y)
	r := float32(a.Size() / 2)
	dir := float32(a.Dir)

	if a.Airborne() {
		// Shadow on the base line while in the air.
		vector.DrawFilledRect(dst, x-r*0.6, float32(a.BaseY)+r*0.8, r*1.2, r*0.2, color.RGBA{0, 0, 0, 0x40}, true)
	}

	switch ShapeFor(cat.ID) {
	case ShapeShell:
		vector.DrawFilledRect(dst, x-r, y, r*2, r*0.5, edge, true)
		vector.DrawFilledCircle(dst, x-dir*r*0.1, y-r*0.1, r*0.75, body, true)
		vector.StrokeCircle(dst, x-dir*r*0.1, y-r*0.1, r*0.4, 2, edge, true)
		vector.DrawFilledCircle(dst, x+dir*r*0.85, y+r*0.15, r*0.25, edge, true)
	case ShapeWings:
		vector.DrawFilledCircle(dst, x-r*0.45, y-r*0.3, r*0.5, body, true)
		vector.DrawFilledCircle(dst, x+r*0.45, y-r*0.3, r*0.5, body, true)
		vector.DrawFilledRect(dst, x-r*0.15, y-r*0.6, r*0.3, r*1.2, edge, true)
		vector.DrawFilledCircle(dst, x+dir*r*0.2, y-r*0.6, r*0.2, edge, true)
	case ShapeLong:
		vector.DrawFilledRect(dst, x-r, y-r*0.35, r*1.6, r*0.7, body, true)
		vector.DrawFilledCircle(dst, x+dir*r*0.6, y, r*0.4, body, true)
		vector.StrokeLine(dst, x-dir*r*0.6, y, x-dir*r*1.2, y-r*0.3, 2, edge, true)
		vector.DrawFilledCircle(dst, x+dir*r*0.75, y-r*0.1, 2, edge, true)
	case ShapeEars:
		vector.DrawFilledCircle(dst, x-r*0.45, y-r*0.7, r*0.3, edge, true)
		vector.DrawFilledCircle(dst, x+r*0.45, y-r*0.7, r*0.3, edge, true)
		vector.DrawFilledCircle(dst, x, y, r*0.8, body, true)
		vector.DrawFilledCircle(dst, x+dir*r*0.3, y-r*0.15, 2, edge, true)
	default:
		vector.DrawFilledCircle(dst, x, y, r*0.8, body, true)
		vector.DrawFilledCircle(dst, x+dir*r*0.6, y-r*0.4, r*0.4, body, true)
		vector.StrokeCircle(dst, x, y, r*0.8, 1.5, edge, true)
		vector.DrawFilledCircle(dst, x+dir*r*0.7, y-r*0.5, 2, edge, true)
	}
}

// drawNet draws the capture ring and its handle.
func drawNet(dst *ebiten.Image, s *catch.Session, closed bool) {
	net := s.Net()
	r := float32(s.NetSize() / 2)
	x, y := float32(net.X), float32(net.Y)

	c := netColor
	if closed {
		c = netClosedColor
		vector.DrawFilledCircle(dst, x, y, r, color.RGBA{c.R, c.G, c.B, 0x30}, true)
	}
	vector.StrokeCircle(dst, x, y, r, 3, c, true)

	// Handle points down and right from the ring.
	hx := x + r*float32(math.Cos(math.Pi/4))
	hy := y + r*float32(math.Sin(math.Pi/4))
	vector.StrokeLine(dst, hx, hy, hx+r*0.8, hy+r*0.8, 5, netColor, true)
}

// drawHUD draws the status strip below the field.
func drawHUD(dst *ebiten.Image, st catch.Stats, muted bool) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	vector.DrawFilledRect(dst, 0, float32(h-hudHeight), float32(w), hudHeight, hudColor, false)

	what := st.Category.Name
	if st.AllAnimals {
		what = "All animals"
	}
	status := fmt.Sprintf("Lv %d %s   Caught %d/%d   Score %d   Speed x%.1f",
		st.Level, what, st.Caught, st.Quota, st.Score, st.Speed)
	if muted {
		status += "   [muted]"
	}
	ebitenutil.DebugPrintAt(dst, status, 8, h-hudHeight+4)
}

// drawBanner dims the field and prints a two-line message in its middle.
func drawBanner(dst *ebiten.Image, fieldH int, title, subtitle string) {
	w := dst.Bounds().Dx()
	const boxH = 56
	boxW := 8*max(len(title), len(subtitle)) + 32
	bx := (w - boxW) / 2
	by := (fieldH - boxH) / 2

	vector.DrawFilledRect(dst, float32(bx), float32(by), float32(boxW), boxH, bannerColor, false)
	// The debug font is 6 px wide per glyph.
	ebitenutil.DebugPrintAt(dst, title, (w-6*len(title))/2, by+12)
	ebitenutil.DebugPrintAt(dst, subtitle, (w-6*len(subtitle))/2, by+32)
}

// bannerText returns the message to show for a session, if any.
func bannerText(title string, st catch.Stats) (string, string, bool) {
	switch {
	case !st.Running:
		return title, "Click or press Enter to start", true
	case st.LevelComplete:
		if st.AllAnimals {
			return "Hooray! You caught everyone!", "Press Enter to play again", true
		}
		return fmt.Sprintf("Hooray! You caught all the %s!", st.Completed.Name),
			fmt.Sprintf("Next: %s  |  Press Enter", st.Next.Name), true
	case st.Paused:
		return "PAUSED", "Press P to resume", true
	}
	return "", "", false
}
