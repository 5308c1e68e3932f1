// Package ui draws the overlays that sit above the map: the dialogue
// textbox, the pause and debug overlays and the screen fader. It also
// holds the title menu model.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/lustrous/internal/domain/dialogue"
)

// Font sizes
const (
	FontSmall   = 14
	FontDefault = 18
	FontLarge   = 24
	FontBig     = 32
)

var (
	colorText    = color.RGBA{240, 240, 240, 255}
	colorSpeaker = color.RGBA{255, 215, 0, 255}
	colorBox     = color.RGBA{16, 16, 48, 220}
	colorBorder  = color.RGBA{200, 200, 220, 255}
	colorOverlay = color.RGBA{0, 0, 0, 128}
)

// FaceMeasurer measures text drawn with a TrueType face
type FaceMeasurer struct {
	Face text.Face
}

// Advance implements dialogue.Measurer
func (m FaceMeasurer) Advance(s string) float64 {
	return text.Advance(s, m.Face)
}

// LineHeight implements dialogue.Measurer
func (m FaceMeasurer) LineHeight() float64 {
	return lineHeight(m.Face)
}

// MeasurerFor returns the measurer matching what drawText will draw with
func MeasurerFor(face text.Face) dialogue.Measurer {
	if face == nil {
		return dialogue.DebugFontMeasurer
	}
	return FaceMeasurer{Face: face}
}

func lineHeight(face text.Face) float64 {
	if face == nil {
		return dialogue.DebugFontMeasurer.Height
	}
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// drawText draws s with its top-left corner at x, y.
// A nil face falls back to the debug font, which ignores clr.
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(dst, s, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = lineHeight(face)
	text.Draw(dst, s, face, op)
}

// textWidth returns the widest line of s
func textWidth(s string, face text.Face) float64 {
	if face == nil {
		w := 0.0
		for _, line := range splitLines(s) {
			w = max(w, dialogue.DebugFontMeasurer.Advance(line))
		}
		return w
	}
	w, _ := text.Measure(s, face, lineHeight(face))
	return w
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

// drawImage draws img scaled to w x h at x, y
func drawImage(dst, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
}
