package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	pauseTitle = "PAUSED"
	pauseHint  = "Esc: resume   F3: return to title"
)

// PauseScreen dims the frozen game and shows the pause banner
type PauseScreen struct {
	title text.Face
	hint  text.Face
}

// NewPauseScreen creates the overlay; nil faces fall back to the debug font
func NewPauseScreen(title, hint text.Face) *PauseScreen {
	return &PauseScreen{title: title, hint: hint}
}

// Draw renders the overlay in screen space
func (p *PauseScreen) Draw(screen *ebiten.Image) {
	fillScreen(screen, colorOverlay)

	b := screen.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	drawText(screen, pauseTitle, p.title, cx-textWidth(pauseTitle, p.title)/2, cy-lineHeight(p.title), colorText)
	drawText(screen, pauseHint, p.hint, cx-textWidth(pauseHint, p.hint)/2, cy+lineHeight(p.hint)/2, colorText)
}
