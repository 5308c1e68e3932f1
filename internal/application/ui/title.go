package ui

import (
	"math"

	"github.com/younwookim/lustrous/internal/infrastructure/assets"
)

// Selection is a title menu entry
type Selection int

const (
	PlayGame Selection = iota + 1
	LoadGame
	Settings
	Exit
)

// selectionCount is the number of title menu entries
const selectionCount = 4

// String returns the menu label
func (s Selection) String() string {
	switch s {
	case PlayGame:
		return "Play Game"
	case LoadGame:
		return "Load Game"
	case Settings:
		return "Settings"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Selections lists the menu in display order
func Selections() []Selection {
	return []Selection{PlayGame, LoadGame, Settings, Exit}
}

// CursorDirection moves the title cursor
type CursorDirection int

const (
	CursorDown CursorDirection = iota
	CursorUp
)

// cursor bob
const (
	bobPeriod    = 1.0
	bobAmplitude = 4.0
)

// TitleMenu is the title screen's selection and animation state
type TitleMenu struct {
	selection Selection
	elapsed   float64
	blip      assets.Sound
}

// NewTitleMenu creates a menu on Play Game. blip may be nil.
func NewTitleMenu(blip assets.Sound) *TitleMenu {
	return &TitleMenu{selection: PlayGame, blip: blip}
}

// Selection returns the highlighted entry
func (m *TitleMenu) Selection() Selection { return m.selection }

// ChangeSelection moves the cursor one entry, wrapping at either end
func (m *TitleMenu) ChangeSelection(dir CursorDirection) {
	i := int(m.selection) - 1
	switch dir {
	case CursorDown:
		i = (i + 1) % selectionCount
	case CursorUp:
		i = (i + selectionCount - 1) % selectionCount
	}
	m.selection = Selection(i + 1)
	if m.blip != nil {
		m.blip.Play()
	}
}

// Reset puts the cursor back on Play Game and restarts the animation
func (m *TitleMenu) Reset() {
	m.selection = PlayGame
	m.elapsed = 0
}

// Animate advances the background pan and cursor bob
func (m *TitleMenu) Animate(dt float64) {
	m.elapsed += dt
}

// PanOffset returns how far the background has scrolled, wrapping every period units
func (m *TitleMenu) PanOffset(speed, period float64) float64 {
	if period <= 0 {
		return 0
	}
	return math.Mod(m.elapsed*speed, period)
}

// CursorBob returns the cursor's vertical offset
func (m *TitleMenu) CursorBob() float64 {
	return math.Sin(m.elapsed*2*math.Pi/bobPeriod) * bobAmplitude
}
