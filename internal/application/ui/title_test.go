package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleMenu_Wraps(t *testing.T) {
	blip := &countingSound{}
	m := NewTitleMenu(blip)
	assert.Equal(t, PlayGame, m.Selection())

	m.ChangeSelection(CursorUp)
	assert.Equal(t, Exit, m.Selection())

	m.ChangeSelection(CursorDown)
	assert.Equal(t, PlayGame, m.Selection())

	m.ChangeSelection(CursorDown)
	m.ChangeSelection(CursorDown)
	assert.Equal(t, Settings, m.Selection())

	assert.Equal(t, 4, blip.plays)
}

func TestTitleMenu_Reset(t *testing.T) {
	m := NewTitleMenu(nil)
	m.ChangeSelection(CursorDown)
	m.Animate(3)

	m.Reset()
	assert.Equal(t, PlayGame, m.Selection())
	assert.Zero(t, m.PanOffset(20, 100))
}

func TestTitleMenu_Animation(t *testing.T) {
	m := NewTitleMenu(nil)
	m.Animate(7)

	assert.InDelta(t, 40.0, m.PanOffset(20, 100), 1e-9)
	assert.Zero(t, m.PanOffset(20, 0))

	m.Animate(0.25) // quarter period, top of the bob
	assert.InDelta(t, bobAmplitude, m.CursorBob(), 1e-9)
}

func TestSelection_String(t *testing.T) {
	labels := make([]string, 0, selectionCount)
	for _, s := range Selections() {
		labels = append(labels, s.String())
	}
	assert.Equal(t, []string{"Play Game", "Load Game", "Settings", "Exit"}, labels)
	assert.Equal(t, "Unknown", Selection(0).String())
}
