package ui

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/lustrous/internal/domain/dialogue"
	"github.com/younwookim/lustrous/internal/infrastructure/config"
)

// countingSound counts Play calls
type countingSound struct {
	plays int
}

func (s *countingSound) Play() { s.plays++ }

func testTextboxConfig() config.TextboxConfig {
	return config.TextboxConfig{
		RevealInterval: 0.1,
		HeightRatio:    0.3,
		Margin:         25,
		PortraitSize:   128,
	}
}

func TestTextbox_PlaysReader(t *testing.T) {
	blip := &countingSound{}
	box := NewTextbox(testTextboxConfig(), 800, 600, nil, nil, blip)
	box.Open(dialogue.NewReader("Test", []dialogue.Entry{
		{Speaker: "Warren", Text: "Hi."},
		{Text: "Bye"},
	}))

	assert.False(t, box.Update(0, false))
	assert.Equal(t, "Warren", box.Speaker())
	assert.Empty(t, box.Text())

	assert.False(t, box.Update(0.1, false))
	assert.Equal(t, "H", box.Text())
	assert.Equal(t, 1, blip.plays)

	// confirm while revealing shows the rest silently
	assert.False(t, box.Update(0, true))
	assert.Equal(t, "Hi.", box.Text())
	assert.True(t, box.EndOfMessage())
	assert.Equal(t, 1, blip.plays)

	// confirm at the end moves on
	assert.False(t, box.Update(0, true))
	assert.False(t, box.EndOfMessage())

	assert.False(t, box.Update(1.0, false))
	assert.Empty(t, box.Speaker())
	assert.Equal(t, "Bye", box.Text())
	assert.Equal(t, 4, blip.plays)

	// holding still does not advance
	assert.False(t, box.Update(1.0, false))
	assert.True(t, box.Update(0, true), "reader exhausted")
	assert.True(t, box.Reader().IsEmpty())
}

func TestTextbox_NoReader(t *testing.T) {
	box := NewTextbox(testTextboxConfig(), 800, 600, nil, nil, nil)
	assert.True(t, box.Update(1, true))

	box.Open(dialogue.NewReader("Empty", nil))
	assert.True(t, box.Update(1, false))
}

func TestTextbox_UsableWidth(t *testing.T) {
	box := NewTextbox(testTextboxConfig(), 800, 600, nil, nil, nil)
	assert.InDelta(t, 750.0, box.UsableWidth(), 1e-9)

	box.SetPortrait(ebiten.NewImage(128, 128))
	assert.InDelta(t, 622.0, box.UsableWidth(), 1e-9)
}

func TestTextbox_WrapsToUsableWidth(t *testing.T) {
	long := strings.Repeat("word ", 40)

	tests := []struct {
		name     string
		portrait *ebiten.Image // set after the box is built
		width    float64
	}{
		{"no portrait", nil, 750},
		{"portrait added", ebiten.NewImage(128, 128), 622},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testTextboxConfig()
			cfg.RevealInterval = 0
			box := NewTextbox(cfg, 800, 600, nil, nil, nil)
			box.SetPortrait(tt.portrait)
			require.InDelta(t, tt.width, box.UsableWidth(), 1e-9)

			box.Open(dialogue.NewReader("Long", []dialogue.Entry{{Text: long}}))
			box.Update(0, false)

			require.True(t, box.EndOfMessage())
			for _, line := range splitLines(box.Text()) {
				line = strings.TrimRight(line, " ")
				assert.LessOrEqual(t, dialogue.DebugFontMeasurer.Advance(line), tt.width, "line %q", line)
			}
			assert.Greater(t, dialogue.LineCount(box.Text()), 1)
			assert.Equal(t, long, strings.ReplaceAll(box.Text(), "\n", ""))
		})
	}
}

func TestTextbox_PortraitRemovedWidensText(t *testing.T) {
	box := NewTextbox(testTextboxConfig(), 800, 600, nil, ebiten.NewImage(128, 128), nil)
	assert.InDelta(t, 622.0, box.UsableWidth(), 1e-9)

	box.SetPortrait(nil)
	assert.InDelta(t, 750.0, box.UsableWidth(), 1e-9)
}

func TestMeasurerFor_NilFace(t *testing.T) {
	assert.Equal(t, dialogue.DebugFontMeasurer, MeasurerFor(nil))
	assert.Equal(t, dialogue.DebugFontMeasurer.Height, lineHeight(nil))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "bc", ""}, splitLines("a\nbc\n"))
	assert.Equal(t, []string{""}, splitLines(""))
	assert.InDelta(t, 12.0, textWidth("a\nbc", nil), 1e-9)
}
