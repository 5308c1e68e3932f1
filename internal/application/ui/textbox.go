package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/lustrous/internal/domain/dialogue"
	"github.com/younwookim/lustrous/internal/infrastructure/assets"
	"github.com/younwookim/lustrous/internal/infrastructure/config"
)

// Textbox is the dialogue window along the bottom of the screen.
// It plays a scene reader one entry at a time through a typewriter;
// once a message is fully shown a confirm press moves to the next one.
type Textbox struct {
	x, y, w, h   float64
	margin       float64
	portraitSize float64

	face       text.Face
	lineHeight float64
	portrait   *ebiten.Image

	writer  *dialogue.Typewriter
	reader  *dialogue.Reader
	speaker string
	started bool
}

// NewTextbox lays out a textbox for a screenW x screenH screen.
// face may be nil for the debug font; portrait may be nil for none.
func NewTextbox(cfg config.TextboxConfig, screenW, screenH int, face text.Face, portrait *ebiten.Image, blip assets.Sound) *Textbox {
	margin := float64(cfg.Margin)
	b := &Textbox{
		margin:       margin,
		portraitSize: float64(cfg.PortraitSize),
		face:         face,
		lineHeight:   lineHeight(face),
		portrait:     portrait,
	}
	b.w = float64(screenW) - margin
	b.h = float64(screenH) * cfg.HeightRatio
	b.x = margin / 2
	b.y = float64(screenH) - b.h - margin/2

	// the speaker name takes the first line
	b.writer = dialogue.NewTypewriter(cfg.RevealInterval, b.UsableWidth(), b.h-margin-b.lineHeight, MeasurerFor(face))
	if blip != nil {
		b.writer.OnReveal = func(rune) { blip.Play() }
	}
	return b
}

// UsableWidth is the box width minus the portrait and the margin
func (b *Textbox) UsableWidth() float64 {
	return b.w - b.portraitWidth() - b.margin
}

func (b *Textbox) portraitWidth() float64 {
	if b.portrait == nil {
		return 0
	}
	return b.portraitSize
}

// SetPortrait swaps the speaker portrait; nil hides it.
// The text wraps to the width left beside it.
func (b *Textbox) SetPortrait(img *ebiten.Image) {
	b.portrait = img
	b.writer.SetMaxWidth(b.UsableWidth())
}

// Open starts playing r from its current entry
func (b *Textbox) Open(r *dialogue.Reader) {
	b.reader = r
	b.started = false
	b.speaker = ""
	b.writer.Reset()
}

// Reader returns the scene being played
func (b *Textbox) Reader() *dialogue.Reader { return b.reader }

// Update reveals text for dt seconds. A confirm press finishes the
// current message, or when it is already finished, moves to the next.
// Returns true once the reader has no entries left.
func (b *Textbox) Update(dt float64, confirm bool) (finished bool) {
	if b.reader == nil {
		return true
	}
	if !b.started {
		entry, ok := b.reader.Current()
		if !ok {
			return true
		}
		b.speaker = entry.Speaker
		b.writer.Start(entry.Text)
		b.started = true
	}

	if !b.writer.Done() {
		b.writer.Update(dt)
		if confirm {
			b.writer.SkipToEnd()
		}
		return false
	}
	if !confirm {
		return false
	}

	b.writer.Reset()
	b.started = false
	b.speaker = ""
	b.reader.Next()
	return b.reader.IsEmpty()
}

// EndOfMessage reports whether the current message is fully shown
func (b *Textbox) EndOfMessage() bool { return b.started && b.writer.Done() }

// Speaker returns the current speaker, empty for narration
func (b *Textbox) Speaker() string { return b.speaker }

// Text returns the visible buffer
func (b *Textbox) Text() string { return b.writer.Text() }

// Draw renders the box in screen space
func (b *Textbox) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), colorBox, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, colorBorder, false)

	inset := b.margin / 2
	tx := b.x + inset
	if b.portrait != nil {
		drawImage(screen, b.portrait, tx, b.y+inset, b.portraitSize, b.portraitSize)
		tx += b.portraitSize + inset
	}

	if b.speaker != "" {
		drawText(screen, b.speaker, b.face, tx, b.y+inset, colorSpeaker)
	}
	drawText(screen, b.writer.Text(), b.face, tx, b.y+inset+b.lineHeight, colorText)

	if b.EndOfMessage() {
		drawText(screen, "v", b.face, b.x+b.w-inset-b.lineHeight/2, b.y+b.h-inset-b.lineHeight, colorText)
	}
}
