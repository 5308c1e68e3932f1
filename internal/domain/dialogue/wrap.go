package dialogue

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Measurer reports text metrics for the font a textbox draws with
type Measurer interface {
	// Advance returns the horizontal advance of s
	Advance(s string) float64
	// LineHeight returns the distance between baselines
	LineHeight() float64
}

// MonospaceMeasurer measures in fixed cells; wide runes take two.
// It matches ebiten's debug font when no TrueType face could be loaded.
type MonospaceMeasurer struct {
	CellWidth float64
	Height    float64
}

// DebugFontMeasurer matches ebitenutil.DebugPrint glyph metrics
var DebugFontMeasurer = MonospaceMeasurer{CellWidth: 6, Height: 16}

// Advance implements Measurer
func (m MonospaceMeasurer) Advance(s string) float64 {
	return float64(runewidth.StringWidth(s)) * m.CellWidth
}

// LineHeight implements Measurer
func (m MonospaceMeasurer) LineHeight() float64 { return m.Height }

// lineBreaker appends runes to a buffer, inserting a break before any rune
// that would overflow maxWidth. Every rune of the message is kept: a space
// that overflows hangs at the end of its line and the break follows it.
type lineBreaker struct {
	maxWidth float64
	measure  Measurer

	buf       []rune
	lineWidth float64
	lines     int  // completed lines
	pending   bool // a hanging space is waiting for its break
}

func (b *lineBreaker) reset() {
	b.buf = b.buf[:0]
	b.lineWidth = 0
	b.lines = 0
	b.pending = false
}

func (b *lineBreaker) add(r rune) {
	if r == '\n' {
		b.newline()
		return
	}
	if b.pending {
		b.newline()
	}
	w := b.measure.Advance(string(r))
	if b.lineWidth > 0 && b.lineWidth+w > b.maxWidth {
		if r == ' ' {
			b.buf = append(b.buf, r)
			b.pending = true
			return
		}
		b.newline()
	}
	b.buf = append(b.buf, r)
	b.lineWidth += w
}

func (b *lineBreaker) newline() {
	b.buf = append(b.buf, '\n')
	b.lineWidth = 0
	b.lines++
	b.pending = false
}

// dropFirstLine trims the buffer through its first break
func (b *lineBreaker) dropFirstLine() bool {
	for i, r := range b.buf {
		if r == '\n' {
			b.buf = append(b.buf[:0], b.buf[i+1:]...)
			b.lines--
			return true
		}
	}
	return false
}

// Wrap breaks text so no line is wider than maxWidth, not counting a
// trailing space. Removing the inserted breaks gives back text.
// Wrapping already wrapped text returns it unchanged.
func Wrap(text string, maxWidth float64, m Measurer) string {
	b := lineBreaker{maxWidth: maxWidth, measure: m}
	for _, r := range text {
		b.add(r)
	}
	return string(b.buf)
}

// LineCount returns the number of lines in s
func LineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
