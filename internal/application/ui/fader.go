package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FadeMode selects the direction of a fade
type FadeMode int

const (
	FadeIn FadeMode = iota // black to clear
	FadeOut
)

// Fader covers the screen with black whose alpha changes over a fixed duration
type Fader struct {
	mode     FadeMode
	duration float64
	elapsed  float64
}

// NewFader creates a fader that starts complete
func NewFader(duration float64, mode FadeMode) *Fader {
	return &Fader{mode: mode, duration: duration, elapsed: duration}
}

// Reset restarts the fade from the beginning
func (f *Fader) Reset() {
	f.elapsed = 0
}

// Update advances the fade by dt seconds
func (f *Fader) Update(dt float64) {
	if !f.Complete() {
		f.elapsed = min(f.elapsed+dt, f.duration)
	}
}

// Complete reports whether the fade has finished
func (f *Fader) Complete() bool {
	return f.elapsed >= f.duration
}

// Alpha returns the current cover opacity in [0,1]
func (f *Fader) Alpha() float64 {
	t := 1.0
	if f.duration > 0 {
		t = min(f.elapsed/f.duration, 1)
	}
	if f.mode == FadeIn {
		return 1 - t
	}
	return t
}

// Draw covers the screen at the current alpha
func (f *Fader) Draw(screen *ebiten.Image) {
	a := f.Alpha()
	if a <= 0 {
		return
	}
	fillScreen(screen, color.RGBA{A: uint8(a * 255)})
}

// BlackScreen covers the screen completely
func BlackScreen(screen *ebiten.Image) {
	fillScreen(screen, color.Black)
}

func fillScreen(screen *ebiten.Image, clr color.Color) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), clr, false)
}
