// Package title provides the title screen scene.
package title

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"github.com/younwookim/lustrous/internal/application/scene"
	"github.com/younwookim/lustrous/internal/application/system"
	"github.com/younwookim/lustrous/internal/application/ui"
	"github.com/younwookim/lustrous/internal/infrastructure/assets"
	"github.com/younwookim/lustrous/internal/infrastructure/config"
	"github.com/younwookim/lustrous/internal/logger"
)

var (
	colorMenu     = color.RGBA{220, 220, 220, 255}
	colorSelected = color.RGBA{255, 215, 0, 255}
)

const menuSpacing = 40

// Title is the title screen. Up and Down move the cursor, Enter picks.
type Title struct {
	cfg   config.TitleConfig
	menu  *ui.TitleMenu
	input system.InputSource
	play  func() scene.Scene

	background *ebiten.Image
	logo       *ebiten.Image
	cursor     *ebiten.Image
	face       text.Face

	screenW int
	screenH int
}

// New creates the title screen. play returns the scene Play Game starts.
// lib may be nil, in which case nothing but the menu text is drawn.
func New(cfg *config.GameConfig, lib *assets.Library, input system.InputSource, blip assets.Sound, play func() scene.Scene) *Title {
	t := &Title{
		cfg:     cfg.Title,
		menu:    ui.NewTitleMenu(blip),
		input:   input,
		play:    play,
		screenW: cfg.Window.Width,
		screenH: cfg.Window.Height,
	}
	if lib != nil {
		t.background = lib.Texture(cfg.Title.Background, cfg.Window.Width*2, cfg.Window.Height)
		t.logo = lib.Texture(cfg.Title.Logo, cfg.Window.Width/2, cfg.Window.Height/4)
		t.cursor = lib.Texture(cfg.Title.Cursor, 32, 32)
		t.face = lib.Face(cfg.Title.FontSize)
	}
	return t
}

// Selection returns the highlighted menu entry
func (t *Title) Selection() ui.Selection { return t.menu.Selection() }

// OnEnter puts the cursor back on Play Game
func (t *Title) OnEnter() {
	t.menu.Reset()
	logger.Info("title screen")
}

// OnExit does nothing
func (t *Title) OnExit() {}

// Update handles menu input (implements scene.Scene)
func (t *Title) Update(dt float64) (scene.Scene, error) {
	in, ok := t.input.Poll()
	if !ok {
		return nil, ebiten.Termination
	}

	t.menu.Animate(dt)

	switch {
	case in.MenuDown:
		t.menu.ChangeSelection(ui.CursorDown)
	case in.MenuUp:
		t.menu.ChangeSelection(ui.CursorUp)
	case in.Confirm:
		return t.choose()
	}
	return nil, nil
}

func (t *Title) choose() (scene.Scene, error) {
	sel := t.menu.Selection()
	switch sel {
	case ui.PlayGame:
		return t.play(), nil
	case ui.Exit:
		logger.Info("exit selected")
		return nil, ebiten.Termination
	default:
		logger.Info("menu entry not available", zap.Stringer("selection", sel))
		return nil, nil
	}
}

// Draw renders the title screen
func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if t.background != nil {
		w := float64(t.background.Bounds().Dx())
		x := -t.menu.PanOffset(t.cfg.PanSpeed, w)
		// draw twice so the wrap point never shows
		for _, dx := range []float64{x, x + w} {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(dx, 0)
			screen.DrawImage(t.background, op)
		}
	}

	if t.logo != nil {
		b := t.logo.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(t.screenW-b.Dx())/2, float64(t.screenH)/8)
		screen.DrawImage(t.logo, op)
	}

	x := float64(t.screenW) / 2.5
	y := float64(t.screenH) / 2
	for i, sel := range ui.Selections() {
		clr := colorMenu
		if sel == t.menu.Selection() {
			clr = colorSelected
		}
		rowY := y + float64(i*menuSpacing)
		drawLabel(screen, sel.String(), t.face, x, rowY, clr)

		if sel == t.menu.Selection() && t.cursor != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x-float64(t.cursor.Bounds().Dx())-12, rowY+t.menu.CursorBob())
			screen.DrawImage(t.cursor, op)
		}
	}
}
