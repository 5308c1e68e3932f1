// Package game drives the active scene from ebiten's update loop.
package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/lustrous/internal/application/scene"
	"github.com/younwookim/lustrous/internal/logger"
)

// Game implements ebiten.Game and swaps scenes when one hands over to another.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	frame   int
}

// New creates a Game showing initial, whose OnEnter runs immediately.
// Updates advance by a fixed 1/60 s until SetDT says otherwise.
func New(initial scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
	}
	g.current.OnEnter()
	return g
}

// Update advances the current scene one tick (implements ebiten.Game).
// A scene returning ebiten.Termination gets its OnExit before the loop ends.
func (g *Game) Update() error {
	g.frame++
	next, err := g.current.Update(g.dt)
	if err != nil {
		g.current.OnExit()
		if errors.Is(err, ebiten.Termination) {
			logger.Info("game ending", zap.Int("frame", g.frame))
		}
		return err
	}

	if next != nil {
		logger.Debug("scene change",
			zap.String("from", sceneName(g.current)),
			zap.String("to", sceneName(next)),
			zap.Int("frame", g.frame))
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Draw renders the current scene (implements ebiten.Game)
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the fixed logical screen size (implements ebiten.Game)
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the time step passed to every scene update
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Current returns the active scene
func (g *Game) Current() scene.Scene { return g.current }

// Frame returns the number of updates run so far
func (g *Game) Frame() int { return g.frame }

func sceneName(s scene.Scene) string {
	return fmt.Sprintf("%T", s)
}
