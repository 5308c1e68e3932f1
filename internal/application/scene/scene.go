// Package scene defines the screens the game loop switches between.
//
// The title screen and the overworld each implement Scene; the
// overworld also runs the intro, pause and dialogue states itself.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game.
//
// A scene may be handed back more than once, so OnEnter must
// put it in its starting state.
type Scene interface {
	// Update advances the scene by dt seconds, a fixed step of 1/TPS.
	// A non-nil next replaces this scene after the frame;
	// ebiten.Termination ends the game cleanly.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current
	OnEnter()

	// OnExit runs when another scene takes over or the game ends
	OnExit()
}
