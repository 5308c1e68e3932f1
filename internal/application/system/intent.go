package system

import "github.com/younwookim/lustrous/internal/domain/entity"

// Intent is a gameplay command decoded from one frame of input
type Intent interface {
	isIntent()
}

// MoveIntent walks the player manually in a direction
type MoveIntent struct {
	Direction entity.Direction
}

func (MoveIntent) isIntent() {}

// WalkToIntent queues automatic movement to a tile
type WalkToIntent struct {
	Tile entity.TilePos
}

func (WalkToIntent) isIntent() {}

// InteractIntent talks to whatever the player stands on or faces
type InteractIntent struct{}

func (InteractIntent) isIntent() {}

// Intents decodes the gameplay commands in one snapshot.
// cam is the world position of the screen's top-left corner.
func Intents(in InputState, cam entity.Vec) []Intent {
	var out []Intent
	if in.MouseClick {
		world := cam.Add(entity.Vec{X: float64(in.MouseX), Y: float64(in.MouseY)})
		out = append(out, WalkToIntent{Tile: entity.TileAt(world)})
	}
	out = append(out, MoveIntent{Direction: in.Direction()})
	if in.Confirm {
		out = append(out, InteractIntent{})
	}
	return out
}
