package system

import (
	"go.uber.org/zap"

	"github.com/younwookim/lustrous/internal/domain/entity"
	"github.com/younwookim/lustrous/internal/logger"
)

// MovementSystem moves actors and runs the collision pass after each move
type MovementSystem struct {
	collision *CollisionSystem
	onMap     func(entity.TilePos) bool
}

// NewMovementSystem creates a movement system.
// onMap reports whether a tile may be used as a click destination; nil allows any.
func NewMovementSystem(c *CollisionSystem, onMap func(entity.TilePos) bool) *MovementSystem {
	return &MovementSystem{collision: c, onMap: onMap}
}

// Collision returns the underlying collision system
func (s *MovementSystem) Collision() *CollisionSystem { return s.collision }

// UpdatePlayer applies the movement intents, advances the player one frame
// and checks it against the map
func (s *MovementSystem) UpdatePlayer(p *entity.Player, intents []Intent, dt float64) FrameResult {
	dir := entity.None
	for _, in := range intents {
		switch v := in.(type) {
		case WalkToIntent:
			if s.onMap != nil && !s.onMap(v.Tile) {
				continue
			}
			n := p.WalkTo(v.Tile)
			logger.Debug("walk to", zap.Int("col", v.Tile.Col), zap.Int("row", v.Tile.Row), zap.Int("steps", n))
		case MoveIntent:
			dir = v.Direction
		}
	}

	p.Walk(dt, dir)
	res := s.collision.Check(p)
	if res.Collision {
		logger.Debug("player blocked", zap.String("region", res.Blocker.Name),
			zap.Float64("x", p.Position().X), zap.Float64("y", p.Position().Y))
	}
	return res
}

// UpdateNPC advances an NPC along its route. A blocked NPC turns back on
// its next leg.
func (s *MovementSystem) UpdateNPC(n *entity.NPC, dt float64) FrameResult {
	n.Patrol(dt)
	return s.collision.Resolve(n)
}
