package system

import "github.com/younwookim/lustrous/internal/domain/entity"

// Probe offsets from the actor centre. The right and bottom probes sit one
// unit inside the tile so an actor at rest never touches its neighbours.
const (
	probeNear = entity.Tilesize / 2
	probeFar  = entity.Tilesize/2 - 1
)

// FrameResult is what the collision pass found for one actor this frame
type FrameResult struct {
	Collision bool
	Blocker   entity.Region // the rectangle hit when Collision is set

	// Event is the region the actor arrived on, nil when none
	Event *entity.Region
}

// PlayerEvent reports whether the actor stands on an event region
func (r FrameResult) PlayerEvent() bool { return r.Event != nil }

// CollisionSystem tests actors against a map's object layers
type CollisionSystem struct {
	layers entity.ObjectLayers
}

// NewCollisionSystem creates a collision system over layers
func NewCollisionSystem(layers entity.ObjectLayers) *CollisionSystem {
	return &CollisionSystem{layers: layers}
}

// ProbePoints returns the left, right, bottom and top probes around pos
func ProbePoints(pos entity.Vec) [4]entity.Vec {
	return [4]entity.Vec{
		{X: pos.X - probeNear, Y: pos.Y},
		{X: pos.X + probeFar, Y: pos.Y},
		{X: pos.X, Y: pos.Y + probeFar},
		{X: pos.X, Y: pos.Y - probeNear},
	}
}

// Blocked returns the first collision rectangle containing any probe around pos
func (s *CollisionSystem) Blocked(pos entity.Vec) (entity.Region, bool) {
	probes := ProbePoints(pos)
	for _, r := range s.layers.Objects(entity.CollisionLayer) {
		for _, p := range probes {
			if r.Bounds.Contains(p) {
				return r, true
			}
		}
	}
	return entity.Region{}, false
}

// Resolve runs the collision pass for m. On a hit Collided rolls the actor
// back and raises its flag; otherwise the flag is cleared and the position
// is left alone.
func (s *CollisionSystem) Resolve(m entity.Movable) FrameResult {
	hit, blocked := s.Blocked(m.Position())
	if blocked {
		m.Collided()
		return FrameResult{Collision: true, Blocker: hit}
	}
	m.SetCollision(false)
	return FrameResult{}
}

// EventAt returns the event region whose top-left tile is the tile m has
// come to rest on. Actors mid-step never match.
func (s *CollisionSystem) EventAt(m entity.Movable) (entity.Region, bool) {
	if !m.Idle() {
		return entity.Region{}, false
	}
	tile := entity.TileAt(m.Position())
	for _, r := range s.layers.Objects(entity.EventLayer) {
		if r.Tile() == tile {
			return r, true
		}
	}
	return entity.Region{}, false
}

// Check runs the collision pass and then event matching
func (s *CollisionSystem) Check(m entity.Movable) FrameResult {
	res := s.Resolve(m)
	if ev, ok := s.EventAt(m); ok {
		res.Event = &ev
	}
	return res
}
