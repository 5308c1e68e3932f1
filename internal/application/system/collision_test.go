package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/lustrous/internal/domain/entity"
)

const frameDT = 1.0 / 60

func layersWith(collision []entity.Rect, events ...entity.Region) entity.LayerSet {
	set := entity.LayerSet{}
	for _, r := range collision {
		set[entity.CollisionLayer] = append(set[entity.CollisionLayer], entity.Region{Bounds: r})
	}
	set[entity.EventLayer] = events
	return set
}

func TestProbePoints(t *testing.T) {
	probes := ProbePoints(entity.Vec{X: 100, Y: 200})
	assert.Equal(t, [4]entity.Vec{
		{X: 68, Y: 200},
		{X: 131, Y: 200},
		{X: 100, Y: 231},
		{X: 100, Y: 168},
	}, probes)
}

func TestCollision_BlocksStepIntoTile(t *testing.T) {
	sys := NewCollisionSystem(layersWith([]entity.Rect{entity.TileRect(9, 10)}))
	a := entity.NewActor("hero", entity.TileCenter(10, 10), entity.SpeedNormal)
	a.AddTargetTile(entity.TilePos{Col: 9, Row: 10})

	var res FrameResult
	for i := 0; i < 30; i++ {
		a.FollowTargets(frameDT)
		res = sys.Resolve(a)
		if res.Collision {
			break
		}
	}

	require.True(t, res.Collision)
	assert.Equal(t, entity.TileCenter(10, 10), a.Position())
	assert.True(t, a.Collision())
	assert.False(t, a.HasTarget())
}

func TestCollision_ProbeInsideRollsBack(t *testing.T) {
	rect := entity.Rect{X: 300, Y: 300, W: 100, H: 100}
	sys := NewCollisionSystem(layersWith([]entity.Rect{rect}))

	// centres whose probes land strictly inside the rectangle
	inside := []entity.Vec{
		{X: 350, Y: 350},
		{X: 290, Y: 350}, // right probe at 321
		{X: 420, Y: 350}, // left probe at 388
		{X: 350, Y: 280}, // bottom probe at 311
		{X: 350, Y: 420}, // top probe at 388
	}

	past := entity.TileCenter(1, 1)
	for _, pos := range inside {
		m := &fakeMovable{pos: pos, past: past}

		res := sys.Resolve(m)
		assert.True(t, res.Collision, "at %v", pos)
		assert.True(t, m.Collision())
		assert.Equal(t, past, m.Position(), "at %v", pos)
		assert.Zero(t, m.sets, "Collided alone raises the flag")
	}
}

func TestCollision_ClearRaisedFlag(t *testing.T) {
	sys := NewCollisionSystem(layersWith([]entity.Rect{entity.TileRect(9, 10)}))
	m := &fakeMovable{pos: entity.TileCenter(1, 1), collision: true}

	res := sys.Resolve(m)
	assert.False(t, res.Collision)
	assert.False(t, m.Collision())
	assert.Equal(t, 1, m.sets)
}

func TestCollision_ProbeOutsideLeavesPosition(t *testing.T) {
	rect := entity.TileRect(9, 10) // [576,640) x [640,704)
	sys := NewCollisionSystem(layersWith([]entity.Rect{rect}))

	outside := []entity.Vec{
		entity.TileCenter(10, 10), // left probe at exactly 640, max edge exclusive
		entity.TileCenter(8, 10),  // right probe at 575
		entity.TileCenter(9, 9),   // bottom probe at 639
		entity.TileCenter(9, 11),  // top probe at exactly 704
		{X: 1000, Y: 1000},
	}

	for _, pos := range outside {
		a := entity.NewActor("hero", pos, entity.SpeedNormal)
		a.SetCollision(true)

		res := sys.Resolve(a)
		assert.False(t, res.Collision, "at %v", pos)
		assert.False(t, a.Collision())
		assert.Equal(t, pos, a.Position())
	}
}

func TestCollision_MissingLayersMatchNothing(t *testing.T) {
	sys := NewCollisionSystem(entity.LayerSet{})
	a := entity.NewActor("hero", entity.TileCenter(1, 1), entity.SpeedNormal)

	res := sys.Check(a)
	assert.False(t, res.Collision)
	assert.False(t, res.PlayerEvent())
}

func TestCollision_EventOnArrival(t *testing.T) {
	sign := entity.Region{
		Name:       "Start",
		Bounds:     entity.TileRect(11, 10),
		Properties: map[string]string{entity.SceneProperty: "Sign"},
	}
	sys := NewCollisionSystem(layersWith(nil, sign))
	a := entity.NewActor("hero", entity.TileCenter(10, 10), entity.SpeedNormal)
	a.AddTargetTile(entity.TilePos{Col: 11, Row: 10})

	a.FollowTargets(frameDT)
	res := sys.Check(a)
	assert.False(t, res.PlayerEvent(), "mid-step never matches")

	for !a.MoveComplete() {
		a.FollowTargets(frameDT)
		res = sys.Check(a)
	}
	require.True(t, res.PlayerEvent())
	assert.Equal(t, "Start", res.Event.Name)
	assert.Equal(t, "Sign", res.Event.Property(entity.SceneProperty, ""))

	// leaving clears it
	a.AddTargetTile(entity.TilePos{Col: 12, Row: 10})
	for !a.MoveComplete() {
		a.FollowTargets(frameDT)
		res = sys.Check(a)
	}
	assert.False(t, res.PlayerEvent())
}

func TestCollision_FirstHitWins(t *testing.T) {
	set := entity.LayerSet{entity.CollisionLayer: {
		{Name: "wall", Bounds: entity.TileRect(0, 0)},
		{Name: "rock", Bounds: entity.TileRect(0, 0)},
	}}
	sys := NewCollisionSystem(set)

	r, ok := sys.Blocked(entity.TileCenter(0, 0))
	require.True(t, ok)
	assert.Equal(t, "wall", r.Name)
}

// fakeMovable is a bare Movable caught mid-step
type fakeMovable struct {
	pos, past entity.Vec
	collision bool
	sets      int // SetCollision calls
}

func (f *fakeMovable) Position() entity.Vec     { return f.pos }
func (f *fakeMovable) PastPosition() entity.Vec { return f.past }
func (f *fakeMovable) Facing() entity.Direction { return entity.South }
func (f *fakeMovable) Idle() bool               { return false }
func (f *fakeMovable) Collision() bool          { return f.collision }

func (f *fakeMovable) SetCollision(c bool) {
	f.collision = c
	f.sets++
}

func (f *fakeMovable) Collided() {
	f.pos = f.past
	f.collision = true
}
