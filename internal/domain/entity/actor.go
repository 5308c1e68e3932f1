package entity

import "image"

// Positioned is anything with a world position
type Positioned interface {
	Position() Vec
}

// Movable is the capability the collision pass needs from an actor
type Movable interface {
	Positioned
	PastPosition() Vec
	Facing() Direction
	Idle() bool
	Collision() bool
	SetCollision(bool)

	// Collided rolls back to the past position and raises the collision flag
	Collided()
}

// Actor is a grid-walking character.
// It moves one tile step at a time; once a step completes the centre
// sits exactly on a tile centre (64*i + 32).
type Actor struct {
	name  string
	scene string

	position     Vec
	pastPosition Vec // last aligned stop, restored on collision
	facing       Direction
	speed        float64 // world units per second

	targets []Vec // FIFO, front is the current destination

	stepping    bool
	stepDir     Direction
	stepOrigin  Vec
	tileCounter float64 // distance covered in the current step
	steps       int     // completed steps, drives the walk cycle

	movementComplete bool
	collision        bool

	stopCounter int
	timeCounter int

	frame int
}

// NewActor creates an idle actor facing south
func NewActor(name string, pos Vec, speed float64) *Actor {
	return &Actor{
		name:             name,
		position:         pos,
		pastPosition:     pos,
		facing:           South,
		speed:            speed,
		stopCounter:      DefaultStopCounter,
		movementComplete: true,
		frame:            FrameIdle,
	}
}

func (a *Actor) Name() string           { return a.name }
func (a *Actor) Position() Vec          { return a.position }
func (a *Actor) PastPosition() Vec      { return a.pastPosition }
func (a *Actor) Facing() Direction      { return a.facing }
func (a *Actor) Speed() float64         { return a.speed }
func (a *Actor) SetSpeed(speed float64) { a.speed = speed }
func (a *Actor) Collision() bool        { return a.collision }
func (a *Actor) SetCollision(c bool)    { a.collision = c }
func (a *Actor) MoveComplete() bool     { return a.movementComplete }
func (a *Actor) Frame() int             { return a.frame }
func (a *Actor) Scene() string          { return a.scene }
func (a *Actor) SetScene(label string)  { a.scene = label }

// Idle reports whether the actor is standing on a tile with no step in progress
func (a *Actor) Idle() bool { return !a.stepping }

// Tile returns the tile under the actor's centre
func (a *Actor) Tile() TilePos { return TileAt(a.position) }

// SetPosition teleports the actor, cancelling any step in progress
func (a *Actor) SetPosition(p Vec) {
	a.position = p
	a.pastPosition = p
	a.stepping = false
	a.tileCounter = 0
	a.frame = FrameIdle
}

// SetFacing turns the actor without moving it
func (a *Actor) SetFacing(d Direction) {
	if d != None {
		a.facing = d
	}
}

// SetStopCounter sets how many ticks a direct move lasts
func (a *Actor) SetStopCounter(ticks int) {
	a.stopCounter = ticks
}

// Step drives the actor manually. A new step starts only when the actor
// is idle; a step in progress always runs to the tile boundary.
func (a *Actor) Step(dt float64, dir Direction) {
	if !a.stepping {
		if dir == None {
			a.frame = FrameIdle
			a.movementComplete = true
			return
		}
		a.beginStep(dir)
	}
	a.advance(dt)
	a.movementComplete = !a.stepping
}

// Move walks tile steps in dir until the stop counter runs out.
// The actor halts at the first tile boundary after that and reports
// MoveComplete until ResetMove re-arms it.
func (a *Actor) Move(dt float64, dir Direction) {
	if a.movementComplete {
		return
	}
	if !a.stepping {
		if dir == None || a.timeCounter >= a.stopCounter {
			a.finishMove()
			return
		}
		a.beginStep(dir)
	}
	a.timeCounter++
	a.advance(dt)
	if !a.stepping && a.timeCounter >= a.stopCounter {
		a.finishMove()
	}
}

// ResetMove re-arms Move
func (a *Actor) ResetMove() {
	a.timeCounter = 0
	a.movementComplete = false
}

// MoveToward walks toward pos, snapped to its tile centre, one step at a time
func (a *Actor) MoveToward(dt float64, pos Vec) {
	target := TileAt(pos).Center()
	if !a.stepping {
		a.align()
		if a.position == target {
			a.finishMove()
			return
		}
		d := target.Sub(a.position)
		a.beginStep(DirectionFromDelta(d.X, d.Y))
	}
	a.advance(dt)
	a.movementComplete = !a.stepping && a.position == target
}

// FollowTargets consumes the target queue front to back, popping each
// target on arrival. MoveComplete is true exactly when the queue is empty
// and no step is in progress.
func (a *Actor) FollowTargets(dt float64) {
	if !a.stepping {
		a.align()
		for len(a.targets) > 0 && a.targets[0] == a.position {
			a.PopTarget()
		}
		if len(a.targets) == 0 {
			a.finishMove()
			return
		}
		d := a.targets[0].Sub(a.position)
		a.beginStep(DirectionFromDelta(d.X, d.Y))
	}
	a.advance(dt)
	if !a.stepping && len(a.targets) > 0 && a.targets[0] == a.position {
		a.PopTarget()
	}
	a.movementComplete = !a.stepping && len(a.targets) == 0
}

// AddTargetPosition appends a destination, snapped to its tile centre
func (a *Actor) AddTargetPosition(p Vec) {
	a.targets = append(a.targets, TileAt(p).Center())
	a.movementComplete = false
}

// AddTargetTile appends a tile destination
func (a *Actor) AddTargetTile(t TilePos) {
	a.AddTargetPosition(t.Center())
}

// PopTarget drops the current destination
func (a *Actor) PopTarget() {
	if len(a.targets) > 0 {
		a.targets = a.targets[1:]
	}
}

// HasTarget reports whether any destination is queued
func (a *Actor) HasTarget() bool { return len(a.targets) > 0 }

// CurrentTarget returns the front of the queue
func (a *Actor) CurrentTarget() (Vec, bool) {
	if len(a.targets) == 0 {
		return Vec{}, false
	}
	return a.targets[0], true
}

// SetCurrentTarget replaces the front of the queue, or queues p when empty
func (a *Actor) SetCurrentTarget(p Vec) {
	snapped := TileAt(p).Center()
	if len(a.targets) == 0 {
		a.targets = append(a.targets, snapped)
	} else {
		a.targets[0] = snapped
	}
	a.movementComplete = false
}

// Targets returns a copy of the queue
func (a *Actor) Targets() []Vec {
	out := make([]Vec, len(a.targets))
	copy(out, a.targets)
	return out
}

// ClearTargets empties the queue
func (a *Actor) ClearTargets() {
	a.targets = nil
}

// DisableMovement stops the actor on its last aligned tile and drops queued targets
func (a *Actor) DisableMovement() {
	a.targets = nil
	if a.stepping {
		a.position = a.pastPosition
		a.stepping = false
		a.tileCounter = 0
	}
	a.finishMove()
}

// Collided rolls the actor back to its last aligned position and raises the collision flag
func (a *Actor) Collided() {
	a.position = a.pastPosition
	a.stepping = false
	a.tileCounter = 0
	a.targets = nil
	a.collision = true
	a.finishMove()
}

// FaceActor turns toward other by the sign of the relative position
func (a *Actor) FaceActor(other Positioned) {
	d := other.Position().Sub(a.position)
	a.SetFacing(DirectionFromDelta(d.X, d.Y))
}

// CollisionBox returns the tile-sized box centred on the actor
func (a *Actor) CollisionBox() Rect {
	return Rect{X: a.position.X - Tilesize/2, Y: a.position.Y - Tilesize/2, W: Tilesize, H: Tilesize}
}

// TextureRect returns the sprite sheet cell for the current frame and facing
func (a *Actor) TextureRect(frameW, frameH int) image.Rectangle {
	x := a.frame * frameW
	y := a.facing.Row() * frameH
	return image.Rect(x, y, x+frameW, y+frameH)
}

func (a *Actor) beginStep(dir Direction) {
	a.pastPosition = a.position
	a.stepOrigin = a.position
	a.stepDir = dir
	a.facing = dir
	a.stepping = true
	a.tileCounter = 0
	a.movementComplete = false
}

// advance moves along the current step, never past the tile boundary
func (a *Actor) advance(dt float64) {
	if !a.stepping {
		return
	}
	dx, dy := a.stepDir.Delta()
	dist := a.speed * dt
	if dist >= Tilesize-a.tileCounter {
		a.position = a.stepOrigin.Add(Vec{X: dx * Tilesize, Y: dy * Tilesize})
		a.stepping = false
		a.tileCounter = 0
		a.steps++
		a.frame = FrameIdle
		return
	}
	if dist <= 0 {
		return
	}
	a.tileCounter += dist
	a.position = a.stepOrigin.Add(Vec{X: dx * a.tileCounter, Y: dy * a.tileCounter})
	// Two frames per tile, full cycle every two tiles
	a.frame = (a.steps*2 + int(a.tileCounter*2/Tilesize)) % AnimationFrames
}

// align snaps an idle actor that was placed off-grid onto its tile centre
func (a *Actor) align() {
	if !Aligned(a.position) {
		a.position = TileAt(a.position).Center()
		a.pastPosition = a.position
	}
}

func (a *Actor) finishMove() {
	a.movementComplete = true
	a.frame = FrameIdle
}
