package entity

// Player is the keyboard-driven actor.
// Held direction keys take priority; a click queues a line of tiles
// which is followed until a key is pressed again.
type Player struct {
	*Actor
}

// NewPlayer creates the player at pos
func NewPlayer(pos Vec, speed float64) *Player {
	return &Player{Actor: NewActor("player", pos, speed)}
}

// Walk advances the player for one frame.
// A non-None dir cancels automatic movement.
func (p *Player) Walk(dt float64, dir Direction) {
	if dir != None && p.HasTarget() {
		p.ClearTargets()
	}
	if p.HasTarget() {
		p.FollowTargets(dt)
		return
	}
	p.Step(dt, dir)
}

// WalkTo replaces the queue with a straight line of tiles ending at dest.
// Returns the number of queued tiles.
func (p *Player) WalkTo(dest TilePos) int {
	p.ClearTargets()
	from := p.Tile()
	if !p.Idle() {
		// finish the current step first
		from = TileAt(p.stepOrigin.Add(deltaVec(p.stepDir).Scale(Tilesize)))
		p.AddTargetTile(from)
	}
	line := TileLine(from, dest)
	for _, t := range line {
		p.AddTargetTile(t)
	}
	return len(p.targets)
}

// TileLine returns the tiles stepped through from one tile to another,
// moving diagonally until one axis matches. from itself is excluded.
func TileLine(from, to TilePos) []TilePos {
	var out []TilePos
	cur := from
	for cur != to {
		cur.Col += stepToward(cur.Col, to.Col)
		cur.Row += stepToward(cur.Row, to.Row)
		out = append(out, cur)
	}
	return out
}

func stepToward(a, b int) int {
	switch {
	case a < b:
		return 1
	case a > b:
		return -1
	default:
		return 0
	}
}

func deltaVec(d Direction) Vec {
	dx, dy := d.Delta()
	return Vec{X: dx, Y: dy}
}
