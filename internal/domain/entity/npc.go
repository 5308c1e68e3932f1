package entity

import "math"

// Hover bobbing used by floating props such as the intro book
const (
	hoverPeriod    = 2.0 // seconds per bob
	hoverAmplitude = 6.0 // world units
)

// NPC walks a fixed route of direct moves, switching leg each time a
// move completes. Talking pauses the route.
type NPC struct {
	*Actor

	route   []Direction
	leg     int
	talking bool
	hover   float64
}

// NewNPC creates an NPC patrolling route. An empty route stands still.
func NewNPC(name string, pos Vec, speed float64, route ...Direction) *NPC {
	return &NPC{
		Actor: NewActor(name, pos, speed),
		route: route,
		leg:   -1,
	}
}

// Patrol advances the NPC one frame along its route
func (n *NPC) Patrol(dt float64) {
	n.hover += dt
	if n.talking {
		// let a step in progress finish
		n.Move(dt, None)
		return
	}
	if len(n.route) == 0 {
		return
	}
	if n.MoveComplete() {
		n.ResetMove()
		n.leg = (n.leg + 1) % len(n.route)
	}
	n.Move(dt, n.route[n.leg])
}

// Leg returns the current route direction, None before the first move
func (n *NPC) Leg() Direction {
	if n.leg < 0 || len(n.route) == 0 {
		return None
	}
	return n.route[n.leg]
}

// StartTalk pauses the route and turns toward the listener
func (n *NPC) StartTalk(listener Positioned) {
	n.talking = true
	n.FaceActor(listener)
}

// EndTalk resumes the route
func (n *NPC) EndTalk() {
	n.talking = false
}

// Talking reports whether the NPC is in a conversation
func (n *NPC) Talking() bool { return n.talking }

// HoverOffset returns the vertical bob for floating sprites
func (n *NPC) HoverOffset() float64 {
	return math.Sin(n.hover*2*math.Pi/hoverPeriod) * hoverAmplitude
}

// Adjacent reports whether p stands on one of the eight tiles around the NPC
func (n *NPC) Adjacent(p Positioned) bool {
	a, b := n.Tile(), TileAt(p.Position())
	dc, dr := a.Col-b.Col, a.Row-b.Row
	if dc == 0 && dr == 0 {
		return false
	}
	return dc >= -1 && dc <= 1 && dr >= -1 && dr <= 1
}
