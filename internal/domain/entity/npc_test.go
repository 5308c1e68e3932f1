package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPC_PatrolBackAndForth(t *testing.T) {
	n := NewNPC("warren", TileCenter(5, 5), SpeedNormal, East, West)
	n.SetStopCounter(10) // one tile per leg
	assert.Equal(t, None, n.Leg())

	var visited []Vec
	for i := 0; i < 200; i++ {
		n.Patrol(frameDT)
		if n.MoveComplete() {
			if len(visited) == 0 || visited[len(visited)-1] != n.Position() {
				visited = append(visited, n.Position())
			}
		}
	}

	require.GreaterOrEqual(t, len(visited), 4)
	assert.Equal(t, TileCenter(6, 5), visited[0])
	assert.Equal(t, TileCenter(5, 5), visited[1])
	assert.Equal(t, TileCenter(6, 5), visited[2])
	assert.Equal(t, TileCenter(5, 5), visited[3])
}

func TestNPC_TalkPausesPatrol(t *testing.T) {
	n := NewNPC("warren", TileCenter(5, 5), SpeedNormal, East, West)
	player := NewPlayer(TileCenter(6, 6), SpeedNormal)

	n.Patrol(frameDT)
	require.False(t, n.Idle())

	n.StartTalk(player)
	assert.True(t, n.Talking())
	assert.Equal(t, SouthEast, n.Facing())

	// the step in progress finishes, then the NPC stays put
	for i := 0; i < 60; i++ {
		n.Patrol(frameDT)
	}
	assert.True(t, n.Idle())
	pos := n.Position()
	assert.True(t, Aligned(pos))
	for i := 0; i < 60; i++ {
		n.Patrol(frameDT)
	}
	assert.Equal(t, pos, n.Position())

	n.EndTalk()
	n.Patrol(frameDT)
	assert.False(t, n.Idle())
}

func TestNPC_StandingStill(t *testing.T) {
	n := NewNPC("sign", TileCenter(2, 2), SpeedNormal)
	for i := 0; i < 30; i++ {
		n.Patrol(frameDT)
	}
	assert.Equal(t, TileCenter(2, 2), n.Position())
	assert.Equal(t, None, n.Leg())
}

func TestNPC_HoverOffset(t *testing.T) {
	n := NewNPC("book", TileCenter(0, 0), 0)
	assert.InDelta(t, 0, n.HoverOffset(), 1e-9)

	n.Patrol(hoverPeriod / 4)
	assert.InDelta(t, hoverAmplitude, n.HoverOffset(), 1e-9)
}

func TestNPC_Adjacent(t *testing.T) {
	n := NewNPC("warren", TileCenter(5, 5), SpeedNormal)

	tests := []struct {
		name string
		at   TilePos
		want bool
	}{
		{"north", TilePos{5, 4}, true},
		{"diagonal", TilePos{6, 6}, true},
		{"same tile", TilePos{5, 5}, false},
		{"two away", TilePos{7, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Adjacent(NewActor("p", tt.at.Center(), 0)))
		})
	}
}

func TestPlayer_WalkManualCancelsQueue(t *testing.T) {
	p := NewPlayer(TileCenter(3, 3), SpeedNormal)
	p.WalkTo(TilePos{6, 3})
	require.True(t, p.HasTarget())

	p.Walk(frameDT, South)
	assert.False(t, p.HasTarget())
	assert.Equal(t, South, p.Facing())
}

func TestPlayer_WalkTo(t *testing.T) {
	p := NewPlayer(TileCenter(0, 0), SpeedFast)
	n := p.WalkTo(TilePos{3, 1})
	assert.Equal(t, 3, n)
	assert.Equal(t, []Vec{TileCenter(1, 1), TileCenter(2, 1), TileCenter(3, 1)}, p.Targets())

	run(t, 1000, func() { p.Walk(frameDT, None) }, p.MoveComplete)
	assert.Equal(t, TileCenter(3, 1), p.Position())
}

func TestPlayer_WalkToWhileStepping(t *testing.T) {
	p := NewPlayer(TileCenter(0, 0), SpeedNormal)
	p.Walk(frameDT, East)
	require.False(t, p.Idle())

	p.WalkTo(TilePos{1, 2})
	assert.Equal(t, []Vec{TileCenter(1, 0), TileCenter(1, 1), TileCenter(1, 2)}, p.Targets())

	run(t, 1000, func() { p.Walk(frameDT, None) }, p.MoveComplete)
	assert.Equal(t, TileCenter(1, 2), p.Position())
}

func TestTileLine(t *testing.T) {
	assert.Empty(t, TileLine(TilePos{2, 2}, TilePos{2, 2}))
	assert.Equal(t,
		[]TilePos{{1, -1}, {2, -2}, {3, -2}},
		TileLine(TilePos{0, 0}, TilePos{3, -2}))
}
