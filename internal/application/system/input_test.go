package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/lustrous/internal/domain/entity"
)

func TestInputState_Direction(t *testing.T) {
	tests := []struct {
		name string
		in   InputState
		want entity.Direction
	}{
		{"nothing", InputState{}, entity.None},
		{"up", InputState{Up: true}, entity.North},
		{"down left", InputState{Down: true, Left: true}, entity.SouthWest},
		{"up right", InputState{Up: true, Right: true}, entity.NorthEast},
		{"opposites cancel", InputState{Left: true, Right: true}, entity.None},
		{"opposites cancel one axis", InputState{Left: true, Right: true, Down: true}, entity.South},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Direction())
		})
	}
}

func TestIntents(t *testing.T) {
	cam := entity.Vec{X: 128, Y: 64}

	intents := Intents(InputState{MouseClick: true, MouseX: 10, MouseY: 70, Confirm: true, Right: true}, cam)
	require.Len(t, intents, 3)

	walk, ok := intents[0].(WalkToIntent)
	require.True(t, ok)
	assert.Equal(t, entity.TilePos{Col: 2, Row: 2}, walk.Tile)

	move, ok := intents[1].(MoveIntent)
	require.True(t, ok)
	assert.Equal(t, entity.East, move.Direction)

	_, ok = intents[2].(InteractIntent)
	assert.True(t, ok)

	only := Intents(InputState{}, cam)
	require.Len(t, only, 1)
	assert.Equal(t, MoveIntent{Direction: entity.None}, only[0])
}
