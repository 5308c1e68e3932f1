package entity

import (
	"fmt"
	"strings"
)

// Direction is one of the eight compass directions, or None
type Direction int

const (
	South Direction = iota
	West
	East
	North
	SouthWest
	SouthEast
	NorthWest
	NorthEast
	None
)

var directionNames = [...]string{
	South:     "south",
	West:      "west",
	East:      "east",
	North:     "north",
	SouthWest: "southwest",
	SouthEast: "southeast",
	NorthWest: "northwest",
	NorthEast: "northeast",
	None:      "none",
}

// String returns the lower-case compass name
func (d Direction) String() string {
	if d < South || d > None {
		return "unknown"
	}
	return directionNames[d]
}

// ParseDirection converts a compass name to a Direction
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}
	return None, fmt.Errorf("unknown direction %q", s)
}

// UnmarshalText lets directions be written by name in config files
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText writes the compass name
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Delta returns the per-axis unit step of the direction (screen coordinates, +Y is south)
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case South:
		return 0, 1
	case West:
		return -1, 0
	case East:
		return 1, 0
	case North:
		return 0, -1
	case SouthWest:
		return -1, 1
	case SouthEast:
		return 1, 1
	case NorthWest:
		return -1, -1
	case NorthEast:
		return 1, -1
	default:
		return 0, 0
	}
}

// DirectionFromDelta maps the signs of a displacement to a direction
func DirectionFromDelta(dx, dy float64) Direction {
	sx, sy := sign(dx), sign(dy)
	switch {
	case sx == 0 && sy > 0:
		return South
	case sx < 0 && sy == 0:
		return West
	case sx > 0 && sy == 0:
		return East
	case sx == 0 && sy < 0:
		return North
	case sx < 0 && sy > 0:
		return SouthWest
	case sx > 0 && sy > 0:
		return SouthEast
	case sx < 0 && sy < 0:
		return NorthWest
	case sx > 0 && sy < 0:
		return NorthEast
	default:
		return None
	}
}

// Row returns the sprite sheet row for the direction.
// Sheets carry south, west, east and north rows; diagonals use their horizontal component.
func (d Direction) Row() int {
	switch d {
	case West, SouthWest, NorthWest:
		return 1
	case East, SouthEast, NorthEast:
		return 2
	case North:
		return 3
	default:
		return 0
	}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
