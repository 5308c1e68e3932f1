package entity

// Tilesize is the edge length of one map tile in world units.
// Movement, collision probes and event matching are all aligned to it.
const Tilesize = 64

// Actor speeds in world units per second
const (
	SpeedSlow    = 64.0
	SpeedNormal  = 256.0
	SpeedFast    = 384.0
	SpeedFastest = 512.0
)

// Sprite sheet layout shared by every actor texture
const (
	AnimationFrames = 4 // columns per row
	FrameIdle       = 1 // column shown while standing still
)

// DefaultStopCounter is the number of move ticks a directly driven actor
// walks before it stops at the next tile boundary.
const DefaultStopCounter = 100

// Vec is a position or displacement in world units
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * f
func (v Vec) Scale(f float64) Vec {
	return Vec{v.X * f, v.Y * f}
}

// TilePos addresses a tile by column and row
type TilePos struct {
	Col, Row int
}

// Center returns the world position of the tile's centre
func (t TilePos) Center() Vec {
	return TileCenter(t.Col, t.Row)
}

// TileCenter returns the centre of tile (col, row) in world units
func TileCenter(col, row int) Vec {
	return Vec{
		X: float64(col*Tilesize) + Tilesize/2,
		Y: float64(row*Tilesize) + Tilesize/2,
	}
}

// TileAt returns the tile containing world position p
func TileAt(p Vec) TilePos {
	return TilePos{Col: floorDiv(p.X), Row: floorDiv(p.Y)}
}

// Aligned reports whether p sits exactly on a tile centre
func Aligned(p Vec) bool {
	return TileAt(p).Center() == p
}

func floorDiv(v float64) int {
	i := int(v) / Tilesize
	if v < 0 && float64(i*Tilesize) != v {
		i--
	}
	return i
}

// Rect is an axis-aligned rectangle. The max edges are exclusive.
type Rect struct {
	X, Y, W, H float64
}

// TileRect returns the rectangle covering tile (col, row)
func TileRect(col, row int) Rect {
	return Rect{X: float64(col * Tilesize), Y: float64(row * Tilesize), W: Tilesize, H: Tilesize}
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
