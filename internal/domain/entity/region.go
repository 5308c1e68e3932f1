package entity

// Object layer names looked up in every map
const (
	CollisionLayer = "Collision"
	EventLayer     = "Events"
)

// SceneProperty is the region property naming the dialogue scene an event plays
const SceneProperty = "scene"

// Region is a named rectangle taken from a map object layer.
// Regions are owned by the map; systems only query them.
type Region struct {
	Name       string
	Bounds     Rect
	Properties map[string]string
}

// Property returns the named property or fallback when unset
func (r Region) Property(key, fallback string) string {
	if v, ok := r.Properties[key]; ok && v != "" {
		return v
	}
	return fallback
}

// Tile returns the tile holding the region's top-left corner
func (r Region) Tile() TilePos {
	return TileAt(Vec{X: r.Bounds.X + Tilesize/2, Y: r.Bounds.Y + Tilesize/2})
}

// ObjectLayers gives read access to a map's object layers by name.
// Unknown layers yield no regions.
type ObjectLayers interface {
	Objects(layer string) []Region
}

// LayerSet is an in-memory ObjectLayers
type LayerSet map[string][]Region

// Objects implements ObjectLayers
func (s LayerSet) Objects(layer string) []Region {
	return s[layer]
}
