// Package tilemap loads Tiled TMX maps and draws their tile layers.
package tilemap

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/lafriks/go-tiled"
	"go.uber.org/zap"

	"github.com/younwookim/lustrous/internal/domain/entity"
	"github.com/younwookim/lustrous/internal/logger"
)

// ErrTileSize is returned for maps whose tiles are not entity.Tilesize square
var ErrTileSize = errors.New("unsupported tile size")

// Layer indexes the tile layers in draw order
type Layer int

const (
	Background1 Layer = iota
	Background2
	Field
	CollisionObjects
	CollisionBoxes
	EventLayer
	Overlay
	layerCount
)

var layerNames = [layerCount]string{
	Background1:      "Background_1",
	Background2:      "Background_2",
	Field:            "Field",
	CollisionObjects: "Collision_Objects",
	CollisionBoxes:   "Collision_Boxes",
	EventLayer:       "Event_Layer",
	Overlay:          "Overlay",
}

// String returns the layer name used in TMX files
func (l Layer) String() string {
	if l < 0 || l >= layerCount {
		return "Unknown"
	}
	return layerNames[l]
}

// Map is a loaded TMX map
type Map struct {
	Name       string
	Width      int // tiles
	Height     int
	TileWidth  int
	TileHeight int

	dir      string
	layers   [layerCount]*tiled.Layer
	tilesets []*tiled.Tileset
	objects  entity.LayerSet
}

// Load reads a TMX map from fsys
func Load(fsys fs.FS, file string) (*Map, error) {
	tm, err := tiled.LoadFile(file, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load map %s: %w", file, err)
	}
	m, err := FromTiled(tm, path.Dir(file))
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", file, err)
	}
	m.Name = path.Base(file)

	logger.Info("map loaded",
		zap.String("map", file),
		zap.Int("width", m.Width),
		zap.Int("height", m.Height),
		zap.Int("collisionRegions", len(m.Objects(entity.CollisionLayer))),
		zap.Int("eventRegions", len(m.Objects(entity.EventLayer))))
	return m, nil
}

// FromTiled converts a parsed map; dir is where tileset images are resolved from
func FromTiled(tm *tiled.Map, dir string) (*Map, error) {
	if tm.TileWidth != entity.Tilesize || tm.TileHeight != entity.Tilesize {
		return nil, fmt.Errorf("%w: %dx%d, want %d", ErrTileSize, tm.TileWidth, tm.TileHeight, entity.Tilesize)
	}

	m := &Map{
		Width:      tm.Width,
		Height:     tm.Height,
		TileWidth:  tm.TileWidth,
		TileHeight: tm.TileHeight,
		dir:        dir,
		tilesets:   tm.Tilesets,
		objects:    make(entity.LayerSet),
	}

	for _, l := range tm.Layers {
		idx := layerIndex(l.Name)
		if idx < 0 {
			logger.Debug("ignoring tile layer", zap.String("layer", l.Name))
			continue
		}
		m.layers[idx] = l
	}
	for i, l := range m.layers {
		if l == nil {
			logger.Warn("tile layer missing", zap.String("layer", Layer(i).String()))
		}
	}

	for _, g := range tm.ObjectGroups {
		if _, ok := m.objects[g.Name]; !ok {
			m.objects[g.Name] = nil
		}
		for _, o := range g.Objects {
			m.objects[g.Name] = append(m.objects[g.Name], regionOf(o))
		}
	}
	for _, name := range []string{entity.CollisionLayer, entity.EventLayer} {
		if _, ok := m.objects[name]; !ok {
			logger.Warn("object layer missing, it will match nothing", zap.String("layer", name))
		}
	}
	return m, nil
}

func layerIndex(name string) int {
	for i, n := range layerNames {
		if n == name {
			return i
		}
	}
	return -1
}

func regionOf(o *tiled.Object) entity.Region {
	r := entity.Region{
		Name:       o.Name,
		Bounds:     entity.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
		Properties: map[string]string{},
	}
	if o.Properties != nil {
		if v := o.Properties.GetString(entity.SceneProperty); v != "" {
			r.Properties[entity.SceneProperty] = v
		}
	}
	return r
}

// Objects implements entity.ObjectLayers
func (m *Map) Objects(layer string) []entity.Region {
	return m.objects.Objects(layer)
}

// HasLayer reports whether the tile layer was present in the file
func (m *Map) HasLayer(l Layer) bool {
	return l >= 0 && l < layerCount && m.layers[l] != nil
}

// PixelSize returns the map size in world units
func (m *Map) PixelSize() (w, h int) {
	return m.Width * m.TileWidth, m.Height * m.TileHeight
}

// Contains reports whether tile t lies on the map
func (m *Map) Contains(t entity.TilePos) bool {
	return t.Col >= 0 && t.Row >= 0 && t.Col < m.Width && t.Row < m.Height
}

// TileAt returns the tile of layer l at (col, row), nil when empty
func (m *Map) TileAt(l Layer, col, row int) *tiled.LayerTile {
	if !m.HasLayer(l) || col < 0 || row < 0 || col >= m.Width || row >= m.Height {
		return nil
	}
	tiles := m.layers[l].Tiles
	i := row*m.Width + col
	if i >= len(tiles) || tiles[i] == nil || tiles[i].IsNil() {
		return nil
	}
	return tiles[i]
}
