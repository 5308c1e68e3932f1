package tilemap

import (
	"image"
	"image/color"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"go.uber.org/zap"

	"github.com/younwookim/lustrous/internal/domain/entity"
	"github.com/younwookim/lustrous/internal/logger"
)

// Renderer draws map layers with a camera offset.
// Tilesets whose image cannot be loaded draw as flat placeholder tiles.
type Renderer struct {
	m       *Map
	sheets  map[*tiled.Tileset]*ebiten.Image
	missing *ebiten.Image
}

// NewRenderer loads every tileset image of m from fsys
func NewRenderer(m *Map, fsys fs.FS) *Renderer {
	r := &Renderer{
		m:      m,
		sheets: make(map[*tiled.Tileset]*ebiten.Image),
	}
	for _, ts := range m.tilesets {
		if ts.Image == nil || ts.Image.Source == "" {
			logger.Warn("tileset has no image", zap.String("tileset", ts.Name))
			continue
		}
		file := path.Join(m.dir, ts.Image.Source)
		img, _, err := ebitenutil.NewImageFromFileSystem(fsys, file)
		if err != nil {
			logger.Error("failed to load tileset image", zap.String("file", file), zap.Error(err))
			continue
		}
		r.sheets[ts] = img
	}
	return r
}

// SourceRect returns the tileset cell of a local tile id
func SourceRect(ts *tiled.Tileset, id uint32) image.Rectangle {
	cols := ts.Columns
	if cols <= 0 {
		cols = 1
	}
	col, row := int(id)%cols, int(id)/cols
	x := ts.Margin + col*(ts.TileWidth+ts.Spacing)
	y := ts.Margin + row*(ts.TileHeight+ts.Spacing)
	return image.Rect(x, y, x+ts.TileWidth, y+ts.TileHeight)
}

// DrawLayer draws the part of layer l visible through a screen-sized view at cam (top-left, world units)
func (r *Renderer) DrawLayer(screen *ebiten.Image, l Layer, cam entity.Vec) {
	if !r.m.HasLayer(l) {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	tw, th := r.m.TileWidth, r.m.TileHeight

	c0 := max(0, int(cam.X)/tw)
	r0 := max(0, int(cam.Y)/th)
	c1 := min(r.m.Width-1, (int(cam.X)+sw)/tw)
	r1 := min(r.m.Height-1, (int(cam.Y)+sh)/th)

	op := &ebiten.DrawImageOptions{}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			tile := r.m.TileAt(l, col, row)
			if tile == nil {
				continue
			}
			op.GeoM.Reset()
			op.GeoM.Translate(float64(col*tw)-cam.X, float64(row*th)-cam.Y)
			screen.DrawImage(r.tileImage(tile), op)
		}
	}
}

func (r *Renderer) tileImage(tile *tiled.LayerTile) *ebiten.Image {
	sheet, ok := r.sheets[tile.Tileset]
	if !ok {
		return r.placeholder()
	}
	return sheet.SubImage(SourceRect(tile.Tileset, tile.ID)).(*ebiten.Image)
}

func (r *Renderer) placeholder() *ebiten.Image {
	if r.missing == nil {
		r.missing = ebiten.NewImage(r.m.TileWidth, r.m.TileHeight)
		r.missing.Fill(color.RGBA{0x60, 0x20, 0x60, 0xff})
	}
	return r.missing
}
