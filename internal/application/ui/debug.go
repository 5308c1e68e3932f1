package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/lustrous/internal/domain/entity"
)

var (
	ColorCollision = color.RGBA{255, 64, 64, 200}
	ColorEvent     = color.RGBA{64, 160, 255, 200}
)

// DebugText formats the F1 overlay: frame rate, world position and
// the fractional tile coordinates
func DebugText(fps float64, pos entity.Vec) string {
	return fmt.Sprintf("FPS: %.2f\nCoordinates: (%.1f, %.1f)\nTile Map: (%.2f, %.2f)",
		fps, pos.X, pos.Y, pos.X/entity.Tilesize, pos.Y/entity.Tilesize)
}

// DrawDebug prints the overlay in the top-left corner
func DrawDebug(screen *ebiten.Image, fps float64, pos entity.Vec) {
	ebitenutil.DebugPrintAt(screen, DebugText(fps, pos), 4, 4)
}

// DrawRegions outlines object regions; cam is the world position of the screen's top-left
func DrawRegions(screen *ebiten.Image, regions []entity.Region, cam entity.Vec, clr color.Color) {
	for _, r := range regions {
		x := float32(r.Bounds.X - cam.X)
		y := float32(r.Bounds.Y - cam.Y)
		vector.StrokeRect(screen, x, y, float32(r.Bounds.W), float32(r.Bounds.H), 1, clr, false)
		if r.Name != "" {
			ebitenutil.DebugPrintAt(screen, r.Name, int(x)+2, int(y)+2)
		}
	}
}
