// Package assets loads textures, fonts and audio from an fs.FS
package assets

import (
	"bytes"
	"fmt"
	"image/color"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/lustrous/internal/logger"
)

// Placeholder fill for textures that failed to load
var placeholderColor = color.RGBA{0xff, 0x00, 0xff, 0xff}

// Library caches textures loaded from one filesystem
type Library struct {
	fsys     fs.FS
	textures map[string]*ebiten.Image
	faceSrc  *text.GoTextFaceSource
}

// NewLibrary creates an empty library over fsys
func NewLibrary(fsys fs.FS) *Library {
	return &Library{
		fsys:     fsys,
		textures: make(map[string]*ebiten.Image),
	}
}

// FS returns the underlying filesystem
func (l *Library) FS() fs.FS { return l.fsys }

// LoadTexture decodes an image file, cached by path
func (l *Library) LoadTexture(path string) (*ebiten.Image, error) {
	if img, ok := l.textures[path]; ok {
		return img, nil
	}
	img, _, err := ebitenutil.NewImageFromFileSystem(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", path, err)
	}
	l.textures[path] = img
	return img, nil
}

// Texture loads path, falling back to a w x h placeholder when it fails.
// The failure is logged and the game keeps running.
func (l *Library) Texture(path string, w, h int) *ebiten.Image {
	img, err := l.LoadTexture(path)
	if err == nil {
		return img
	}
	logger.Error("using placeholder texture", zap.String("path", path), zap.Error(err))
	img = ebiten.NewImage(max(w, 1), max(h, 1))
	img.Fill(placeholderColor)
	l.textures[path] = img
	return img
}

// Face returns a Go Regular face at size.
// nil means no TrueType font is available and callers fall back to the debug font.
func (l *Library) Face(size float64) text.Face {
	if l.faceSrc == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			logger.Error("failed to load font, using debug font", zap.Error(err))
			return nil
		}
		l.faceSrc = src
	}
	return &text.GoTextFace{Source: l.faceSrc, Size: size}
}
