package assets

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gameAssets = os.DirFS("../../../cmd/game/assets")

func TestLibrary_LoadTexture(t *testing.T) {
	lib := NewLibrary(gameAssets)

	img, err := lib.LoadTexture("textures/player.png")
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())

	again, err := lib.LoadTexture("textures/player.png")
	require.NoError(t, err)
	assert.Same(t, img, again, "textures are cached")
}

func TestLibrary_TexturePlaceholder(t *testing.T) {
	lib := NewLibrary(fstest.MapFS{})

	_, err := lib.LoadTexture("textures/missing.png")
	assert.Error(t, err)

	img := lib.Texture("textures/missing.png", 64, 32)
	require.NotNil(t, img)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestLibrary_Face(t *testing.T) {
	lib := NewLibrary(fstest.MapFS{})
	assert.NotNil(t, lib.Face(18))
	assert.NotNil(t, lib.Face(24))
}

func TestDecodeWAV(t *testing.T) {
	s, err := decodeWAV(gameAssets, "audio/text_blip.wav", 44100)
	require.NoError(t, err)
	assert.Positive(t, s.Length())

	_, err = decodeWAV(gameAssets, "audio/none.wav", 44100)
	assert.Error(t, err)

	bad := fstest.MapFS{"junk.wav": {Data: []byte("not a wav")}}
	_, err = decodeWAV(bad, "junk.wav", 44100)
	assert.Error(t, err)
}
