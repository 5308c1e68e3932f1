package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/lustrous/internal/application/scene"
)

// mockScene is a test double for scene.Scene
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDT        float64
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.lastDT = dt
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) { m.drawCalled++ }
func (m *mockScene) OnEnter()                  { m.onEnterCalled++ }
func (m *mockScene) OnExit()                   { m.onExitCalled++ }

func TestNew(t *testing.T) {
	initial := &mockScene{}
	g := New(initial, 800, 600)

	require.NotNil(t, g)
	assert.Equal(t, 1, initial.onEnterCalled)
	assert.Same(t, initial, g.Current())
}

func TestGame_UpdateUsesFixedStep(t *testing.T) {
	initial := &mockScene{}
	g := New(initial, 800, 600)

	require.NoError(t, g.Update())
	assert.InDelta(t, 1.0/60, initial.lastDT, 1e-12)

	g.SetDT(1.0 / 30)
	require.NoError(t, g.Update())
	assert.InDelta(t, 1.0/30, initial.lastDT, 1e-12)
	assert.Equal(t, 2, g.Frame())
}

func TestGame_Draw(t *testing.T) {
	initial := &mockScene{}
	g := New(initial, 800, 600)

	g.Draw(ebiten.NewImage(800, 600))
	assert.Equal(t, 1, initial.drawCalled)
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockScene{}, 800, 600)

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestGame_SceneTransition(t *testing.T) {
	title := &mockScene{}
	playing := &mockScene{}
	title.nextScene = playing

	g := New(title, 800, 600)
	require.NoError(t, g.Update())

	assert.Equal(t, 1, title.onExitCalled)
	assert.Equal(t, 1, playing.onEnterCalled)
	assert.Same(t, playing, g.Current())

	require.NoError(t, g.Update())
	assert.Equal(t, 1, playing.updateCalled)
	assert.Equal(t, 1, title.updateCalled)
}

func TestGame_ReenterSameScene(t *testing.T) {
	s := &mockScene{}
	s.nextScene = s

	g := New(s, 800, 600)
	require.NoError(t, g.Update())

	assert.Equal(t, 1, s.onExitCalled)
	assert.Equal(t, 2, s.onEnterCalled)
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	s := &mockScene{}
	g := New(s, 800, 600)

	for i := 0; i < 5; i++ {
		require.NoError(t, g.Update())
	}
	assert.Equal(t, 5, s.updateCalled)
	assert.Zero(t, s.onExitCalled)
}

func TestGame_UpdateError(t *testing.T) {
	s := &mockScene{updateErr: assert.AnError}
	g := New(s, 800, 600)

	assert.ErrorIs(t, g.Update(), assert.AnError)
	assert.Equal(t, 1, s.onExitCalled)
}

func TestGame_Termination(t *testing.T) {
	s := &mockScene{updateErr: ebiten.Termination}
	g := New(s, 800, 600)

	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, 1, s.onExitCalled)
}
