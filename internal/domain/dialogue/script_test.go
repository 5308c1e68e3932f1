package dialogue

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScript = `
# opening
[Intro]
???: Wake up.
Warren: You have slept for a hundred years.
The book glows faintly.

[Scene1]
Warren: Welcome to Lustra.\nMind the river.
`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(testScript))
	require.NoError(t, err)

	assert.Equal(t, []string{"Intro", "Scene1"}, s.Labels())

	intro, err := s.Scene("Intro")
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Speaker: "???", Text: "Wake up."},
		{Speaker: "Warren", Text: "You have slept for a hundred years."},
		{Speaker: "", Text: "The book glows faintly."},
	}, intro)

	scene1, err := s.Scene("Scene1")
	require.NoError(t, err)
	require.Len(t, scene1, 1)
	assert.Equal(t, "Welcome to Lustra.\nMind the river.", scene1[0].Text)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"entry before label", "Warren: hi", "line 1: dialogue before any label"},
		{"duplicate label", "[A]\nx: y\n\n[A]", "line 4: duplicate label"},
		{"empty label", "[ ]", "line 1: empty label"},
		{"unterminated", "[Intro", "line 1: unterminated label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestScript_SceneNotFound(t *testing.T) {
	s, err := Parse(strings.NewReader(testScript))
	require.NoError(t, err)

	_, err = s.Reader("Ending")
	assert.ErrorIs(t, err, ErrSceneNotFound)
}

func TestLoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"script/scenes.txt": {Data: []byte(testScript)},
	}

	s, err := LoadFile(fsys, "script/scenes.txt")
	require.NoError(t, err)
	assert.Len(t, s.Labels(), 2)

	_, err = LoadFile(fsys, "script/missing.txt")
	assert.Error(t, err)
}

func TestReader_IntroThenScene1(t *testing.T) {
	s, err := Parse(strings.NewReader(testScript))
	require.NoError(t, err)

	r, err := s.Reader("Intro")
	require.NoError(t, err)
	assert.Equal(t, 3, r.Remaining())

	for i := 0; i < 3; i++ {
		require.False(t, r.IsEmpty())
		_, ok := r.Current()
		require.True(t, ok)
		r.Next()
	}
	assert.True(t, r.IsEmpty())
	_, ok := r.Current()
	assert.False(t, ok)

	// extra Next calls are harmless
	r.Next()
	assert.Equal(t, 0, r.Remaining())

	r, err = s.Reader("Scene1")
	require.NoError(t, err)
	e, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, "Warren", e.Speaker)
	assert.Equal(t, "Scene1", r.Label())
}

func TestReader_Empty(t *testing.T) {
	r := NewReader("none", nil)
	assert.True(t, r.IsEmpty())
	_, ok := r.Current()
	assert.False(t, ok)
}
