package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFader_FadeIn(t *testing.T) {
	f := NewFader(2, FadeIn)
	assert.True(t, f.Complete(), "starts complete")
	assert.Zero(t, f.Alpha())

	f.Reset()
	assert.False(t, f.Complete())
	assert.InDelta(t, 1.0, f.Alpha(), 1e-9)

	f.Update(1)
	assert.InDelta(t, 0.5, f.Alpha(), 1e-9)

	f.Update(5)
	assert.True(t, f.Complete())
	assert.Zero(t, f.Alpha())
}

func TestFader_FadeOut(t *testing.T) {
	f := NewFader(1, FadeOut)
	f.Reset()
	assert.Zero(t, f.Alpha())

	f.Update(0.25)
	assert.InDelta(t, 0.25, f.Alpha(), 1e-9)
}

func TestFader_ZeroDuration(t *testing.T) {
	f := NewFader(0, FadeIn)
	f.Reset()
	assert.True(t, f.Complete())
	assert.Zero(t, f.Alpha())
}
