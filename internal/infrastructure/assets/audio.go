package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Sound is a short effect that restarts on every Play
type Sound interface {
	Play()
}

// Music is a looping background track
type Music interface {
	Play()
	Pause()
	Stop()
	IsPlaying() bool
}

// Mixer decodes WAV files for one audio context
type Mixer struct {
	ctx  *audio.Context
	fsys fs.FS
}

// NewMixer creates the audio context. Only one may exist per process.
func NewMixer(fsys fs.FS, sampleRate int) *Mixer {
	return &Mixer{ctx: audio.NewContext(sampleRate), fsys: fsys}
}

func (m *Mixer) decode(path string) (*wav.Stream, error) {
	return decodeWAV(m.fsys, path, m.ctx.SampleRate())
}

// decodeWAV reads a whole WAV file and resamples it to sampleRate
func decodeWAV(fsys fs.FS, path string, sampleRate int) (*wav.Stream, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return s, nil
}

// LoadSound loads a WAV effect at volume (0..1)
func (m *Mixer) LoadSound(path string, volume float64) (*Effect, error) {
	s, err := m.decode(path)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	p := m.ctx.NewPlayerFromBytes(data)
	p.SetVolume(volume)
	return &Effect{player: p}, nil
}

// LoadMusic loads a WAV track that loops forever
func (m *Mixer) LoadMusic(path string, volume float64) (*Track, error) {
	s, err := m.decode(path)
	if err != nil {
		return nil, err
	}
	p, err := m.ctx.NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
	if err != nil {
		return nil, fmt.Errorf("failed to create player for %s: %w", path, err)
	}
	p.SetVolume(volume)
	return &Track{player: p}, nil
}

// Effect implements Sound
type Effect struct {
	player *audio.Player
}

// Play restarts the effect from the beginning
func (e *Effect) Play() {
	_ = e.player.Rewind()
	e.player.Play()
}

// Track implements Music
type Track struct {
	player *audio.Player
}

func (t *Track) Play() {
	t.player.Play()
}

func (t *Track) Pause() {
	t.player.Pause()
}

func (t *Track) IsPlaying() bool {
	return t.player.IsPlaying()
}

// Stop pauses and rewinds so the next Play starts over
func (t *Track) Stop() {
	t.player.Pause()
	_ = t.player.Rewind()
}
