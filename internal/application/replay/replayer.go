package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/lustrous/internal/application/system"
)

// ErrVersion is returned for replay files written by another format version
var ErrVersion = errors.New("unsupported replay version")

// Replayer feeds recorded frames back as an InputSource.
// It runs dry after the last frame, which ends the game.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay reads a replay file written by Recorder.Save
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads one replay document from r
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("%w: %q, want %q", ErrVersion, data.Version, Version)
	}
	return &data, nil
}

// GetInput returns the next recorded snapshot; ok is false once all have played
func (r *Replayer) GetInput() (in system.InputState, ok bool) {
	if r.Done() {
		return system.InputState{}, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// Poll implements system.InputSource
func (r *Replayer) Poll() (system.InputState, bool) { return r.GetInput() }

// CurrentFrame returns how many frames have been played
func (r *Replayer) CurrentFrame() int { return r.frame }

// TotalFrames returns the length of the recording
func (r *Replayer) TotalFrames() int { return len(r.data.Frames) }

// Done reports whether every frame has been played
func (r *Replayer) Done() bool { return r.frame >= len(r.data.Frames) }

// Map returns the map file the recording was made on
func (r *Replayer) Map() string { return r.data.Map }

// Reset rewinds to the first frame
func (r *Replayer) Reset() { r.frame = 0 }

// IdleReplayData creates replay data with the mouse parked and no keys held
func IdleReplayData(frames int, mouseX, mouseY int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Map:       "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}
	for i := range data.Frames {
		data.Frames[i] = FrameInput{F: i, MX: mouseX, MY: mouseY}
	}
	return data
}
