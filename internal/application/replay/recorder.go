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

// ErrNoFrames is returned when saving an empty recording
var ErrNoFrames = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a recorder for a session on mapName
func NewRecorder(mapName string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Map:       mapName,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(in system.InputState) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FromInput(r.frame, in))
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return r.WriteTo(file)
}

// WriteTo encodes the recording as indented JSON
func (r *Recorder) WriteTo(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded session
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}

// RecordingSource passes snapshots through from another source,
// recording each one
type RecordingSource struct {
	src system.InputSource
	rec *Recorder
}

// Record wraps src so every polled snapshot lands in rec
func Record(src system.InputSource, rec *Recorder) *RecordingSource {
	return &RecordingSource{src: src, rec: rec}
}

// Poll implements system.InputSource
func (s *RecordingSource) Poll() (system.InputState, bool) {
	in, ok := s.src.Poll()
	if ok {
		s.rec.RecordFrame(in)
	}
	return in, ok
}
