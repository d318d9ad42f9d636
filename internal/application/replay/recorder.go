package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/slotmenu/internal/application/system"
)

// Source supplies live input to record
type Source interface {
	GetInput() system.InputState
}

// Recorder passes input through from a source and records every frame
type Recorder struct {
	src       Source
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder reading from src
func NewRecorder(src Source) *Recorder {
	return &Recorder{
		src: src,
		data: ReplayData{
			Version:   "1.0",
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// GetInput reads the source and records the frame
func (r *Recorder) GetInput() system.InputState {
	in := r.src.GetInput()
	r.RecordFrame(in)
	return in
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F:   r.frame,
		MX:  input.MouseX,
		MY:  input.MouseY,
		MC:  input.MouseClick,
		Esc: input.Escape,
	})
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
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

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("menus_%s.json", time.Now().Format("20060102_150405"))
}
