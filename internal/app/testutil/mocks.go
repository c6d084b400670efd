package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"oreja/internal/app/audio"
	"oreja/internal/app/model"
)

// MockTranscriber is a testify mock of api.Transcriber
type MockTranscriber struct {
	mock.Mock
}

func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

// Transcript implements the api.Transcriber interface
func (m *MockTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	args := m.Called(ctx, inputFilePath)
	return args.String(0), args.Error(1)
}

// MockSynthesizer is a testify mock of api.Synthesizer
type MockSynthesizer struct {
	mock.Mock
}

func NewMockSynthesizer() *MockSynthesizer {
	return &MockSynthesizer{}
}

// Synthesize implements the api.Synthesizer interface
func (m *MockSynthesizer) Synthesize(ctx context.Context, text string, voice model.Voice) ([]byte, error) {
	args := m.Called(ctx, text, voice)
	var audio []byte
	if v := args.Get(0); v != nil {
		audio = v.([]byte)
	}
	return audio, args.Error(1)
}

// MockRecorder is a testify mock of runner.Recorder. When Write is set it
// writes a real silent WAV of WriteFrames frames before returning.
type MockRecorder struct {
	mock.Mock
	Write       bool
	WriteFrames int
	SampleRate  int
}

func NewMockRecorder() *MockRecorder {
	return &MockRecorder{SampleRate: 16000}
}

// Record implements the runner.Recorder interface
func (m *MockRecorder) Record(ctx context.Context, path string) (*audio.RecordingInfo, error) {
	args := m.Called(ctx, path)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if m.Write {
		if err := audio.WriteWAV(path, make([]int16, m.WriteFrames), m.SampleRate); err != nil {
			return nil, err
		}
	}
	info, _ := args.Get(0).(*audio.RecordingInfo)
	return info, nil
}
