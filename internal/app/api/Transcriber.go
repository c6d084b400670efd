package api

import (
	"context"

	"oreja/internal/app/model"
)

// Transcriber defines a transcription interface for converting audio files to text.
type Transcriber interface {
	Transcript(ctx context.Context, inputFilePath string) (string, error)
}

// Synthesizer converts text into encoded speech audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, voice model.Voice) ([]byte, error)
}
