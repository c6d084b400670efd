package whisper

import (
	"context"

	"github.com/sashabaranov/go-openai"

	apperrors "oreja/internal/app/errors"
)

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client   *openai.Client
	model    string
	language string
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance. An empty
// model selects whisper-1; an empty language lets the service detect it.
func NewRemoteTranscriber(client *openai.Client, model string, language string) *RemoteTranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	return &RemoteTranscriber{client: client, model: model, language: language}
}

// Transcript uploads the file and returns the recognized text.
func (rt *RemoteTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	req := openai.AudioRequest{
		Model:    rt.model,
		FilePath: inputFilePath,
		Language: rt.language,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", apperrors.WrapKind(apperrors.KindService, err, "createTranscription failed")
	}

	return resp.Text, nil
}
