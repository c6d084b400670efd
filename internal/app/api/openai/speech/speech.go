package speech

import (
	"context"
	"io"

	"github.com/sashabaranov/go-openai"

	apperrors "oreja/internal/app/errors"
	"oreja/internal/app/model"
)

// RemoteSynthesizer turns text into audio with the OpenAI speech endpoint.
type RemoteSynthesizer struct {
	client *openai.Client
	model  openai.SpeechModel
	format openai.SpeechResponseFormat
}

// NewRemoteSynthesizer creates a synthesizer. Empty model and format fall
// back to tts-1 and mp3.
func NewRemoteSynthesizer(client *openai.Client, model string, format string) *RemoteSynthesizer {
	s := &RemoteSynthesizer{
		client: client,
		model:  openai.SpeechModel(model),
		format: openai.SpeechResponseFormat(format),
	}
	if s.model == "" {
		s.model = openai.TTSModel1
	}
	if s.format == "" {
		s.format = openai.SpeechResponseFormatMp3
	}
	return s
}

// Synthesize returns the encoded audio exactly as the service sent it.
func (s *RemoteSynthesizer) Synthesize(ctx context.Context, text string, voice model.Voice) ([]byte, error) {
	req := openai.CreateSpeechRequest{
		Model:          s.model,
		Input:          text,
		Voice:          openai.SpeechVoice(voice),
		ResponseFormat: s.format,
	}
	resp, err := s.client.CreateSpeech(ctx, req)
	if err != nil {
		return nil, apperrors.WrapKind(apperrors.KindService, err, "createSpeech failed")
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, apperrors.WrapKind(apperrors.KindService, err, "read speech response")
	}
	return audio, nil
}
