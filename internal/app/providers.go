package app

import (
	"io"
	"os"

	goopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"oreja/internal/app/api"
	"oreja/internal/app/api/openai"
	"oreja/internal/app/api/openai/speech"
	"oreja/internal/app/api/openai/whisper"
	"oreja/internal/app/audio"
	"oreja/internal/app/audio/portaudio"
	"oreja/internal/app/config"
	"oreja/internal/app/output"
	"oreja/internal/app/runner"
)

// provideClient shares one OpenAI client between transcription and speech
func provideClient(settings *config.Settings, apiKey string) *goopenai.Client {
	return openai.NewClient(apiKey, settings.BaseURL)
}

func provideTranscriber(client *goopenai.Client, settings *config.Settings) api.Transcriber {
	return whisper.NewRemoteTranscriber(client, settings.TranscriptionModel, settings.Language)
}

func provideSynthesizer(client *goopenai.Client, settings *config.Settings) api.Synthesizer {
	return speech.NewRemoteSynthesizer(client, settings.SpeechModel, settings.SpeechFormat)
}

// provideDevice opens the default microphone lazily, only when recording starts
func provideDevice() audio.Device {
	return portaudio.NewDevice()
}

func provideRecorder(device audio.Device, settings *config.Settings, logger *zap.Logger) runner.Recorder {
	return audio.NewRecorder(device, audio.RecorderConfig{
		SampleRate:      settings.SampleRate,
		FramesPerBuffer: settings.FramesPerBuffer,
		Progress: audio.ProgressConfig{
			Enabled: audio.ShouldShowProgress(settings.DisableProgress),
			Writer:  os.Stderr,
		},
	}, logger)
}

func provideSink(out io.Writer, settings *config.Settings, logger *zap.Logger) *output.Sink {
	var copyFn output.CopyFunc
	if !settings.DisableClipboard {
		copyFn = output.SystemClipboard
	}
	return output.NewSink(out, copyFn, logger)
}

func provideStopContext() runner.StopContext {
	return runner.InterruptContext
}
