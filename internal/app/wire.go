//go:build wireinject
// +build wireinject

package app

import (
	"io"

	"github.com/google/wire"
	"go.uber.org/zap"

	"oreja/internal/app/config"
	"oreja/internal/app/runner"
)

// InitializeRunner wires the OpenAI collaborators, the microphone recorder
// and the output sink for a single invocation.
func InitializeRunner(settings *config.Settings, apiKey string, out io.Writer, logger *zap.Logger) *runner.Runner {
	wire.Build(
		provideClient,
		provideTranscriber,
		provideSynthesizer,
		provideDevice,
		provideRecorder,
		provideSink,
		provideStopContext,
		runner.NewRunner,
	)
	return &runner.Runner{}
}
