package runner

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"oreja/internal/app/api"
	"oreja/internal/app/audio"
	"oreja/internal/app/classifier"
	apperrors "oreja/internal/app/errors"
	"oreja/internal/app/model"
	"oreja/internal/app/output"
	"oreja/internal/app/util/files"
)

// Recorder captures audio into path until ctx is done.
type Recorder interface {
	Record(ctx context.Context, path string) (*audio.RecordingInfo, error)
}

// StopContext returns a context cancelled when recording should stop.
type StopContext func(parent context.Context) (context.Context, context.CancelFunc)

// InterruptContext stops on SIGINT or SIGTERM. After the returned cancel
// runs, a further interrupt kills the process as usual.
func InterruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// Runner executes one classified invocation.
type Runner struct {
	transcriber api.Transcriber
	synthesizer api.Synthesizer
	recorder    Recorder
	sink        *output.Sink
	stop        StopContext
	logger      *zap.Logger
}

func NewRunner(transcriber api.Transcriber, synthesizer api.Synthesizer, recorder Recorder,
	sink *output.Sink, stop StopContext, logger *zap.Logger) *Runner {
	return &Runner{
		transcriber: transcriber,
		synthesizer: synthesizer,
		recorder:    recorder,
		sink:        sink,
		stop:        stop,
		logger:      logger,
	}
}

// Run takes the branch chosen by the classifier.
func (r *Runner) Run(ctx context.Context, inv model.Invocation, cls classifier.Classification) error {
	r.logger.Debug("running", zap.String("mode", cls.Mode.String()))

	switch cls.Mode {
	case model.ModeRecord:
		return r.record(ctx, inv.Output)
	case model.ModeTranscribeFile:
		return r.transcribe(ctx, cls.Path)
	case model.ModeSynthesizeFile, model.ModeSynthesizeLiteral:
		return r.synthesize(ctx, cls.Text, inv.Voice, inv.Output)
	default:
		return apperrors.Newf("unsupported mode %s", cls.Mode)
	}
}

// record captures until interrupted, then transcribes the new file with
// the parent context, which the interrupt does not cancel.
func (r *Runner) record(ctx context.Context, path string) error {
	if err := files.EnsureParentDir(path); err != nil {
		return apperrors.WrapKind(apperrors.KindFilesystem, err, "create output directory")
	}

	recCtx, stop := r.stop(ctx)
	info, err := r.recorder.Record(recCtx, path)
	stop()
	if err != nil {
		return err
	}
	r.logger.Debug("recorded", zap.String("path", info.Path), zap.Duration("duration", info.Duration))

	text, err := r.transcriber.Transcript(ctx, info.Path)
	if err != nil {
		return err
	}

	_, err = r.sink.Recording(info.Path, text)
	return err
}

func (r *Runner) transcribe(ctx context.Context, path string) error {
	text, err := r.transcriber.Transcript(ctx, path)
	if err != nil {
		return err
	}
	return r.sink.Transcription(text)
}

func (r *Runner) synthesize(ctx context.Context, text string, voice model.Voice, path string) error {
	speech, err := r.synthesizer.Synthesize(ctx, text, voice)
	if err != nil {
		return err
	}
	return r.sink.Audio(path, speech)
}
