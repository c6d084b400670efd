package audio

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "oreja/internal/app/errors"
)

// Stream is an opened input stream that fills the buffer handed to
// Device.Open on every Read.
type Stream interface {
	Start() error
	// Read blocks until the buffer holds a full chunk.
	Read() error
	Stop() error
	// Close releases the stream and the device behind it.
	Close() error
}

// Device opens mono 16-bit input streams.
type Device interface {
	Open(sampleRate int, buf []int16) (Stream, error)
}

// RecorderConfig holds the capture parameters.
type RecorderConfig struct {
	SampleRate      int
	FramesPerBuffer int
	Progress        ProgressConfig
}

// RecordingInfo summarizes a finished recording.
type RecordingInfo struct {
	Path       string
	SampleRate int
	Frames     int
	Duration   time.Duration
}

// Recorder captures microphone audio until its context is cancelled.
type Recorder struct {
	device Device
	config RecorderConfig
	logger *zap.Logger
}

func NewRecorder(device Device, config RecorderConfig, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{device: device, config: config, logger: logger}
}

// Record reads fixed-size chunks into memory, checking ctx between reads.
// Once ctx is done the stream is stopped, the samples are written to path
// as WAV, and the device is released on every return path.
func (r *Recorder) Record(ctx context.Context, path string) (*RecordingInfo, error) {
	chunk := make([]int16, r.config.FramesPerBuffer)

	stream, err := r.device.Open(r.config.SampleRate, chunk)
	if err != nil {
		return nil, apperrors.WrapKind(apperrors.KindAudio, err, "open input stream")
	}
	defer func() {
		if err := stream.Close(); err != nil {
			r.logger.Warn("close input stream", zap.Error(err))
		}
	}()

	if err := stream.Start(); err != nil {
		return nil, apperrors.WrapKind(apperrors.KindAudio, err, "start input stream")
	}

	indicator := NewIndicator(r.config.Progress, r.config.SampleRate)
	r.logger.Debug("recording started",
		zap.Int("sample_rate", r.config.SampleRate),
		zap.Int("frames_per_buffer", r.config.FramesPerBuffer))

	var samples []int16
	for ctx.Err() == nil {
		if err := stream.Read(); err != nil {
			indicator.Done()
			_ = stream.Stop()
			return nil, apperrors.WrapKind(apperrors.KindAudio, err, "read input stream")
		}
		samples = append(samples, chunk...)
		indicator.Update(len(samples))
	}
	indicator.Done()

	if err := stream.Stop(); err != nil {
		r.logger.Warn("stop input stream", zap.Error(err))
	}

	if len(samples) == 0 {
		return nil, apperrors.ErrNoAudioCaptured
	}

	if err := WriteWAV(path, samples, r.config.SampleRate); err != nil {
		return nil, err
	}

	info := &RecordingInfo{
		Path:       path,
		SampleRate: r.config.SampleRate,
		Frames:     len(samples),
		Duration:   time.Duration(len(samples)) * time.Second / time.Duration(r.config.SampleRate),
	}
	r.logger.Info("recording saved",
		zap.String("path", path),
		zap.Int("frames", info.Frames),
		zap.Duration("duration", info.Duration))
	return info, nil
}
