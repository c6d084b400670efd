package output

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	apperrors "oreja/internal/app/errors"
	"oreja/internal/app/util/files"
)

// CopyFunc places text on the system clipboard.
type CopyFunc func(text string) error

// SystemClipboard copies through the platform clipboard tool.
func SystemClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	return clipboard.WriteAll(text)
}

// Sink delivers command results to the user.
type Sink struct {
	out    io.Writer
	copy   CopyFunc
	logger *zap.Logger
}

// NewSink writes results to out. A nil copyFn disables the clipboard.
func NewSink(out io.Writer, copyFn CopyFunc, logger *zap.Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{out: out, copy: copyFn, logger: logger}
}

// Transcription prints text as is.
func (s *Sink) Transcription(text string) error {
	_, err := fmt.Fprintln(s.out, text)
	return err
}

// Recording prints the transcription of a fresh recording, saves it next
// to the audio file and copies it to the clipboard. A clipboard failure is
// only logged. It returns the path of the text file.
func (s *Sink) Recording(audioPath string, text string) (string, error) {
	if err := s.Transcription(text); err != nil {
		return "", err
	}

	textPath := files.TranscriptionPath(audioPath)
	if err := files.WriteFile(textPath, []byte(text)); err != nil {
		return "", apperrors.WrapKind(apperrors.KindFilesystem, err, "write transcription")
	}
	s.logger.Debug("transcription saved", zap.String("path", textPath))

	if s.copy != nil {
		if err := s.copy(text); err != nil {
			s.logger.Warn("could not copy transcription to clipboard", zap.Error(err))
		} else {
			s.logger.Debug("transcription copied to clipboard")
		}
	}

	_, err := fmt.Fprintf(s.out, "Transcription saved to %s\n", textPath)
	return textPath, err
}

// Audio writes synthesized audio verbatim to path and confirms it.
func (s *Sink) Audio(path string, audio []byte) error {
	if err := files.WriteFile(path, audio); err != nil {
		return apperrors.WrapKind(apperrors.KindFilesystem, err, "write audio")
	}
	s.logger.Debug("audio written", zap.String("path", path), zap.Int("bytes", len(audio)))

	_, err := fmt.Fprintf(s.out, "Audio saved to %s\n", path)
	return err
}
