// Package portaudio binds the recorder to the system's default input
// device through PortAudio. It needs cgo and the PortAudio C library.
package portaudio

import (
	"errors"

	"github.com/gordonklaus/portaudio"

	"oreja/internal/app/audio"
)

// Device opens the default input device.
type Device struct{}

func NewDevice() *Device {
	return &Device{}
}

// Open initializes PortAudio and opens a mono stream that reads into buf.
// The returned stream terminates PortAudio when closed.
func (d *Device) Open(sampleRate int, buf []int16) (audio.Stream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}

	stream, err := portaudio.OpenDefaultStream(audio.Channels, 0, float64(sampleRate), len(buf), buf)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, err
	}
	return &inputStream{stream: stream}, nil
}

type inputStream struct {
	stream *portaudio.Stream
}

func (s *inputStream) Start() error {
	return s.stream.Start()
}

// Read fills the buffer. An overflow only means samples were dropped
// while the loop was busy, so the chunk is still usable.
func (s *inputStream) Read() error {
	err := s.stream.Read()
	if errors.Is(err, portaudio.InputOverflowed) {
		return nil
	}
	return err
}

func (s *inputStream) Stop() error {
	return s.stream.Stop()
}

func (s *inputStream) Close() error {
	closeErr := s.stream.Close()
	termErr := portaudio.Terminate()
	return errors.Join(closeErr, termErr)
}
