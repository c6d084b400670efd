package audio

import (
	"io"
	"os"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	apperrors "oreja/internal/app/errors"
)

const (
	// BitDepth is the sample width of every recording.
	BitDepth = 16
	// Channels is the channel count of every recording.
	Channels = 1

	wavFormatPCM = 1
)

// WAVInfo describes the header and length of a WAV file.
type WAVInfo struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Frames     int
}

// Duration is the playback length derived from the frame count.
func (i WAVInfo) Duration() time.Duration {
	if i.SampleRate == 0 {
		return 0
	}
	return time.Duration(i.Frames) * time.Second / time.Duration(i.SampleRate)
}

// WriteWAV writes mono 16-bit samples to path as a PCM WAV file.
func WriteWAV(path string, samples []int16, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.WrapKind(apperrors.KindFilesystem, err, "create wav file")
	}
	return encodeWAV(f, samples, sampleRate)
}

// wavFile is the part of *os.File the encoder needs.
type wavFile interface {
	io.WriteSeeker
	Close() error
}

// encodeWAV writes the samples and header, then closes f. The close error
// is returned since it may carry the last failed write.
func encodeWAV(f wavFile, samples []int16, sampleRate int) error {
	enc := wav.NewEncoder(f, sampleRate, BitDepth, Channels, wavFormatPCM)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: Channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: BitDepth,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return apperrors.WrapKind(apperrors.KindAudio, err, "encode wav")
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return apperrors.WrapKind(apperrors.KindAudio, err, "finalize wav")
	}
	if err := f.Close(); err != nil {
		return apperrors.WrapKind(apperrors.KindFilesystem, err, "close wav file")
	}
	return nil
}

// ReadWAVInfo decodes the header of a WAV file and counts its frames.
func ReadWAVInfo(path string) (WAVInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return WAVInfo{}, apperrors.WrapKind(apperrors.KindFilesystem, err, "open wav file")
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return WAVInfo{}, apperrors.NewKind(apperrors.KindAudio, "not a valid wav file: "+path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return WAVInfo{}, apperrors.WrapKind(apperrors.KindAudio, err, "decode wav")
	}

	info := WAVInfo{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
	}
	if info.Channels > 0 {
		info.Frames = len(buf.Data) / info.Channels
	}
	return info, nil
}
