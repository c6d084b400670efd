package config

import (
	"fmt"
	"net/url"

	"github.com/samber/lo"

	apperrors "oreja/internal/app/errors"
)

// SupportedSampleRates lists the capture rates the recorder accepts.
var SupportedSampleRates = []int{8000, 16000, 22050, 44100, 48000}

// SupportedSpeechFormats lists the response formats of the speech endpoint.
var SupportedSpeechFormats = []string{"mp3", "opus", "aac", "flac", "wav", "pcm"}

const maxFramesPerBuffer = 65536

// ValidateSampleRate validates the recording sample rate
func ValidateSampleRate(rate int) error {
	if !lo.Contains(SupportedSampleRates, rate) {
		return apperrors.InvalidField("sample_rate",
			fmt.Sprintf("%d not supported (use one of %v)", rate, SupportedSampleRates))
	}
	return nil
}

// ValidateFramesPerBuffer validates the recording chunk size
func ValidateFramesPerBuffer(frames int) error {
	if frames <= 0 || frames > maxFramesPerBuffer {
		return apperrors.OutOfRange("frames_per_buffer", 1, maxFramesPerBuffer)
	}
	return nil
}

// ValidateBaseURL validates an optional API base URL
func ValidateBaseURL(baseURL string) error {
	if baseURL == "" {
		return nil
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return apperrors.InvalidField("base_url", err.Error())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return apperrors.InvalidField("base_url", fmt.Sprintf("must use http or https, got %q", u.Scheme))
	}
	if u.Host == "" {
		return apperrors.RequiredField("base_url host")
	}
	return nil
}

// ValidateSpeechFormat validates the synthesized audio format. The value
// must already be lower case, as the API expects.
func ValidateSpeechFormat(format string) error {
	if !lo.Contains(SupportedSpeechFormats, format) {
		return apperrors.InvalidField("speech_format",
			fmt.Sprintf("%q must be one of %v", format, SupportedSpeechFormats))
	}
	return nil
}
