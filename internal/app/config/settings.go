package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "oreja/internal/app/errors"
	"oreja/internal/app/model"
	envconfig "oreja/internal/config"
)

// Default values applied to any setting left empty in the YAML file.
const (
	DefaultTranscriptionModel = "whisper-1"
	DefaultSpeechModel        = "tts-1"
	DefaultSpeechFormat       = "mp3"
	DefaultSampleRate         = 16000
	DefaultFramesPerBuffer    = 1024
)

// Settings is the optional ~/.oreja/settings.yaml file.
type Settings struct {
	APIKey             string      `yaml:"api_key,omitempty"`
	BaseURL            string      `yaml:"base_url,omitempty"`
	TranscriptionModel string      `yaml:"transcription_model,omitempty"`
	Language           string      `yaml:"language,omitempty"`
	SpeechModel        string      `yaml:"speech_model,omitempty"`
	SpeechFormat       string      `yaml:"speech_format,omitempty"`
	DefaultVoice       model.Voice `yaml:"default_voice,omitempty"`
	SampleRate         int         `yaml:"sample_rate,omitempty"`
	FramesPerBuffer    int         `yaml:"frames_per_buffer,omitempty"`
	DisableClipboard   bool        `yaml:"disable_clipboard,omitempty"`
	DisableProgress    bool        `yaml:"disable_progress,omitempty"`
}

// LoadSettings loads settings from a YAML file. A missing file at the
// default location yields the defaults; a missing file that was asked for
// explicitly is an error.
func LoadSettings(configPath string, explicit bool) (*Settings, error) {
	configPath = os.ExpandEnv(configPath)

	settings := &Settings{}
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, apperrors.WrapKind(apperrors.KindConfig, err, "failed to parse settings YAML")
		}
	case os.IsNotExist(err) && !explicit:
	case os.IsNotExist(err):
		return nil, apperrors.WrapKind(apperrors.KindConfig, err, "settings file not found")
	default:
		return nil, apperrors.WrapKind(apperrors.KindFilesystem, err, "failed to read settings file")
	}

	settings.expandEnvironmentVariables()
	settings.setDefaults()

	if err := settings.Validate(); err != nil {
		return nil, apperrors.WrapKind(apperrors.KindConfig, err, apperrors.ErrInvalidConfig.Error())
	}

	return settings, nil
}

// expandEnvironmentVariables replaces "${VAR}" values with the environment
func (s *Settings) expandEnvironmentVariables() {
	for _, field := range []*string{&s.APIKey, &s.BaseURL} {
		v := *field
		if strings.HasPrefix(v, "${") && strings.HasSuffix(v, "}") {
			*field = os.Getenv(strings.TrimSuffix(strings.TrimPrefix(v, "${"), "}"))
		}
	}
}

func (s *Settings) setDefaults() {
	if s.TranscriptionModel == "" {
		s.TranscriptionModel = DefaultTranscriptionModel
	}
	if s.SpeechModel == "" {
		s.SpeechModel = DefaultSpeechModel
	}
	s.SpeechFormat = strings.ToLower(strings.TrimSpace(s.SpeechFormat))
	if s.SpeechFormat == "" {
		s.SpeechFormat = DefaultSpeechFormat
	}
	if s.DefaultVoice == "" {
		s.DefaultVoice = model.DefaultVoice
	}
	if s.SampleRate == 0 {
		s.SampleRate = DefaultSampleRate
	}
	if s.FramesPerBuffer == 0 {
		s.FramesPerBuffer = DefaultFramesPerBuffer
	}
}

// Validate validates the settings
func (s *Settings) Validate() error {
	if !s.DefaultVoice.IsValid() {
		return apperrors.InvalidField("default_voice",
			fmt.Sprintf("%q is not one of %s", s.DefaultVoice, strings.Join(model.VoiceNames(), ", ")))
	}
	if err := envconfig.ValidateSampleRate(s.SampleRate); err != nil {
		return err
	}
	if err := envconfig.ValidateFramesPerBuffer(s.FramesPerBuffer); err != nil {
		return err
	}
	if err := envconfig.ValidateBaseURL(s.BaseURL); err != nil {
		return err
	}
	return envconfig.ValidateSpeechFormat(s.SpeechFormat)
}

// Default returns the settings used when no file exists.
func Default() *Settings {
	s := &Settings{}
	s.setDefaults()
	return s
}

// GetDefaultSettingsPath returns the default settings file path
func GetDefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "settings.yaml"
	}

	return filepath.Join(home, ".oreja", "settings.yaml")
}
