package model

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	apperrors "oreja/internal/app/errors"
)

// Voice names one of the fixed speakers offered by the speech endpoint.
type Voice string

const (
	VoiceAlloy   Voice = "alloy"
	VoiceEcho    Voice = "echo"
	VoiceFable   Voice = "fable"
	VoiceOnyx    Voice = "onyx"
	VoiceNova    Voice = "nova"
	VoiceShimmer Voice = "shimmer"

	DefaultVoice = VoiceNova
)

// Voices lists every accepted voice in the order shown by --help.
var Voices = []Voice{VoiceAlloy, VoiceEcho, VoiceFable, VoiceOnyx, VoiceNova, VoiceShimmer}

// VoiceNames returns Voices as plain strings.
func VoiceNames() []string {
	return lo.Map(Voices, func(v Voice, _ int) string { return string(v) })
}

// IsValid reports whether v is one of Voices.
func (v Voice) IsValid() bool {
	return lo.Contains(Voices, v)
}

// Invocation is the parsed command line. It does not change after parsing.
type Invocation struct {
	Input  string `validate:"required"`
	Output string
	Voice  Voice `validate:"required,oneof=alloy echo fable onyx nova shimmer"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// HasOutput reports whether an output path was supplied.
func (inv Invocation) HasOutput() bool {
	return strings.TrimSpace(inv.Output) != ""
}

// Validate checks the struct tags and maps failures onto config errors.
func (inv Invocation) Validate() error {
	err := validate.Struct(inv)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.WrapKind(apperrors.KindConfig, err, "invalid invocation")
	}

	for _, fe := range validationErrs {
		switch fe.Field() {
		case "Voice":
			return apperrors.Wrapf(apperrors.ErrInvalidVoice, "%q (choose from %s)",
				string(inv.Voice), strings.Join(VoiceNames(), ", "))
		case "Input":
			return apperrors.ErrEmptyInput
		}
	}
	return apperrors.WrapKind(apperrors.KindConfig, err, "invalid invocation")
}
