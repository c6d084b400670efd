package model

// Mode is the branch the tool takes for a given input.
type Mode int

const (
	ModeRecord Mode = iota + 1
	ModeTranscribeFile
	ModeSynthesizeFile
	ModeSynthesizeLiteral
)

func (m Mode) String() string {
	switch m {
	case ModeRecord:
		return "record"
	case ModeTranscribeFile:
		return "transcribe-file"
	case ModeSynthesizeFile:
		return "synthesize-file"
	case ModeSynthesizeLiteral:
		return "synthesize-literal"
	default:
		return "unknown"
	}
}

// IsSynthesis reports whether the mode ends in a call to the speech endpoint.
func (m Mode) IsSynthesis() bool {
	return m == ModeSynthesizeFile || m == ModeSynthesizeLiteral
}
