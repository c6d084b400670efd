package classifier

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	apperrors "oreja/internal/app/errors"
	"oreja/internal/app/model"
)

// RecordKeywords select record mode, compared case-insensitively.
var RecordKeywords = []string{"rec", "record", "recording"}

// Classification is the outcome of Classify.
type Classification struct {
	Mode model.Mode
	// Text is the synthesis input; empty for record and transcribe modes.
	Text string
	// Path is the existing file the input named, if any.
	Path string
}

// Classifier decides which branch an invocation takes.
type Classifier struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{logger: logger}
}

// IsRecordKeyword reports whether input asks for a microphone recording.
func IsRecordKeyword(input string) bool {
	return lo.Contains(RecordKeywords, strings.ToLower(strings.TrimSpace(input)))
}

// Classify picks exactly one mode for inv. Record keywords win over paths;
// an existing file is read and its bytes decide between transcription
// (not UTF-8) and synthesis (UTF-8); anything else is literal text.
func (c *Classifier) Classify(inv model.Invocation) (Classification, error) {
	if err := inv.Validate(); err != nil {
		return Classification{}, err
	}

	if IsRecordKeyword(inv.Input) {
		cls := Classification{Mode: model.ModeRecord}
		if !inv.HasOutput() {
			return cls, apperrors.Wrap(apperrors.ErrMissingOutput, "record mode")
		}
		return cls, nil
	}

	cls, err := c.classifyPath(inv.Input)
	if err != nil {
		return cls, err
	}

	if cls.Mode.IsSynthesis() {
		if !inv.HasOutput() {
			return cls, apperrors.Wrap(apperrors.ErrMissingOutput, "synthesis mode")
		}
		if strings.TrimSpace(cls.Text) == "" {
			return cls, apperrors.Wrap(apperrors.ErrEmptyInput, "nothing to synthesize")
		}
	}

	c.logger.Debug("input classified",
		zap.String("mode", cls.Mode.String()),
		zap.String("path", cls.Path))
	return cls, nil
}

func (c *Classifier) classifyPath(input string) (Classification, error) {
	info, err := os.Stat(input)
	if err != nil {
		// Any stat failure, including names too long to be paths, means
		// the input is text to speak.
		return Classification{Mode: model.ModeSynthesizeLiteral, Text: input}, nil
	}
	if info.IsDir() {
		return Classification{Path: input}, apperrors.NewKind(apperrors.KindFilesystem, "input is a directory: "+input)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return Classification{Path: input}, apperrors.WrapKind(apperrors.KindFilesystem, err, "read input file")
	}

	if !utf8.Valid(data) {
		c.logger.Debug("input is not UTF-8 text, treating as audio",
			zap.String("path", input),
			zap.String("mime", mimetype.Detect(data).String()))
		return Classification{Mode: model.ModeTranscribeFile, Path: input}, nil
	}

	return Classification{Mode: model.ModeSynthesizeFile, Path: input, Text: decodeText(data)}, nil
}

// decodeText drops a leading UTF-8 byte order mark. data must be valid UTF-8.
func decodeText(data []byte) string {
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return string(data)
	}
	return string(out)
}
