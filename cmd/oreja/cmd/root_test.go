package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"oreja/internal/app/api/openai"
	"oreja/internal/app/api/openai/speech"
	"oreja/internal/app/api/openai/whisper"
	"oreja/internal/app/audio"
	"oreja/internal/app/config"
	apperrors "oreja/internal/app/errors"
	"oreja/internal/app/output"
	"oreja/internal/app/runner"
	"oreja/internal/app/testutil"
)

type harness struct {
	server   *testutil.OpenAIServer
	recorder *testutil.MockRecorder
	apiKeys  []string
	built    int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	// Keep credential files and the default settings file out of reach.
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "sk-test")
	return &harness{
		server:   testutil.NewOpenAIServer(t),
		recorder: testutil.NewMockRecorder(),
	}
}

func (h *harness) factory(settings *config.Settings, apiKey string, out io.Writer, logger *zap.Logger) *runner.Runner {
	h.built++
	h.apiKeys = append(h.apiKeys, apiKey)
	client := openai.NewClient(apiKey, settings.BaseURL)
	stop := func(parent context.Context) (context.Context, context.CancelFunc) {
		return context.WithCancel(parent)
	}
	return runner.NewRunner(
		whisper.NewRemoteTranscriber(client, settings.TranscriptionModel, settings.Language),
		speech.NewRemoteSynthesizer(client, settings.SpeechModel, settings.SpeechFormat),
		h.recorder,
		output.NewSink(out, nil, logger),
		stop,
		logger,
	)
}

// settingsFile points the client at the fake server.
func (h *harness) settingsFile(t *testing.T, extra string) string {
	t.Helper()
	content := "base_url: " + h.server.BaseURL() + "\n" + extra
	return testutil.WriteTextFixture(t, "settings.yaml", content)
}

func (h *harness) execute(args ...string) (string, error) {
	var out bytes.Buffer
	root := NewRootCmd(h.factory)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRecordWithoutOutput(t *testing.T) {
	h := newHarness(t)
	t.Setenv("OPENAI_API_KEY", "")

	for _, keyword := range []string{"rec", "record", "RECORDING"} {
		_, err := h.execute(keyword)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrMissingOutput), "keyword %q: %v", keyword, err)
	}
	assert.Zero(t, h.built)
}

func TestSynthesizeLiteral(t *testing.T) {
	h := newHarness(t)
	out := filepath.Join(t.TempDir(), "out.mp3")

	stdout, err := h.execute("hello world", "-o", out, "--config", h.settingsFile(t, ""))
	require.NoError(t, err)

	assert.Contains(t, stdout, out)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleMP3, data)

	require.Len(t, h.server.SpeechCalls, 1)
	call := h.server.SpeechCalls[0]
	assert.Equal(t, "hello world", call.Input)
	assert.Equal(t, "nova", call.Voice)
	assert.Equal(t, "tts-1", call.Model)
	assert.Equal(t, []string{"sk-test"}, h.apiKeys)
}

func TestSynthesizeFromTextFile(t *testing.T) {
	h := newHarness(t)
	notes := testutil.WriteTextFixture(t, "notes.txt", "Hi")
	out := filepath.Join(t.TempDir(), "hi.mp3")

	stdout, err := h.execute(notes, "-o", out, "-v", "echo", "--config", h.settingsFile(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "Audio saved to "+out+"\n", stdout)
	require.Len(t, h.server.SpeechCalls, 1)
	assert.Equal(t, "Hi", h.server.SpeechCalls[0].Input)
	assert.Equal(t, "echo", h.server.SpeechCalls[0].Voice)
	assert.FileExists(t, out)
}

func TestSynthesizeUsesSettingsVoice(t *testing.T) {
	h := newHarness(t)
	out := filepath.Join(t.TempDir(), "out.mp3")

	_, err := h.execute("good morning", "-o", out, "--config", h.settingsFile(t, "default_voice: onyx\nspeech_model: tts-1-hd\n"))
	require.NoError(t, err)

	require.Len(t, h.server.SpeechCalls, 1)
	assert.Equal(t, "onyx", h.server.SpeechCalls[0].Voice)
	assert.Equal(t, "tts-1-hd", h.server.SpeechCalls[0].Model)
}

func TestSynthesizeSendsLowerCaseFormat(t *testing.T) {
	h := newHarness(t)
	out := filepath.Join(t.TempDir(), "out.wav")

	_, err := h.execute("good night", "-o", out, "--config", h.settingsFile(t, "speech_format: WAV\n"))
	require.NoError(t, err)

	require.Len(t, h.server.SpeechCalls, 1)
	assert.Equal(t, "wav", h.server.SpeechCalls[0].ResponseFormat)
}

func TestSynthesizeWithoutOutput(t *testing.T) {
	h := newHarness(t)

	_, err := h.execute("hello world", "--config", h.settingsFile(t, ""))
	assert.True(t, errors.Is(err, apperrors.ErrMissingOutput))
	assert.Empty(t, h.server.SpeechCalls)
}

func TestInvalidVoice(t *testing.T) {
	h := newHarness(t)

	_, err := h.execute("hello", "-o", filepath.Join(t.TempDir(), "x.mp3"), "-v", "robot", "--config", h.settingsFile(t, ""))
	assert.True(t, errors.Is(err, apperrors.ErrInvalidVoice))
	assert.Zero(t, h.built)
}

func TestTranscribeAudioFile(t *testing.T) {
	h := newHarness(t)
	h.server.TranscriptionText = "the quick brown fox"
	clip := testutil.WriteAudioFixture(t, "clip.mp3")

	stdout, err := h.execute(clip, "--config", h.settingsFile(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "the quick brown fox\n", stdout)
	assert.Equal(t, []string{"clip.mp3"}, h.server.TranscriptionFiles)
}

func TestRecordThenTranscribe(t *testing.T) {
	h := newHarness(t)
	h.server.TranscriptionText = "call the dentist"
	h.recorder.Write = true
	h.recorder.WriteFrames = 8000

	wav := filepath.Join(t.TempDir(), "memo.wav")
	info := &audio.RecordingInfo{Path: wav, SampleRate: 16000, Frames: 8000, Duration: 500 * time.Millisecond}
	h.recorder.On("Record", mock.Anything, wav).Return(info, nil)

	stdout, err := h.execute("rec", "-o", wav, "--config", h.settingsFile(t, ""))
	require.NoError(t, err)

	textPath := filepath.Join(filepath.Dir(wav), "memo_transcription.txt")
	data, err := os.ReadFile(textPath)
	require.NoError(t, err)
	assert.Equal(t, "call the dentist", string(data))
	assert.Contains(t, stdout, "call the dentist\n")
	assert.Contains(t, stdout, "Transcription saved to "+textPath)
	assert.Equal(t, []string{"memo.wav"}, h.server.TranscriptionFiles)
}

func TestServiceErrorIsReturned(t *testing.T) {
	h := newHarness(t)
	h.server.FailStatus = 500

	_, err := h.execute("hello", "-o", filepath.Join(t.TempDir(), "x.mp3"), "--config", h.settingsFile(t, ""))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindService, apperrors.KindOf(err))
}

func TestMissingAPIKey(t *testing.T) {
	h := newHarness(t)
	t.Setenv("OPENAI_API_KEY", "")

	_, err := h.execute("hello", "-o", filepath.Join(t.TempDir(), "x.mp3"), "--config", h.settingsFile(t, ""))
	assert.True(t, errors.Is(err, apperrors.ErrMissingAPIKey))
	assert.Zero(t, h.built)
}

func TestAPIKeyFromSettings(t *testing.T) {
	h := newHarness(t)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OREJA_TEST_KEY", "sk-from-settings")

	_, err := h.execute("hello", "-o", filepath.Join(t.TempDir(), "x.mp3"),
		"--config", h.settingsFile(t, "api_key: ${OREJA_TEST_KEY}\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"sk-from-settings"}, h.apiKeys)
}

func TestExplicitSettingsFileMissing(t *testing.T) {
	h := newHarness(t)

	_, err := h.execute("hello", "-o", "x.mp3", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConfig, apperrors.KindOf(err))
}

func TestRequiresExactlyOneArgument(t *testing.T) {
	h := newHarness(t)

	_, err := h.execute()
	assert.Error(t, err)
	_, err = h.execute("a", "b")
	assert.Error(t, err)
}

func TestVersionFlag(t *testing.T) {
	h := newHarness(t)

	stdout, err := h.execute("--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "v0.1.0")
}
