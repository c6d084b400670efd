package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// SpeechCall records one request to /audio/speech.
type SpeechCall struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

// OpenAIServer fakes the OpenAI audio endpoints.
type OpenAIServer struct {
	*httptest.Server

	mu                 sync.Mutex
	SpeechAudio        []byte
	TranscriptionText  string
	FailStatus         int
	SpeechCalls        []SpeechCall
	TranscriptionFiles []string
}

// NewOpenAIServer starts a fake API that returns SampleMP3 for speech and
// a fixed text for transcriptions. It is closed when the test ends.
func NewOpenAIServer(t *testing.T) *OpenAIServer {
	t.Helper()
	s := &OpenAIServer{
		SpeechAudio:       SampleMP3,
		TranscriptionText: "This is a mock transcription result.",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/audio/speech", s.handleSpeech)
	mux.HandleFunc("/v1/audio/transcriptions", s.handleTranscription)
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the value to use as the client base URL.
func (s *OpenAIServer) BaseURL() string {
	return s.URL + "/v1"
}

func (s *OpenAIServer) fail(w http.ResponseWriter) bool {
	if s.FailStatus == 0 {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(s.FailStatus)
	_, _ = w.Write([]byte(`{"error": {"message": "mock failure", "type": "server_error"}}`))
	return true
}

func (s *OpenAIServer) handleSpeech(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var call SpeechCall
	if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.SpeechCalls = append(s.SpeechCalls, call)

	if s.fail(w) {
		return
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	_, _ = w.Write(s.SpeechAudio)
}

func (s *OpenAIServer) handleTranscription(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, header, err := r.FormFile("file"); err == nil {
		s.TranscriptionFiles = append(s.TranscriptionFiles, header.Filename)
	}

	if s.fail(w) {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"text": s.TranscriptionText})
}
