package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleMP3 is a few bytes shaped like an ID3-tagged MP3 stream.
var SampleMP3 = []byte{0x49, 0x44, 0x33, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0a, 0xff, 0xfb, 0x90, 0x64}

// WriteFixture writes data to name inside a fresh temp dir.
func WriteFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// WriteTextFixture writes a UTF-8 text file.
func WriteTextFixture(t *testing.T, name string, text string) string {
	t.Helper()
	return WriteFixture(t, name, []byte(text))
}

// WriteAudioFixture writes bytes that are not valid UTF-8.
func WriteAudioFixture(t *testing.T, name string) string {
	t.Helper()
	return WriteFixture(t, name, SampleMP3)
}
