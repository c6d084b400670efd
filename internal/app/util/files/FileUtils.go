package files

import (
	"os"
	"path/filepath"
	"strings"
)

// transcriptionSuffix is appended to the recording's base name.
const transcriptionSuffix = "_transcription.txt"

// TranscriptionPath derives the sibling text file for an audio path:
// /tmp/memo.wav becomes /tmp/memo_transcription.txt.
func TranscriptionPath(audioPath string) string {
	return strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + transcriptionSuffix
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// WriteFile writes data to path, creating missing parent directories.
func WriteFile(path string, data []byte) error {
	if err := EnsureParentDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
