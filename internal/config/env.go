package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	apperrors "oreja/internal/app/errors"
)

// APIKeyEnv is the only environment variable the tool reads.
const APIKeyEnv = "OPENAI_API_KEY"

// credentialFileName is the bundled credential file looked up next to the
// binary and under ~/.oreja.
const credentialFileName = "api_key"

// LoadEnv loads environment variables from a .env file if one exists.
// It returns the path it loaded, or "" when none was found.
func LoadEnv() (string, error) {
	envPaths := []string{
		".env",
		".env.local",
	}

	// Look for .env file, but don't fail if not found (environment variables might be set system-wide)
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	return "", nil
}

// DefaultCredentialPaths returns the credential file locations in lookup order.
func DefaultCredentialPaths() []string {
	var paths []string
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), credentialFileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".oreja", credentialFileName))
	}
	return paths
}

// GetAPIKey returns the API key from the environment, falling back to the
// first readable, non-empty credential file. The second result names the
// source for logging.
func GetAPIKey(credentialPaths ...string) (string, string, error) {
	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		return key, APIKeyEnv, nil
	}

	for _, path := range credentialPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", "", apperrors.WrapKind(apperrors.KindFilesystem, err, "read credential file")
		}
		if key := strings.TrimSpace(string(data)); key != "" {
			return key, path, nil
		}
	}

	return "", "", apperrors.ErrMissingAPIKey
}
