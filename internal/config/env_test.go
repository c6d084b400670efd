package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "oreja/internal/app/errors"
)

func TestGetAPIKey(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "api_key")
	require.NoError(t, os.WriteFile(keyFile, []byte("  sk-from-file-1234567890\n"), 0600))
	emptyFile := filepath.Join(dir, "empty_key")
	require.NoError(t, os.WriteFile(emptyFile, []byte("\n"), 0600))
	missingFile := filepath.Join(dir, "missing")

	testCases := []struct {
		name       string
		envKey     string
		paths      []string
		wantKey    string
		wantSource string
		wantErr    error
	}{
		{
			name:       "environment wins",
			envKey:     "sk-from-env-1234567890",
			paths:      []string{keyFile},
			wantKey:    "sk-from-env-1234567890",
			wantSource: APIKeyEnv,
		},
		{
			name:       "credential file fallback",
			paths:      []string{missingFile, keyFile},
			wantKey:    "sk-from-file-1234567890",
			wantSource: keyFile,
		},
		{
			name:       "empty file is skipped",
			paths:      []string{emptyFile, keyFile},
			wantKey:    "sk-from-file-1234567890",
			wantSource: keyFile,
		},
		{
			name:    "nothing configured",
			paths:   []string{missingFile},
			wantErr: apperrors.ErrMissingAPIKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(APIKeyEnv, tc.envKey)

			key, source, err := GetAPIKey(tc.paths...)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr))
				assert.True(t, apperrors.IsConfigError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantKey, key)
			assert.Equal(t, tc.wantSource, source)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	t.Setenv("OREJA_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("OREJA_TEST_VALUE"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OREJA_TEST_VALUE=from-dotenv\n"), 0600))

	loaded, err = LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "from-dotenv", os.Getenv("OREJA_TEST_VALUE"))
}

func TestDefaultCredentialPaths(t *testing.T) {
	paths := DefaultCredentialPaths()
	require.NotEmpty(t, paths)
	for _, p := range paths {
		assert.Equal(t, "api_key", filepath.Base(p))
	}
}
