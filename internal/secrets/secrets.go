// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves credentials from a directory of plain-text files,
// a .env file, and the process environment. In the directory each file is one
// secret: the filename is the key name and the trimmed contents are the value.
package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// GeminiKeyFile is the secret file holding the Gemini API key.
const GeminiKeyFile = "gemini-api-key"

// GeminiKeyEnv lists the environment variables checked for the Gemini API
// key, in order.
var GeminiKeyEnv = []string{"GEMINI_API_KEY", "API_KEY"}

// Secrets maps secret names to values.
type Secrets map[string]string

// Load reads all files in dir. A missing directory is not an error and
// yields an empty set. Unreadable files are logged and skipped.
func Load(dir string, log zerolog.Logger) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Str("secret", name).Err(err).Msg("could not read secret")
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}
	return secrets, nil
}

// LoadEnvFile merges a .env file into the process environment. Variables
// already set are left alone. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Lookup returns the secret stored under file, falling back to the first
// non-empty environment variable in env.
func (s Secrets) Lookup(file string, env ...string) (string, bool) {
	if v := s[file]; v != "" {
		return v, true
	}
	for _, name := range env {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v, true
		}
	}
	return "", false
}

// GeminiAPIKey resolves the Gemini API key.
func (s Secrets) GeminiAPIKey() (string, bool) {
	return s.Lookup(GeminiKeyFile, GeminiKeyEnv...)
}
