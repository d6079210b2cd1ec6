package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	pepperMu   sync.Mutex
	pepper     string
	pepperFile = "pepper"
)

// SetPepperPath sets the file the pepper is loaded from (or written to on
// first use). It drops any pepper already cached in memory.
func SetPepperPath(file string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	pepperFile = file
	pepper = ""
}

// Pepper returns the process-wide pepper, loading or generating it on first use.
// The process exits if the pepper file cannot be read or written.
func Pepper() string {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	if pepper != "" {
		return pepper
	}

	p, err := LoadOrGenerateSecret(pepperFile, keyLength)
	if err != nil {
		slog.Error("failed to load or generate pepper", slog.Any("err", err))
		os.Exit(1)
	}
	pepper = p

	return pepper
}

// LoadOrGenerateSecret reads a secret from file. When the file does not exist
// a new base64url secret of size random bytes is generated and written with
// 0600 permissions, creating parent directories as needed.
func LoadOrGenerateSecret(file string, size int) (string, error) {
	if file == "" {
		return "", errors.New("cryptox: empty secret path")
	}

	file = filepath.Clean(file)
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return "", fmt.Errorf("create secret dir: %w", err)
	}

	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("cryptox: secret file %s is empty", file)
		}
		return secret, nil

	case errors.Is(err, os.ErrNotExist):
		secret, err := randomSecret(size)
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(file, []byte(secret), 0600); err != nil {
			return "", fmt.Errorf("write secret: %w", err)
		}
		return secret, nil

	default:
		return "", fmt.Errorf("read secret: %w", err)
	}
}

// DecodeSecret returns the raw bytes of a base64url secret produced by
// LoadOrGenerateSecret. Secrets that are not base64url are used verbatim.
func DecodeSecret(secret string) []byte {
	if b, err := base64.RawURLEncoding.DecodeString(secret); err == nil && len(b) > 0 {
		return b
	}
	return []byte(secret)
}

// randomSecret returns size bytes from crypto/rand, base64url encoded without padding.
func randomSecret(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("cryptox: secret size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptox: read random: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
