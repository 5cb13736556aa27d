package keys

import (
	"context"
	"crypto/rsa"
	"fmt"
	"os"
)

// Source yields raw signing key material. Implementations are used once at startup.
type Source interface {
	// Load returns the raw key bytes.
	Load(ctx context.Context) ([]byte, error)

	// Describe names the source for logs without revealing the key.
	Describe() string
}

// EnvSource holds key material read from the environment.
type EnvSource struct {
	Name  string
	Value string
}

func (s EnvSource) Load(_ context.Context) ([]byte, error) {
	if s.Value == "" {
		return nil, ErrEmptyKey
	}
	return []byte(s.Value), nil
}

func (s EnvSource) Describe() string {
	return "env:" + s.Name
}

// FileSource reads key material from a local file, e.g. a mounted secret.
type FileSource struct {
	Path string
}

func (s FileSource) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading signing key file: %w", err)
	}
	return data, nil
}

func (s FileSource) Describe() string {
	return "file:" + s.Path
}

// LoadSigningKey loads and parses the private key from src.
func LoadSigningKey(ctx context.Context, src Source) (*rsa.PrivateKey, error) {
	raw, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading signing key from %s: %w", src.Describe(), err)
	}

	key, err := ParsePrivateKey(raw)
	if err != nil {
		return nil, fmt.Errorf("signing key from %s: %w", src.Describe(), err)
	}

	return key, nil
}
