package main

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meettoken/internal/app/issuer"
	"meettoken/internal/configs"
	"meettoken/internal/pkg/tracing"
)

const (
	testAppID = "vpaas-magic-cookie-cli"
	testKID   = "vpaas-magic-cookie-cli/kid1"
)

var testKey = func() *rsa.PrivateKey {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}
	return key
}()

var testPEM = string(pem.EncodeToMemory(&pem.Block{
	Type:  "RSA PRIVATE KEY",
	Bytes: x509.MarshalPKCS1PrivateKey(testKey),
}))

func baseConfig(kind configs.KeySourceKind, value string) *configs.AppConfig {
	return &configs.AppConfig{
		KeySource: kind,
		KeyValue:  value,
		KeyID:     testKID,
		AppID:     testAppID,
	}
}

func TestNewSigner_Sources(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "jaas.pem")
	require.NoError(t, os.WriteFile(keyFile, []byte(testPEM), 0o600))

	tests := []struct {
		name string
		cfg  *configs.AppConfig
	}{
		{name: "env", cfg: baseConfig(configs.KeySourceEnv, testPEM)},
		{name: "file", cfg: baseConfig(configs.KeySourceFile, keyFile)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := newSigner(context.Background(), tt.cfg)
			require.NoError(t, err)

			require.Len(t, s.jwks.Keys, 1)
			assert.Equal(t, testKID, s.jwks.Keys[0].Kid)

			issued, err := s.issuer.Issue(context.Background(), issuer.TokenRequest{RoomName: "demo-room", UserName: "Alice"})
			require.NoError(t, err)

			_, err = jwt.Parse(issued.Token, func(*jwt.Token) (interface{}, error) {
				return &testKey.PublicKey, nil
			})
			assert.NoError(t, err)
		})
	}
}

func TestNewSigner_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *configs.AppConfig
	}{
		{name: "garbage key", cfg: baseConfig(configs.KeySourceEnv, "not a key")},
		{name: "missing file", cfg: baseConfig(configs.KeySourceFile, filepath.Join(t.TempDir(), "absent.pem"))},
		{name: "bad s3 uri", cfg: baseConfig(configs.KeySourceS3, "https://bucket/key.pem")},
		{name: "unknown source", cfg: baseConfig("vault", "x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := newSigner(context.Background(), tt.cfg)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, issuer.ErrConfiguration)
		})
	}
}

func setSigningEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("TRUST_PROXY", "")
	t.Setenv("JAAS_PRIVATE_KEY", testPEM)
	t.Setenv("JAAS_PRIVATE_KEY_FILE", "")
	t.Setenv("JAAS_PRIVATE_KEY_S3_URI", "")
	t.Setenv("JAAS_KID", testKID)
	t.Setenv("JAAS_APP_ID", testAppID)
	t.Setenv("JAAS_ROOM_SCOPED", "")
	t.Setenv("PORT", "")
	t.Setenv("ISSUE_RATE", "")
	t.Setenv("ISSUE_BURST", "")
}

func TestIssueCommand(t *testing.T) {
	setSigningEnv(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"issue", "--room", "demo-room", "--name", "Alice", "--moderator", "--json"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	var body map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &body))
	assert.Equal(t, testAppID, body["appId"])
	assert.Equal(t, "demo-room", body["roomName"])
	assert.Equal(t, issuer.RoomWildcard, body["room"])

	claims := &issuer.Claims{}
	_, err := jwt.ParseWithClaims(body["token"], claims, func(*jwt.Token) (interface{}, error) {
		return &testKey.PublicKey, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", claims.Context.User.Name)
	assert.Equal(t, "true", claims.Context.User.Moderator)
}

func TestJWKSCommand(t *testing.T) {
	setSigningEnv(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"jwks"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), `"kid": "`+testKID+`"`)
	assert.Contains(t, out.String(), `"alg": "RS256"`)
}

func TestServeCommand_FlushesTracingOnConfigurationError(t *testing.T) {
	setSigningEnv(t)
	t.Setenv("JAAS_PRIVATE_KEY", "not a key")

	flushed := 0
	prev := setupTracing
	setupTracing = func(context.Context, string, string) (tracing.ShutdownFunc, error) {
		return func(context.Context) error {
			flushed++
			return nil
		}, nil
	}
	t.Cleanup(func() { setupTracing = prev })

	rootCmd.SetArgs([]string{"serve"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, issuer.ErrConfiguration)
	assert.Equal(t, 1, flushed)
}
