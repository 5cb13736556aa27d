package keys

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = mustGenerateKey(2048)

func mustGenerateKey(bits int) *rsa.PrivateKey {
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		panic(err)
	}
	return key
}

func pkcs1PEM(key *rsa.PrivateKey) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
}

func pkcs8PEM(t *testing.T, key any) []byte {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
}

// pemBody strips the armor lines, leaving what the JaaS console shows.
func pemBody(doc []byte) string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(string(doc)), "\n") {
		if !strings.HasPrefix(line, "-----") {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func TestParsePrivateKey_Formats(t *testing.T) {
	p8 := pkcs8PEM(t, testKey)

	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "pkcs1 pem", raw: pkcs1PEM(testKey)},
		{name: "pkcs8 pem", raw: p8},
		{name: "pem with escaped newlines", raw: []byte(strings.ReplaceAll(string(p8), "\n", `\n`))},
		{name: "quoted pem", raw: []byte(`"` + string(p8) + `"`)},
		{name: "bare body", raw: []byte(pemBody(p8))},
		{name: "bare body single line", raw: []byte(strings.ReplaceAll(pemBody(p8), "\n", ""))},
		{name: "base64 encoded pem", raw: []byte(base64.StdEncoding.EncodeToString(p8))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParsePrivateKey(tt.raw)
			require.NoError(t, err)
			assert.True(t, key.Equal(testKey))
		})
	}
}

func TestParsePrivateKey_Rejects(t *testing.T) {
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tests := []struct {
		name    string
		raw     []byte
		wantErr error
	}{
		{name: "empty", raw: nil, wantErr: ErrEmptyKey},
		{name: "whitespace", raw: []byte("  \n "), wantErr: ErrEmptyKey},
		{name: "small key", raw: pkcs1PEM(mustGenerateKey(1024)), wantErr: ErrKeyTooSmall},
		{name: "ecdsa key", raw: pkcs8PEM(t, ecKey)},
		{name: "not base64", raw: []byte("this is not a key!")},
		{name: "base64 garbage", raw: []byte(base64.StdEncoding.EncodeToString([]byte("garbage")))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParsePrivateKey(tt.raw)
			require.Error(t, err)
			assert.Nil(t, key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewJWKS(t *testing.T) {
	set := NewJWKS("vpaas-magic-cookie-abc/4f4910", &testKey.PublicKey)
	require.Len(t, set.Keys, 1)

	jwk := set.Keys[0]
	assert.Equal(t, "RSA", jwk.Kty)
	assert.Equal(t, "RS256", jwk.Alg)
	assert.Equal(t, "sig", jwk.Use)
	assert.Equal(t, "vpaas-magic-cookie-abc/4f4910", jwk.Kid)
	assert.Equal(t, "AQAB", jwk.E)

	n, err := base64.RawURLEncoding.DecodeString(jwk.N)
	require.NoError(t, err)
	assert.Equal(t, testKey.N.Bytes(), n)
}
