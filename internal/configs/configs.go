/*
Package configs is responsible for loading and parsing the application's configuration settings.

Settings are read from operating system environment variables, optionally seeded from a
.env file in the working directory. Signing configuration that is missing or ambiguous
is reported as issuer.ErrConfiguration so the process exits before it starts serving.
*/
package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"meettoken/internal/app/issuer"
)

// KeySourceKind names where the signing key is read from.
type KeySourceKind string

const (
	KeySourceEnv  KeySourceKind = "env"
	KeySourceFile KeySourceKind = "file"
	KeySourceS3   KeySourceKind = "s3"
)

// AppConfig contains all configuration parameters required for the application to run.
// All configuration values are loaded from environment variables.
type AppConfig struct {
	// General Server Settings
	Environment string
	Port        int

	// Security Settings
	AllowedOrigins  []string
	TrustProxy      bool // take the client IP from X-Forwarded-For / X-Real-IP
	CallerJWTSecret string
	IssueRate       float64
	IssueBurst      int

	// Signing Settings
	KeySource  KeySourceKind
	KeyValue   string // raw key for env, path for file, URI for s3
	KeyID      string
	AppID      string
	RoomScoped bool

	// S3 Settings, used only with the s3 key source
	S3Endpoint        string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string

	// Observability Settings
	OTLPEndpoint string
}

// IsDevelopment reports whether the service runs in the development environment.
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// LoadConfig reads and parses the application configuration from environment variables.
// It provides default values for optional settings and returns an error for anything invalid.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env file: %w", err)
	}

	cfg := &AppConfig{}

	// --- General Server Settings ---
	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	port, err := intEnv("PORT", 3001)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", cfg.Port, 1024, 65535)
	}

	// --- Security Settings ---
	originsStr := os.Getenv("ALLOWED_ORIGINS")
	cfg.AllowedOrigins = []string{}
	for _, origin := range strings.Split(originsStr, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	if !cfg.IsDevelopment() && len(cfg.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("ALLOWED_ORIGINS environment variable is required in the %s environment", cfg.Environment)
	}

	if v := os.Getenv("TRUST_PROXY"); v != "" {
		cfg.TrustProxy, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TRUST_PROXY value %q", v)
		}
	}

	cfg.CallerJWTSecret = os.Getenv("CALLER_JWT_SECRET")

	rateStr := os.Getenv("ISSUE_RATE")
	if rateStr == "" {
		rateStr = "1"
	}
	cfg.IssueRate, err = strconv.ParseFloat(rateStr, 64)
	if err != nil || cfg.IssueRate <= 0 {
		return nil, fmt.Errorf("invalid ISSUE_RATE environment variable: %q", rateStr)
	}

	cfg.IssueBurst, err = intEnv("ISSUE_BURST", 10)
	if err != nil {
		return nil, err
	}
	if cfg.IssueBurst < 1 {
		return nil, fmt.Errorf("ISSUE_BURST must be at least 1, got %d", cfg.IssueBurst)
	}

	// --- Signing Settings ---
	if err := cfg.loadKeySource(); err != nil {
		return nil, err
	}

	cfg.KeyID = firstEnv("JAAS_KID", "JAAS_API_KEY_ID")
	if cfg.KeyID == "" {
		return nil, fmt.Errorf("%w: JAAS_KID environment variable is required", issuer.ErrConfiguration)
	}

	cfg.AppID = strings.TrimSpace(os.Getenv("JAAS_APP_ID"))
	if cfg.AppID == "" {
		return nil, fmt.Errorf("%w: JAAS_APP_ID environment variable is required", issuer.ErrConfiguration)
	}

	if v := os.Getenv("JAAS_ROOM_SCOPED"); v != "" {
		cfg.RoomScoped, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid JAAS_ROOM_SCOPED value %q", issuer.ErrConfiguration, v)
		}
	}

	// --- S3 Settings ---
	cfg.S3Endpoint = os.Getenv("S3_ENDPOINT")
	cfg.S3Region = os.Getenv("S3_REGION")
	cfg.S3AccessKeyID = os.Getenv("S3_ACCESS_KEY_ID")
	cfg.S3SecretAccessKey = os.Getenv("S3_SECRET_ACCESS_KEY")

	// --- Observability Settings ---
	cfg.OTLPEndpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")

	return cfg, nil
}

// loadKeySource picks exactly one of the signing key variables.
func (c *AppConfig) loadKeySource() error {
	candidates := []struct {
		kind KeySourceKind
		name string
	}{
		{KeySourceEnv, "JAAS_PRIVATE_KEY"},
		{KeySourceFile, "JAAS_PRIVATE_KEY_FILE"},
		{KeySourceS3, "JAAS_PRIVATE_KEY_S3_URI"},
	}

	var found []string
	for _, cand := range candidates {
		v := os.Getenv(cand.name)
		if strings.TrimSpace(v) == "" {
			continue
		}
		found = append(found, cand.name)
		c.KeySource = cand.kind
		c.KeyValue = v
	}

	switch len(found) {
	case 0:
		return fmt.Errorf("%w: one of JAAS_PRIVATE_KEY, JAAS_PRIVATE_KEY_FILE or JAAS_PRIVATE_KEY_S3_URI is required", issuer.ErrConfiguration)
	case 1:
		return nil
	default:
		return fmt.Errorf("%w: only one signing key source may be set, got %s", issuer.ErrConfiguration, strings.Join(found, ", "))
	}
}

func intEnv(name string, def int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", name, err)
	}
	return n, nil
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}
