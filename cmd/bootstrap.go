package main

import (
	"context"
	"fmt"

	"meettoken/internal/app/issuer"
	"meettoken/internal/app/keys"
	"meettoken/internal/configs"
)

// signer bundles the issuer with the public key set derived from the same key.
type signer struct {
	issuer *issuer.TokenIssuer
	jwks   keys.JWKS
}

// keySource maps the configured key location onto a keys.Source.
func keySource(ctx context.Context, cfg *configs.AppConfig) (keys.Source, error) {
	switch cfg.KeySource {
	case configs.KeySourceEnv:
		return keys.EnvSource{Name: "JAAS_PRIVATE_KEY", Value: cfg.KeyValue}, nil
	case configs.KeySourceFile:
		return keys.FileSource{Path: cfg.KeyValue}, nil
	case configs.KeySourceS3:
		bucket, key, err := keys.ParseS3URI(cfg.KeyValue)
		if err != nil {
			return nil, err
		}

		client, err := keys.NewS3Client(ctx, keys.S3Config{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}

		return keys.S3Source{Client: client, Bucket: bucket, Key: key}, nil
	default:
		return nil, fmt.Errorf("unknown key source %q", cfg.KeySource)
	}
}

// newSigner loads the signing key and builds the issuer. Every failure wraps
// issuer.ErrConfiguration.
func newSigner(ctx context.Context, cfg *configs.AppConfig) (*signer, error) {
	src, err := keySource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", issuer.ErrConfiguration, err)
	}

	key, err := keys.LoadSigningKey(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", issuer.ErrConfiguration, err)
	}

	tokenIssuer, err := issuer.New(issuer.Config{
		SigningKey: key,
		KeyID:      cfg.KeyID,
		AppID:      cfg.AppID,
		RoomScoped: cfg.RoomScoped,
	})
	if err != nil {
		return nil, err
	}

	return &signer{
		issuer: tokenIssuer,
		jwks:   keys.NewJWKS(cfg.KeyID, &key.PublicKey),
	}, nil
}
