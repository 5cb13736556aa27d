package handler

import (
	"context"

	"meettoken/internal/app/issuer"
	"meettoken/internal/app/keys"
	"meettoken/internal/configs"
	"meettoken/internal/pkg/limiter"
)

// TokenIssuer is the part of issuer.TokenIssuer the HTTP layer depends on.
type TokenIssuer interface {
	Issue(ctx context.Context, req issuer.TokenRequest) (*issuer.IssuedToken, error)
}

type AppDeps struct {
	Config       *configs.AppConfig
	Issuer       TokenIssuer
	JWKS         keys.JWKS
	IssueLimiter *limiter.IPRateLimiter
}
