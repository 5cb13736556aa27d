/*
Package issuer mints signed meeting-access tokens.

A TokenIssuer is built once from an immutable Config holding the RSA signing key,
the key identifier (kid) and the application identifier. Each call to Issue is
independent: it validates the request, builds the claim set from a single clock
reading and signs it with RS256. The issuer never stores, sends or verifies tokens.
*/
package issuer

import (
	"context"
	"crypto/rsa"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"meettoken/internal/app/keys"
	"meettoken/internal/pkg/logx"
	"meettoken/internal/pkg/randx"
)

const (
	// TokenLifetime is how long a token stays valid after issuance.
	TokenLifetime = 3 * time.Hour

	// NotBeforeSkew backdates nbf to tolerate clock drift on the verifier.
	NotBeforeSkew = 10 * time.Second
)

// Config is the signing configuration. It is read once by New and never mutated.
type Config struct {
	// SigningKey is the RSA private key. Required.
	SigningKey *rsa.PrivateKey

	// KeyID is placed in the token header so the verifier can select the public key. Required.
	KeyID string

	// AppID is the tenant namespace, emitted as the sub claim. Required.
	AppID string

	// RoomScoped restricts tokens to the requested room instead of the "*" wildcard.
	RoomScoped bool

	// Now overrides the clock. Defaults to time.Now.
	Now func() time.Time

	// NewID overrides the user id generator. Defaults to randx.UserID.
	NewID func() string
}

// IssuedToken is the result of a successful Issue call.
type IssuedToken struct {
	// Token is the signed compact JWT. Callers must treat it as opaque.
	Token string

	AppID     string
	RoomName  string
	Room      string
	UserID    string
	NotBefore time.Time
	ExpiresAt time.Time
}

// TokenIssuer signs meeting tokens. It is safe for concurrent use.
type TokenIssuer struct {
	key        *rsa.PrivateKey
	kid        string
	appID      string
	roomScoped bool

	now    func() time.Time
	newID  func() string
	method jwt.SigningMethod
	tracer trace.Tracer
}

// New validates cfg and returns a ready issuer. Every failure wraps ErrConfiguration.
func New(cfg Config) (*TokenIssuer, error) {
	if cfg.SigningKey == nil {
		return nil, fmt.Errorf("%w: signing key is missing", ErrConfiguration)
	}
	if cfg.SigningKey.N == nil || cfg.SigningKey.N.BitLen() < keys.MinKeyBits {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, keys.ErrKeyTooSmall)
	}
	if err := cfg.SigningKey.Validate(); err != nil {
		return nil, fmt.Errorf("%w: signing key is invalid: %v", ErrConfiguration, err)
	}
	if strings.TrimSpace(cfg.KeyID) == "" {
		return nil, fmt.Errorf("%w: key id is missing", ErrConfiguration)
	}
	if strings.TrimSpace(cfg.AppID) == "" {
		return nil, fmt.Errorf("%w: app id is missing", ErrConfiguration)
	}

	i := &TokenIssuer{
		key:        cfg.SigningKey,
		kid:        cfg.KeyID,
		appID:      cfg.AppID,
		roomScoped: cfg.RoomScoped,
		now:        cfg.Now,
		newID:      cfg.NewID,
		method:     jwt.SigningMethodRS256,
		tracer:     otel.Tracer("meettoken/issuer"),
	}

	if i.now == nil {
		i.now = time.Now
	}
	if i.newID == nil {
		i.newID = randx.UserID
	}

	logx.Info("Token issuer ready",
		"kid", i.kid,
		"app_id", i.appID,
		"room_scoped", i.roomScoped,
	)

	return i, nil
}

// AppID returns the configured application identifier.
func (i *TokenIssuer) AppID() string {
	return i.appID
}

// Issue validates req and returns a freshly signed token.
// It returns either a token or an error wrapping ErrValidation or ErrSigning, never both.
func (i *TokenIssuer) Issue(ctx context.Context, req TokenRequest) (*IssuedToken, error) {
	ctx, span := i.tracer.Start(ctx, "issuer.Issue")
	defer span.End()

	req = req.Normalize()
	if err := req.Validate(); err != nil {
		span.SetStatus(codes.Error, "invalid request")
		return nil, err
	}

	now := i.now()
	notBefore := now.Add(-NotBeforeSkew)
	expiresAt := now.Add(TokenLifetime)

	room := RoomWildcard
	if i.roomScoped {
		room = req.RoomName
	}

	userID := i.newID()

	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Audience:  Audience,
			Issuer:    Issuer,
			Subject:   i.appID,
			NotBefore: notBefore.Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
		Context: ClaimsContext{
			User: UserClaims{
				ID:        userID,
				Name:      req.UserName,
				Avatar:    req.Avatar,
				Email:     req.UserEmail,
				Moderator: boolClaim(req.IsModerator),
			},
			Features: allFeatures(),
		},
		Room: room,
	}

	token := jwt.NewWithClaims(i.method, claims)
	token.Header["kid"] = i.kid

	signed, err := token.SignedString(i.key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "signing failed")
		return nil, fmt.Errorf("%w: %v", ErrSigning, err)
	}

	span.SetAttributes(
		attribute.String("meeting.room", req.RoomName),
		attribute.Bool("meeting.moderator", req.IsModerator),
	)

	logx.Ctx(ctx).Info().
		Str("room", req.RoomName).
		Str("room_scope", room).
		Bool("moderator", req.IsModerator).
		Str("kid", i.kid).
		Time("expires_at", expiresAt).
		Msg("Meeting token issued")

	return &IssuedToken{
		Token:     signed,
		AppID:     i.appID,
		RoomName:  req.RoomName,
		Room:      room,
		UserID:    userID,
		NotBefore: time.Unix(notBefore.Unix(), 0),
		ExpiresAt: time.Unix(expiresAt.Unix(), 0),
	}, nil
}
