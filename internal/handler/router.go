/*
Package handler provides the HTTP handlers and routing setup for the meeting token service.

This file defines the main Router, applying middleware like logging, CORS, metrics
and IP-based rate limiting before delegating requests to the token handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"meettoken/internal/pkg/auth/jwt"
	"meettoken/internal/pkg/limiter"
	"meettoken/internal/pkg/logx"
	"meettoken/internal/pkg/metrics"
	"meettoken/internal/pkg/resp"
)

// IssuePaths lists every route that mints a token. Each one was used by a
// different generation of the claims web app and they all behave identically.
var IssuePaths = []string{
	"/generate-jwt",
	"/token",
	"/jaas/token",
	"/jaas/8x8-token",
	"/jaas-jwt/token",
}

// Router sets up the main HTTP routing table (chi.Router) for the application.
// When deps.IssueLimiter is nil a limiter is built from the configured issue rate;
// the caller then cannot stop its cleanup goroutine, so servers should pass their own.
func Router(deps *AppDeps) http.Handler {
	issueLimiter := deps.IssueLimiter
	if issueLimiter == nil {
		issueLimiter = limiter.NewIPRateLimiter(rate.Limit(deps.Config.IssueRate), deps.Config.IssueBurst)
	}

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	corsOptions := cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if len(corsAllowedOrigins) == 0 {
		// rs/cors treats an empty origin list as "allow all"
		corsOptions.AllowOriginFunc = func(string) bool { return false }
	}
	r.Use(cors.New(corsOptions).Handler)

	r.Use(middleware.RequestID)
	if deps.Config.TrustProxy {
		// forwarding headers are client controlled unless a proxy overwrites them
		r.Use(middleware.RealIP)
	}
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]string{
			"status":  "ok",
			"service": "meettoken",
		})
	})

	r.Get("/.well-known/jwks.json", HandleJWKS(deps))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Group(func(issue chi.Router) {
		issue.Use(issueLimiter.Middleware)
		issue.Use(jwt.RequireCaller(deps.Config.CallerJWTSecret))

		handleIssue := HandleIssueToken(deps)
		for _, path := range IssuePaths {
			issue.Post(path, handleIssue)
		}
	})

	return r
}
