package api

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/switchyard-ai/switchyard/pkg/config"
)

const (
	userIDKey = "user_id"

	// internalAuthHeader carries the shared secret for trusted
	// service-to-service calls that bypass JWT validation.
	internalAuthHeader = "X-Internal-Auth"

	// internalUserID is the identity assigned to internal callers.
	internalUserID = "internal"

	// jwksMinRefresh is the floor for JWKS re-fetching; providers rotate
	// keys far less often than this.
	jwksMinRefresh = time.Hour
)

// Authenticator validates request identity. With auth enabled it
// verifies bearer JWTs against a cached JWKS document and accepts the
// internal shared secret; disabled, it assigns the configured dev user.
type Authenticator struct {
	cfg    config.AuthConfig
	cache  *jwk.Cache
	logger *slog.Logger
}

// NewAuthenticator builds the authenticator. With auth enabled it
// registers the JWKS URL for hourly refresh and performs an initial
// fetch so a bad URL fails startup instead of every request.
func NewAuthenticator(ctx context.Context, cfg config.AuthConfig, logger *slog.Logger) (*Authenticator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Authenticator{
		cfg:    cfg,
		logger: logger.With("component", "auth"),
	}
	if !cfg.Enabled {
		return a, nil
	}

	cache := jwk.NewCache(ctx)
	if err := cache.Register(cfg.JWKSURL, jwk.WithMinRefreshInterval(jwksMinRefresh)); err != nil {
		return nil, fmt.Errorf("failed to register JWKS URL: %w", err)
	}
	if _, err := cache.Refresh(ctx, cfg.JWKSURL); err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS from %s: %w", cfg.JWKSURL, err)
	}

	a.cache = cache
	return a, nil
}

// Middleware authenticates the request and stores the resolved user id
// in the gin context for handlers to read via userID.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.cfg.Enabled {
			c.Set(userIDKey, a.cfg.DevUserID)
			c.Next()
			return
		}

		// Internal callers present the shared secret instead of a JWT.
		if secret := c.GetHeader(internalAuthHeader); secret != "" {
			if a.cfg.InternalSecret != "" &&
				subtle.ConstantTimeCompare([]byte(secret), []byte(a.cfg.InternalSecret)) == 1 {
				c.Set(userIDKey, internalUserID)
				c.Next()
				return
			}
			a.abortUnauthorized(c, "invalid internal auth secret")
			return
		}

		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			a.abortUnauthorized(c, "missing bearer token")
			return
		}

		sub, err := a.validate(c.Request.Context(), raw)
		if err != nil {
			a.logger.Warn("token rejected", "error", err, "request_id", requestIDFrom(c))
			a.abortUnauthorized(c, "invalid token")
			return
		}

		c.Set(userIDKey, sub)
		c.Next()
	}
}

// validate checks signature, expiry, and the configured issuer and
// audience, returning the token subject.
func (a *Authenticator) validate(ctx context.Context, raw string) (string, error) {
	keyset, err := a.cache.Get(ctx, a.cfg.JWKSURL)
	if err != nil {
		return "", fmt.Errorf("failed to get JWKS: %w", err)
	}

	opts := []jwt.ParseOption{
		jwt.WithKeySet(keyset),
		jwt.WithValidate(true),
	}
	if a.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.cfg.Issuer))
	}
	if a.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(a.cfg.Audience))
	}

	token, err := jwt.Parse([]byte(raw), opts...)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if token.Subject() == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return token.Subject(), nil
}

func (a *Authenticator) abortUnauthorized(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, newErrorResponse("auth", detail))
}

// bearerToken extracts the token from an Authorization header.
func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}

// userID returns the identity the auth middleware resolved for this
// request. Empty when no authenticator is installed.
func userID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// isInternal reports whether the request authenticated with the shared
// secret. Internal callers are not subject to session ownership checks.
func isInternal(c *gin.Context) bool {
	return userID(c) == internalUserID
}
