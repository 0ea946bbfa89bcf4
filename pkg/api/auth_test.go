package api

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/pkg/config"
)

// jwksTestServer serves the public half of a fresh RSA key as a JWKS
// document and returns the private key for signing test tokens.
func jwksTestServer(t *testing.T) (string, *rsa.PrivateKey) {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pub, err := jwk.FromRaw(&privateKey.PublicKey)
	require.NoError(t, err)
	require.NoError(t, pub.Set(jwk.KeyIDKey, "test-key-id"))
	require.NoError(t, pub.Set(jwk.AlgorithmKey, jwa.RS256))

	keyset := jwk.NewSet()
	require.NoError(t, keyset.AddKey(pub))
	doc, err := json.Marshal(keyset)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(doc)
	}))
	t.Cleanup(srv.Close)
	return srv.URL, privateKey
}

// signTestToken issues a signed JWT with the given registered claims.
func signTestToken(t *testing.T, privateKey *rsa.PrivateKey, subject, issuer, audience string, expires time.Time) string {
	t.Helper()

	builder := jwt.NewBuilder().
		IssuedAt(time.Now()).
		Expiration(expires)
	if subject != "" {
		builder = builder.Subject(subject)
	}
	if issuer != "" {
		builder = builder.Issuer(issuer)
	}
	if audience != "" {
		builder = builder.Audience([]string{audience})
	}
	token, err := builder.Build()
	require.NoError(t, err)

	key, err := jwk.FromRaw(privateKey)
	require.NoError(t, err)
	require.NoError(t, key.Set(jwk.KeyIDKey, "test-key-id"))

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.RS256, key))
	require.NoError(t, err)
	return string(signed)
}

// whoamiEngine wires the auth middleware in front of a probe endpoint.
func whoamiEngine(t *testing.T, cfg config.AuthConfig) *gin.Engine {
	t.Helper()

	auth, err := NewAuthenticator(context.Background(), cfg, nil)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(auth.Middleware())
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": userID(c), "internal": isInternal(c)})
	})
	return r
}

func whoami(t *testing.T, r *gin.Engine, mutate func(*http.Request)) (*httptest.ResponseRecorder, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body struct {
		User string `json:"user"`
	}
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body.User
}

func TestAuth_DisabledAssignsDevUser(t *testing.T) {
	r := whoamiEngine(t, config.AuthConfig{Enabled: false, DevUserID: "dev"})

	rec, user := whoami(t, r, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dev", user)
}

func TestAuth_JWKSRoundTrip(t *testing.T) {
	jwksURL, privateKey := jwksTestServer(t)

	const (
		issuer   = "https://issuer.test"
		audience = "switchyard"
	)
	r := whoamiEngine(t, config.AuthConfig{
		Enabled:  true,
		JWKSURL:  jwksURL,
		Issuer:   issuer,
		Audience: audience,
	})

	t.Run("valid token", func(t *testing.T) {
		token := signTestToken(t, privateKey, "user-123", issuer, audience, time.Now().Add(time.Hour))
		rec, user := whoami(t, r, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		})
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "user-123", user)
	})

	rejected := []struct {
		name  string
		token string
	}{
		{
			name:  "expired token",
			token: signTestToken(t, privateKey, "user-123", issuer, audience, time.Now().Add(-time.Hour)),
		},
		{
			name:  "wrong issuer",
			token: signTestToken(t, privateKey, "user-123", "https://evil.test", audience, time.Now().Add(time.Hour)),
		},
		{
			name:  "wrong audience",
			token: signTestToken(t, privateKey, "user-123", issuer, "other-service", time.Now().Add(time.Hour)),
		},
		{
			name:  "missing subject",
			token: signTestToken(t, privateKey, "", issuer, audience, time.Now().Add(time.Hour)),
		},
		{
			name:  "garbage token",
			token: "not-a-jwt",
		},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := whoami(t, r, func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			})
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "auth", errorKind(t, rec))
		})
	}

	t.Run("missing bearer token", func(t *testing.T) {
		rec, _ := whoami(t, r, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuth_InternalSecret(t *testing.T) {
	jwksURL, _ := jwksTestServer(t)

	r := whoamiEngine(t, config.AuthConfig{
		Enabled:        true,
		JWKSURL:        jwksURL,
		InternalSecret: "hunter2",
	})

	t.Run("matching secret authenticates as internal", func(t *testing.T) {
		rec, user := whoami(t, r, func(req *http.Request) {
			req.Header.Set("X-Internal-Auth", "hunter2")
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "internal", user)
	})

	t.Run("wrong secret is rejected outright", func(t *testing.T) {
		rec, _ := whoami(t, r, func(req *http.Request) {
			req.Header.Set("X-Internal-Auth", "hunter3")
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuth_StartupFailsOnBadJWKSURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	_, err := NewAuthenticator(context.Background(), config.AuthConfig{
		Enabled: true,
		JWKSURL: srv.URL,
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch JWKS")
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc123", "abc123", true},
		{"bearer abc123", "abc123", true},
		{"Basic dXNlcjpwYXNz", "", false},
		{"Bearer", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := bearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.want, got, tt.header)
	}
}
