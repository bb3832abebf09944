// Package identity verifies request credentials and resolves the user id.
// It is the thinnest possible boundary: verify in, user id out.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthorized is returned for missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// Identity is the verified principal.
type Identity struct {
	UserID string
}

// Verifier authenticates one request.
type Verifier interface {
	Verify(r *http.Request) (*Identity, error)
}

// JWTVerifier validates HS256 bearer tokens and reads the user id from
// the subject claim.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier builds a verifier for the given signing secret.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(r *http.Request) (*Identity, error) {
	raw, err := bearerToken(r)
	if err != nil {
		return nil, err
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", ErrUnauthorized)
	}
	return &Identity{UserID: claims.Subject}, nil
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("%w: missing Authorization header", ErrUnauthorized)
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", fmt.Errorf("%w: malformed Authorization header", ErrUnauthorized)
	}
	return token, nil
}

// DevVerifier trusts an X-User-ID header. Local development only; wired
// when no JWT secret is configured.
type DevVerifier struct{}

func (DevVerifier) Verify(r *http.Request) (*Identity, error) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		return nil, fmt.Errorf("%w: missing X-User-ID header", ErrUnauthorized)
	}
	return &Identity{UserID: userID}, nil
}

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity attaches the verified principal to the context.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// FromContext returns the verified principal, or nil.
func FromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey).(*Identity)
	return id
}
