package identity

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestJWTVerifier(t *testing.T) {
	v := NewJWTVerifier("test-secret")

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "user-42"))

	id, err := v.Verify(r)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if id.UserID != "user-42" {
		t.Errorf("userID = %q, want user-42", id.UserID)
	}
}

func TestJWTVerifierRejects(t *testing.T) {
	v := NewJWTVerifier("test-secret")

	tests := []struct {
		name string
		auth string
	}{
		{name: "missing header", auth: ""},
		{name: "not bearer", auth: "Basic abc"},
		{name: "wrong secret", auth: "Bearer " + signToken(t, "other-secret", "user-42")},
		{name: "garbage token", auth: "Bearer not.a.token"},
		{name: "no subject", auth: "Bearer " + signToken(t, "test-secret", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tt.auth != "" {
				r.Header.Set("Authorization", tt.auth)
			}
			_, err := v.Verify(r)
			if !errors.Is(err, ErrUnauthorized) {
				t.Fatalf("err = %v, want ErrUnauthorized", err)
			}
		})
	}
}

func TestJWTVerifierRejectsExpired(t *testing.T) {
	v := NewJWTVerifier("test-secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+signed)
	if _, err := v.Verify(r); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestDevVerifier(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-User-ID", "local-dev")

	id, err := DevVerifier{}.Verify(r)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if id.UserID != "local-dev" {
		t.Errorf("userID = %q", id.UserID)
	}

	if _, err := (DevVerifier{}).Verify(httptest.NewRequest("GET", "/", nil)); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}
