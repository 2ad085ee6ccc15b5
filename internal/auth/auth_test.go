package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dsaprep/backend/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	v := auth.NewVerifier("test-secret")

	token, err := v.GenerateToken("user-1", "alice@example.com", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := v.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "alice@example.com" {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := auth.NewVerifier("secret-a").GenerateToken("user-1", "", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := auth.NewVerifier("secret-b").ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestValidateToken_WrongSigningMethod(t *testing.T) {
	claims := &auth.Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := auth.NewVerifier("test-secret").ValidateToken(token); err == nil {
		t.Fatal("expected a non-HS256 token to be rejected even with the right secret")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	v := auth.NewVerifier("test-secret")
	token, err := v.GenerateToken("user-1", "", -time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := v.ValidateToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestMiddleware(t *testing.T) {
	v := auth.NewVerifier("test-secret")
	token, err := v.GenerateToken("user-1", "alice@example.com", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	var seen auth.Identity
	handler := v.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.FromContext(r.Context())
	}))

	cases := []struct {
		name   string
		header string
		want   auth.Identity
	}{
		{
			name:   "valid token",
			header: "Bearer " + token,
			want:   auth.Identity{UserID: "user-1", Email: "alice@example.com", Authenticated: true},
		},
		{
			name:   "no header",
			header: "",
			want:   auth.Anonymous,
		},
		{
			name:   "malformed token",
			header: "Bearer not-a-jwt",
			want:   auth.Anonymous,
		},
		{
			name:   "wrong scheme",
			header: "Basic " + token,
			want:   auth.Anonymous,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seen = auth.Identity{UserID: "sentinel"}
			req := httptest.NewRequest(http.MethodGet, "/sheets", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if seen != tc.want {
				t.Errorf("expected identity %+v, got %+v", tc.want, seen)
			}
		})
	}
}

func TestFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := auth.FromContext(req.Context()); got != auth.Anonymous {
		t.Errorf("expected anonymous identity, got %+v", got)
	}
}
