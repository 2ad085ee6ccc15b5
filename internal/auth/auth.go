// Package auth validates bearer tokens minted by the external identity
// provider. The service never creates accounts or issues tokens; it
// only checks claims and gates mutations on them.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the caller as seen by request handlers. Anonymous
// identities may read everything; only authenticated ones may mutate.
type Identity struct {
	UserID        string
	Email         string
	Authenticated bool
}

// Anonymous is the identity attached to requests without a valid token.
var Anonymous = Identity{}

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`

	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// ValidateToken parses and verifies an HS256 token string.
func (v *Verifier) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// GenerateToken signs a token for the given user. Exists for local
// development and tests; production tokens come from the identity
// provider sharing the same secret.
func (v *Verifier) GenerateToken(userID, email string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

type contextKey struct{}

// Middleware resolves the request's identity from the Authorization
// header. Requests without a token, or with an invalid one, proceed as
// anonymous; handlers that require identity reject them later.
func (v *Verifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident := Anonymous

		header := r.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			if claims, err := v.ValidateToken(token); err == nil && claims.UserID != "" {
				ident = Identity{
					UserID:        claims.UserID,
					Email:         claims.Email,
					Authenticated: true,
				}
			}
		}

		ctx := context.WithValue(r.Context(), contextKey{}, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the identity stored by Middleware, or Anonymous.
func FromContext(ctx context.Context) Identity {
	if ident, ok := ctx.Value(contextKey{}).(Identity); ok {
		return ident
	}
	return Anonymous
}
