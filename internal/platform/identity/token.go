package identity

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoPrincipal is returned whenever a request carries no usable identity:
// missing header, malformed token, bad signature, or expiry.
var ErrNoPrincipal = errors.New("no authenticated principal")

// Claims carries the principal id alongside the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// Authenticator resolves the authenticated principal from a request. The
// HTTP server treats any failure as a 401 before touching a handler.
type Authenticator interface {
	Authenticate(r *http.Request) (string, error)
}

// TokenAuthenticator verifies HS256 bearer tokens issued by the identity
// provider (or by IssueToken in tests and local runs).
type TokenAuthenticator struct {
	secret []byte
}

func NewTokenAuthenticator(secret []byte) *TokenAuthenticator {
	return &TokenAuthenticator{secret: secret}
}

func (a *TokenAuthenticator) IssueToken(userID string, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		UserID: userID,
	})
	return token.SignedString(a.secret)
}

func (a *TokenAuthenticator) Authenticate(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(raw) == "" {
		return "", ErrNoPrincipal
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return "", ErrNoPrincipal
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return "", ErrNoPrincipal
	}
	return claims.UserID, nil
}
