package session

import (
	"time"

	"ella-rises-admin/core/constants"

	"github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Session is the authenticated principal snapshot stored server-side for the
// lifetime of a browser session. The role here is the role at login time;
// manager edits revoke the affected account's sessions.
type Session struct {
	ID       string `json:"id"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

func (s *Session) IsElevated() bool {
	return s.Role == constants.RoleManager || s.Role == constants.RoleAdmin
}

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// NewID generates the opaque session identifier the cookie references.
func NewID() (string, error) {
	return gonanoid.Generate(idAlphabet, constants.SessionIDLength)
}

type cookieClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

// SignCookie wraps the session identifier in a signed token so a tampered
// cookie is rejected before the store is ever consulted.
func SignCookie(sid, secret string) (string, error) {
	claims := cookieClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(constants.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseCookie verifies the cookie token and returns the session identifier.
func ParseCookie(value, secret string) (string, error) {
	claims := &cookieClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	return claims.SID, nil
}
