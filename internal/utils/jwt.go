package utils // package utils provides helper functions for token creation and verification

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the serialized JWT string.  Exp stores the UTC
// expiration timestamp.  Access tokens are short-lived and carried in the
// Authorization header when calling protected endpoints.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// ErrInvalidToken is returned by VerifyAccessToken for any token that
// fails signature, structure or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the username and a TTL in minutes, and returns an
// AccessToken containing the signed token and its expiration time.  The
// claims carry the username under "name" plus the standard exp and iat.
func NewAccessToken(secret, username string, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"name": username,
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// VerifyAccessToken parses and validates a raw token string and returns
// the embedded username.  Tokens signed with an unexpected method, with a
// bad signature, expired, or missing the name claim all yield
// ErrInvalidToken; the caller only needs to distinguish valid from not.
func VerifyAccessToken(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Type assert the signing method to HMAC; reject others.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	name, ok := claims["name"].(string)
	if !ok || name == "" {
		return "", ErrInvalidToken
	}
	return name, nil
}
