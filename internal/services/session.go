package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrBadCredentials is returned when the admin login does not match.
var ErrBadCredentials = errors.New("invalid credentials")

// ErrInvalidSession is returned for missing, malformed, or expired tokens.
var ErrInvalidSession = errors.New("invalid session token")

// SessionService issues and validates admin session tokens. Sessions are
// signed HS256 JWTs validated per request; there is no process-wide logged-in
// flag.
type SessionService struct {
	username string
	password string
	secret   []byte
	ttl      time.Duration
}

// NewSessionService reads the admin credentials and signing secret from the
// environment. All three variables are required.
func NewSessionService() (*SessionService, error) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	secret := os.Getenv("ADMIN_JWT_SECRET")

	if username == "" || password == "" || secret == "" {
		return nil, fmt.Errorf("missing admin credentials in environment variables")
	}

	return &SessionService{
		username: username,
		password: password,
		secret:   []byte(secret),
		ttl:      12 * time.Hour,
	}, nil
}

// Login checks the credentials and returns a signed session token.
func (s *SessionService) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", ErrBadCredentials
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": s.username,
		"exp": now.Add(s.ttl).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a session token.
func (s *SessionService) Validate(raw string) error {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidSession
	}
	return nil
}
