package restclient

import (
	"sync"
	"time"

	"github.com/SscSPs/currency_admin/internal/utils"
)

// TokenSource supplies the bearer token sent with every request.
type TokenSource interface {
	Token() (string, error)
}

// StaticToken is a pre-issued token.
type StaticToken string

func (t StaticToken) Token() (string, error) {
	return string(t), nil
}

// JWTSource mints HS256 tokens with the store's shared secret and reuses
// each one until it is close to expiry.
type JWTSource struct {
	secret  string
	issuer  string
	subject string
	ttl     time.Duration

	mu      sync.Mutex
	token   string
	expires time.Time
}

// NewJWTSource creates a minting token source.
func NewJWTSource(secret, issuer, subject string, ttl time.Duration) *JWTSource {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &JWTSource{secret: secret, issuer: issuer, subject: subject, ttl: ttl}
}

func (s *JWTSource) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Until(s.expires) > time.Minute {
		return s.token, nil
	}
	token, err := utils.GenerateJWT(s.subject, s.secret, s.ttl, s.issuer)
	if err != nil {
		return "", err
	}
	s.token = token
	s.expires = time.Now().Add(s.ttl)
	return token, nil
}
