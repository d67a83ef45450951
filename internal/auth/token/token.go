package token

import (
	"sync"
	"time"

	"fintrack-backend/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Service issues and checks the signed bearer credentials that identify a
// caller. Tokens are stateless HS256 JWTs; the only server-side state is the
// denylist of explicitly invalidated token IDs, kept until their natural
// expiry so the map cannot grow without bound.
type Service struct {
	secret []byte
	ttl    time.Duration

	mu       sync.Mutex
	denylist map[string]time.Time // jti -> expiry
}

func NewService(secret []byte, ttl time.Duration) *Service {
	return &Service{
		secret:   secret,
		ttl:      ttl,
		denylist: make(map[string]time.Time),
	}
}

// Issue mints a token for userID with a fresh expiry.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate checks signature, expiry and the denylist, and returns the user ID
// the token was issued for. It has no side effects and is safe for concurrent
// use.
func (s *Service) Validate(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}
	if s.isDenied(claims.ID) {
		return "", apperr.Authentication("invalid or expired token")
	}
	return claims.Subject, nil
}

// Invalidate marks the token unusable for all future validations (logout).
// Invalidating an already-invalidated or expired token is not an error.
func (s *Service) Invalidate(tokenString string) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, exp := range s.denylist {
		if exp.Before(now) {
			delete(s.denylist, id)
		}
	}
	s.denylist[claims.ID] = claims.ExpiresAt.Time
}

// Refresh trades a still-valid token for a new one bound to the same user.
// The presented token is invalidated; an expired or revoked token cannot be
// refreshed.
func (s *Service) Refresh(tokenString string) (string, error) {
	userID, err := s.Validate(tokenString)
	if err != nil {
		return "", err
	}
	s.Invalidate(tokenString)
	return s.Issue(userID)
}

func (s *Service) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apperr.Authentication("invalid or expired token")
	}
	return claims, nil
}

func (s *Service) isDenied(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.denylist[id]
	return ok
}
