// Package auth gates the admin surface behind a single shared identity.
// Credentials come from configuration at process start, never from source.
package auth

import (
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/telshop/backoffice/internal/config"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidSession     = errors.New("invalid_session")
	ErrSessionExpired     = errors.New("session_expired")
)

// Service validates the admin identity and tracks issued session tokens in
// memory. Tokens are opaque uuids with a sliding TTL; a process restart logs
// everyone out, which is acceptable for a single-admin tool.
type Service struct {
	user     string
	password string
	ttl      time.Duration
	log      *zap.Logger
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]time.Time
}

func New(cfg config.Config, log *zap.Logger) *Service {
	s := &Service{
		user:     cfg.AdminUser,
		password: cfg.AdminPassword,
		ttl:      cfg.SessionTTL,
		log:      log.Named("auth"),
		now:      time.Now,
		sessions: map[string]time.Time{},
	}
	if s.password == "" {
		s.log.Warn("ADMIN_PASSWORD is empty, all logins will be rejected")
	}
	return s
}

// Login checks the supplied credentials in constant time and issues a session
// token on success.
func (s *Service) Login(user, password string) (string, time.Time, error) {
	if s.password == "" {
		return "", time.Time{}, ErrInvalidCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(s.user)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token := uuid.NewString()
	expires := s.now().Add(s.ttl)

	s.mu.Lock()
	s.sessions[token] = expires
	s.mu.Unlock()

	s.log.Info("admin logged in")
	return token, expires, nil
}

// Authenticate validates a session token and slides its expiry.
func (s *Service) Authenticate(token string) error {
	if token == "" {
		return ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expires, ok := s.sessions[token]
	if !ok {
		return ErrInvalidSession
	}
	if s.now().After(expires) {
		delete(s.sessions, token)
		return ErrSessionExpired
	}
	s.sessions[token] = s.now().Add(s.ttl)
	return nil
}

// Logout revokes a session token; unknown tokens are a no-op.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
