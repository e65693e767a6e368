package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"preparos/internal/shared/authorization"
	"preparos/internal/shared/biztime"
)

// Session is a signed-in session. Tokens are only accepted while their
// session exists in the store.
type Session struct {
	ID        string                 `json:"id"`
	UserID    uuid.UUID              `json:"user_id"`
	Role      authorization.UserRole `json:"role"`
	IPAddress string                 `json:"ip_address"`
	UserAgent string                 `json:"user_agent"`
	ExpiresAt time.Time              `json:"expires_at"`
	CreatedAt time.Time              `json:"created_at"`
}

func NewSession(userID uuid.UUID, role authorization.UserRole, ipAddress, userAgent string, ttl time.Duration) (*Session, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user ID is required")
	}
	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}
	now := biztime.NowUTC()
	return &Session{
		ID:        id,
		UserID:    userID,
		Role:      role,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}, nil
}

func (s *Session) IsExpired() bool {
	return biztime.NowUTC().After(s.ExpiresAt)
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	// Get returns a not found error once the session expired or was deleted.
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
