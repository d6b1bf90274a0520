package domain

import (
	"context"
	"time"
)

// Session is a stored admin login. TokenHash is the SHA-256 of the bearer
// token handed to the client; the raw token is never persisted.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"`
	UserAgent string    `json:"user_agent"`
	IP        string    `json:"ip"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      UserSummary `json:"user"`
}

// AdminSession is the authenticated identity attached to a request.
type AdminSession struct {
	Session *Session
	User    *AdminUser
	Token   string
}

type adminSessionKey struct{}

func WithAdminSession(ctx context.Context, s *AdminSession) context.Context {
	return context.WithValue(ctx, adminSessionKey{}, s)
}

func AdminSessionFromContext(ctx context.Context) (*AdminSession, bool) {
	s, ok := ctx.Value(adminSessionKey{}).(*AdminSession)
	return s, ok && s != nil
}
