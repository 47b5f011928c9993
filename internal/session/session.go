// Package session carries the authenticated caller's identity through
// collaborator calls, instead of a shared mutable current-user field.
package session

import (
	"time"

	"surveyhub/internal/utils"
)

// Session identifies one authenticated user. Values are immutable; a fresh
// login produces a fresh session.
type Session struct {
	Username   string
	IsAdmin    bool
	Token      string
	LoggedInAt time.Time
}

// New mints a session for an already-authenticated user.
func New(username string, isAdmin bool) (*Session, error) {
	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, err
	}
	return &Session{
		Username:   username,
		IsAdmin:    isAdmin,
		Token:      token,
		LoggedInAt: time.Now(),
	}, nil
}
