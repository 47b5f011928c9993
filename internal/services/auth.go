package services

import (
	"errors"

	"go.uber.org/zap"

	"surveyhub/internal/repository"
	"surveyhub/internal/session"
	"surveyhub/internal/utils"
)

// Input validation failures surfaced by registration.
var (
	ErrInvalidUsername    = errors.New("username must be 3-32 letters, digits or underscores")
	ErrWeakPassword       = errors.New("password must be at least 6 characters with a letter and a digit")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService orchestrates registration and login on top of the user store.
type AuthService struct {
	log *zap.Logger
}

func NewAuthService(log *zap.Logger) *AuthService {
	return &AuthService{log: log}
}

// Register validates the credentials' shape and creates the account.
func (s *AuthService) Register(username, password string) (int, error) {
	if !utils.IsValidUsername(username) {
		return 0, ErrInvalidUsername
	}
	if !utils.IsStrongPassword(password) {
		return 0, ErrWeakPassword
	}

	id, err := repository.Register(username, password, false)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			s.log.Info("Registration rejected, username taken", zap.String("username", username))
		} else {
			s.log.Error("Registration failed", zap.String("username", username), zap.Error(err))
		}
		return 0, err
	}

	s.log.Info("User registered", zap.String("username", username), zap.Int("id", id))
	return id, nil
}

// Login checks the credentials and mints a session on success.
func (s *AuthService) Login(username, password string) (*session.Session, error) {
	ok, err := repository.ValidateLogin(username, password)
	if err != nil {
		s.log.Error("Login check failed", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	if !ok {
		s.log.Info("Login rejected", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	isAdmin, err := repository.IsAdmin(username)
	if err != nil {
		return nil, err
	}

	sess, err := session.New(username, isAdmin)
	if err != nil {
		return nil, err
	}
	s.log.Info("User logged in", zap.String("username", username), zap.Bool("admin", isAdmin))
	return sess, nil
}
