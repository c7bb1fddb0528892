package services

import (
	"errors"
	"strings"

	"github.com/rafif143/basket/internal/dto"
	"github.com/rafif143/basket/internal/helper"
	"github.com/rafif143/basket/internal/repository"
	"github.com/rafif143/basket/internal/session"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Login(input dto.AdminLogin) (*dto.LoginResponse, error)
	Logout()
	ExtendSession() bool
	SessionStatus() dto.SessionStatus
}

type authService struct {
	repo     repository.AdminRepository
	auth     helper.Auth
	sessions *session.Manager
}

func NewAuthService(repo repository.AdminRepository, auth helper.Auth, sessions *session.Manager) AuthService {
	return &authService{
		repo:     repo,
		auth:     auth,
		sessions: sessions,
	}
}

func (s *authService) Login(input dto.AdminLogin) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	admin, err := s.repo.FindAdminByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.auth.VerifyPassword(input.Password, admin.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return nil, err
	}

	sess := s.sessions.Establish(token, admin.Email)

	return &dto.LoginResponse{
		Token:     token,
		Username:  sess.Username,
		LoginTime: sess.LoginTime,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

func (s *authService) Logout() {
	s.sessions.Logout()
}

func (s *authService) ExtendSession() bool {
	return s.sessions.Extend()
}

func (s *authService) SessionStatus() dto.SessionStatus {
	sess, ok := s.sessions.Current()
	if !ok {
		return dto.SessionStatus{Authenticated: false}
	}

	return dto.SessionStatus{
		Authenticated: true,
		Username:      sess.Username,
		ExpiresAt:     sess.ExpiresAt,
		ExpiringSoon:  s.sessions.ExpiringSoon(),
	}
}
