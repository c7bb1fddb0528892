package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafif143/basket/internal/domain"
	"github.com/rafif143/basket/internal/dto"
	"github.com/rafif143/basket/internal/helper"
	"github.com/rafif143/basket/internal/repository"
	"github.com/rafif143/basket/internal/session"
)

type fakeAdminRepo struct {
	admins map[string]*domain.Admin
}

func (f *fakeAdminRepo) CreateAdmin(admin *domain.Admin) (*domain.Admin, error) {
	f.admins[admin.Email] = admin
	return admin, nil
}

func (f *fakeAdminRepo) FindAdminByEmail(email string) (*domain.Admin, error) {
	if a, ok := f.admins[email]; ok {
		return a, nil
	}
	return nil, repository.ErrNotFound
}

func newTestAuthService(t *testing.T) (AuthService, *session.Manager) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeAdminRepo{admins: map[string]*domain.Admin{
		"admin@itbyadika.ac.id": {
			ID:           1,
			Email:        "admin@itbyadika.ac.id",
			PasswordHash: string(hash),
			DisplayName:  "Admin UKM Basket",
		},
	}}

	sessions := session.NewManager(session.NewMemoryStore(), session.NewMemoryStore(), time.Now)
	return NewAuthService(repo, helper.SetupAuth("test-secret"), sessions), sessions
}

func TestLoginEstablishesSession(t *testing.T) {
	svc, sessions := newTestAuthService(t)

	resp, err := svc.Login(dto.AdminLogin{Email: "Admin@itbyadika.ac.id", Password: "rahasia123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@itbyadika.ac.id", resp.Username)
	assert.Equal(t, resp.LoginTime+session.Duration.Milliseconds(), resp.ExpiresAt)

	assert.True(t, sessions.IsAuthenticated())

	status := svc.SessionStatus()
	assert.True(t, status.Authenticated)
	assert.False(t, status.ExpiringSoon)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, sessions := newTestAuthService(t)

	_, err := svc.Login(dto.AdminLogin{Email: "admin@itbyadika.ac.id", Password: "salah"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, sessions.IsAuthenticated())
}

func TestLoginRejectsUnknownAdmin(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(dto.AdminLogin{Email: "nobody@itbyadika.ac.id", Password: "rahasia123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutClearsSession(t *testing.T) {
	svc, sessions := newTestAuthService(t)

	_, err := svc.Login(dto.AdminLogin{Email: "admin@itbyadika.ac.id", Password: "rahasia123"})
	require.NoError(t, err)

	svc.Logout()
	assert.False(t, sessions.IsAuthenticated())
	assert.False(t, svc.SessionStatus().Authenticated)
}

func TestExtendSessionRequiresLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)

	assert.False(t, svc.ExtendSession())

	_, err := svc.Login(dto.AdminLogin{Email: "admin@itbyadika.ac.id", Password: "rahasia123"})
	require.NoError(t, err)
	assert.True(t, svc.ExtendSession())
}
