package api

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafif143/basket/config"
	"github.com/rafif143/basket/internal/domain"
	"github.com/rafif143/basket/internal/dto"
	"github.com/rafif143/basket/internal/helper"
	"github.com/rafif143/basket/internal/repository"
	"github.com/rafif143/basket/internal/services"
	"github.com/rafif143/basket/internal/session"
)

type stubAdminRepo struct {
	admins map[string]*domain.Admin
}

func (f *stubAdminRepo) CreateAdmin(admin *domain.Admin) (*domain.Admin, error) {
	admin.ID = uint(len(f.admins) + 1)
	f.admins[admin.Email] = admin
	return admin, nil
}

func (f *stubAdminRepo) FindAdminByEmail(email string) (*domain.Admin, error) {
	if a, ok := f.admins[email]; ok {
		return a, nil
	}
	return nil, repository.ErrNotFound
}

func TestCorsConfigWildcardOriginDropsCredentials(t *testing.T) {
	c := corsConfig("*")
	assert.Equal(t, "*", c.AllowOrigins)
	assert.False(t, c.AllowCredentials)

	// the default BASE_URL must not crash middleware setup
	assert.NotPanics(t, func() { cors.New(c) })
}

func TestCorsConfigConcreteOriginAllowsCredentials(t *testing.T) {
	c := corsConfig("https://basket.itbyadika.ac.id")
	assert.True(t, c.AllowCredentials)
	assert.NotPanics(t, func() { cors.New(c) })
}

func TestSeedAdminNormalizesEmail(t *testing.T) {
	repo := &stubAdminRepo{admins: map[string]*domain.Admin{}}

	seedAdmin(repo, config.Config{
		AdminEmail:    " Admin@ItbYadika.ac.id ",
		AdminPassword: "rahasia123",
		AdminName:     "Admin UKM Basket",
	})

	admin, err := repo.FindAdminByEmail("admin@itbyadika.ac.id")
	require.NoError(t, err)
	assert.Equal(t, "admin@itbyadika.ac.id", admin.Email)
	assert.NotEmpty(t, admin.PasswordHash)
}

func TestSeedAdminIdempotentAcrossCasing(t *testing.T) {
	repo := &stubAdminRepo{admins: map[string]*domain.Admin{}}

	seedAdmin(repo, config.Config{AdminEmail: "admin@itbyadika.ac.id", AdminPassword: "rahasia123"})
	seedAdmin(repo, config.Config{AdminEmail: "ADMIN@itbyadika.ac.id", AdminPassword: "rahasia123"})

	assert.Len(t, repo.admins, 1)
}

func TestSeedAdminSkipsWithoutCredentials(t *testing.T) {
	repo := &stubAdminRepo{admins: map[string]*domain.Admin{}}

	seedAdmin(repo, config.Config{AdminEmail: "   ", AdminPassword: "rahasia123"})
	seedAdmin(repo, config.Config{AdminEmail: "admin@itbyadika.ac.id"})

	assert.Empty(t, repo.admins)
}

func TestSeededMixedCaseAdminCanLogin(t *testing.T) {
	repo := &stubAdminRepo{admins: map[string]*domain.Admin{}}

	seedAdmin(repo, config.Config{
		AdminEmail:    "Admin@ItbYadika.ac.id",
		AdminPassword: "rahasia123",
	})

	sessions := session.NewManager(session.NewMemoryStore(), session.NewMemoryStore(), time.Now)
	svc := services.NewAuthService(repo, helper.SetupAuth("test-secret"), sessions)

	// the exact spelling from the environment must work
	_, err := svc.Login(dto.AdminLogin{Email: "Admin@ItbYadika.ac.id", Password: "rahasia123"})
	require.NoError(t, err)

	// and so must the lowercased one
	sessions.Logout()
	_, err = svc.Login(dto.AdminLogin{Email: "admin@itbyadika.ac.id", Password: "rahasia123"})
	assert.NoError(t, err)
}
