package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafif143/basket/internal/domain"
	"github.com/rafif143/basket/internal/dto"
	"github.com/rafif143/basket/internal/helper"
	"github.com/rafif143/basket/internal/services"
)

type fakeRegistrationService struct {
	submitted []dto.RegistrationRequest
}

func (f *fakeRegistrationService) Submit(input dto.RegistrationRequest) (*domain.Registration, error) {
	if !domain.ValidFakultas(input.Fakultas) || !domain.ValidPairing(input.Fakultas, input.ProgramStudi) {
		return nil, services.ErrInvalidPairing
	}
	f.submitted = append(f.submitted, input)
	return &domain.Registration{ID: uint(len(f.submitted)), Nama: input.Nama}, nil
}

func (f *fakeRegistrationService) List(search, fakultas string) (*dto.RegistrationListResponse, error) {
	return &dto.RegistrationListResponse{}, nil
}

func (f *fakeRegistrationService) Detail(id uint) (*domain.Registration, error) {
	return nil, services.ErrRegistrationNotFound
}

func (f *fakeRegistrationService) ContactLink(id uint) (string, error) {
	return "", services.ErrRegistrationNotFound
}

func (f *fakeRegistrationService) Report() (*dto.RegistrationReport, error) {
	return &dto.RegistrationReport{}, nil
}

func newTestApp(t *testing.T) (*fiber.App, *fakeRegistrationService, helper.Auth) {
	t.Helper()
	app := fiber.New()
	svc := &fakeRegistrationService{}
	auth := helper.SetupAuth("test-secret")
	NewRegistrationHandler(svc, auth).SetupRoutes(app)
	return app, svc, auth
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func validBody() dto.RegistrationRequest {
	return dto.RegistrationRequest{
		Nama:            "Budi Santoso",
		NIM:             "20230001",
		NoTelepon:       "081234567890",
		AlamatDomisili:  "Jl. Merdeka No. 1",
		Fakultas:        "FTI",
		ProgramStudi:    "SI",
		AlasanBergabung: "Suka basket",
	}
}

func TestSubmitRegistration(t *testing.T) {
	app, svc, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/registrations", validBody())
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Len(t, svc.submitted, 1)
}

func TestSubmitRegistrationMissingFields(t *testing.T) {
	app, svc, _ := newTestApp(t)

	body := validBody()
	body.Nama = ""
	resp := postJSON(t, app, "/api/registrations", body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Nama")
	assert.Empty(t, svc.submitted)
}

func TestSubmitRegistrationInvalidPairing(t *testing.T) {
	app, svc, _ := newTestApp(t)

	body := validBody()
	body.ProgramStudi = "AK" // FHB-only program under FTI
	resp := postJSON(t, app, "/api/registrations", body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, svc.submitted)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/registrations", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesAcceptBearerToken(t *testing.T) {
	app, _, auth := newTestApp(t)

	token, err := auth.GenerateToken(1, "admin@itbyadika.ac.id")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/registrations", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminRoutesAcceptCookieToken(t *testing.T) {
	app, _, auth := newTestApp(t)

	token, err := auth.GenerateToken(1, "admin@itbyadika.ac.id")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/reports", nil)
	req.AddCookie(&http.Cookie{Name: "admin_token", Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestExportEndpointsAreStubs(t *testing.T) {
	app, _, auth := newTestApp(t)

	token, err := auth.GenerateToken(1, "admin@itbyadika.ac.id")
	require.NoError(t, err)

	for _, path := range []string{"/api/admin/reports/export/csv", "/api/admin/reports/export/pdf"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotImplemented, resp.StatusCode, path)
	}
}
