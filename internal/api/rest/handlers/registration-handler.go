package handlers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/rafif143/basket/internal/api/rest/middleware"
	"github.com/rafif143/basket/internal/dto"
	"github.com/rafif143/basket/internal/helper"
	"github.com/rafif143/basket/internal/helper/utils"
	"github.com/rafif143/basket/internal/services"
)

type RegistrationHandler struct {
	svc      services.RegistrationService
	auth     helper.Auth
	validate *validator.Validate
}

func NewRegistrationHandler(svc services.RegistrationService, auth helper.Auth) *RegistrationHandler {
	return &RegistrationHandler{
		svc:      svc,
		auth:     auth,
		validate: validator.New(),
	}
}

func (h *RegistrationHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// public intake
	api.Post("/registrations", middleware.RegisterRateLimiter(), h.Submit)

	// admin views
	admin := api.Group("/admin", middleware.AuthMiddleware(h.auth))
	admin.Get("/registrations", h.List)
	admin.Get("/registrations/:id", h.Detail)
	admin.Get("/registrations/:id/whatsapp", h.ContactLink)
	admin.Get("/reports", h.Report)
	admin.Get("/reports/export/csv", h.ExportCSV)
	admin.Get("/reports/export/pdf", h.ExportPDF)
}

func (h *RegistrationHandler) Submit(ctx *fiber.Ctx) error {
	var requestBody dto.RegistrationRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.validate.Struct(requestBody); err != nil {
		return utils.ResponseValidationError(ctx, err)
	}

	reg, err := h.svc.Submit(requestBody)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPairing) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, reg)
}

func (h *RegistrationHandler) List(ctx *fiber.Ctx) error {
	search := ctx.Query("search")
	fakultas := ctx.Query("fakultas", "all")

	list, err := h.svc.List(search, fakultas)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, list)
}

func (h *RegistrationHandler) Detail(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid registration id")
	}

	reg, err := h.svc.Detail(id)
	if err != nil {
		if errors.Is(err, services.ErrRegistrationNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, reg)
}

func (h *RegistrationHandler) ContactLink(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid registration id")
	}

	link, err := h.svc.ContactLink(id)
	if err != nil {
		if errors.Is(err, services.ErrRegistrationNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"whatsapp_url": link})
}

func (h *RegistrationHandler) Report(ctx *fiber.Ctx) error {
	report, err := h.svc.Report()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, report)
}

// Export endpoints exist as affordances only; they produce no file yet.
func (h *RegistrationHandler) ExportCSV(ctx *fiber.Ctx) error {
	return utils.ResponseError(ctx, fiber.StatusNotImplemented, "Fitur export CSV akan segera tersedia")
}

func (h *RegistrationHandler) ExportPDF(ctx *fiber.Ctx) error {
	return utils.ResponseError(ctx, fiber.StatusNotImplemented, "Fitur export PDF akan segera tersedia")
}

func parseID(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
