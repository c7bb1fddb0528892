package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/rafif143/basket/internal/api/rest/middleware"
	"github.com/rafif143/basket/internal/domain"
	"github.com/rafif143/basket/internal/dto"
	"github.com/rafif143/basket/internal/helper"
	"github.com/rafif143/basket/internal/helper/utils"
	"github.com/rafif143/basket/internal/repository"
	"github.com/rafif143/basket/internal/services"
)

type SettingsHandler struct {
	svc      services.SettingsService
	auth     helper.Auth
	validate *validator.Validate
}

func NewSettingsHandler(svc services.SettingsService, auth helper.Auth) *SettingsHandler {
	return &SettingsHandler{
		svc:      svc,
		auth:     auth,
		validate: validator.New(),
	}
}

func (h *SettingsHandler) SetupRoutes(app *fiber.App) {
	settings := app.Group("/api/admin/settings", middleware.AuthMiddleware(h.auth))

	settings.Get("/", h.ListAll)
	settings.Get("/whatsapp-template", h.GetTemplate)
	settings.Put("/whatsapp-template", h.UpdateTemplate)
	settings.Get("/:key", h.Get)
	settings.Put("/:key", h.Upsert)
}

func (h *SettingsHandler) ListAll(ctx *fiber.Ctx) error {
	settings, err := h.svc.ListAll()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, settings)
}

func (h *SettingsHandler) GetTemplate(ctx *fiber.Ctx) error {
	template, isDefault := h.svc.WhatsAppTemplateWithSource()
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.TemplateResponse{
		Template:  template,
		IsDefault: isDefault,
	})
}

func (h *SettingsHandler) UpdateTemplate(ctx *fiber.Ctx) error {
	var requestBody dto.UpdateTemplateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.validate.Struct(requestBody); err != nil {
		return utils.ResponseValidationError(ctx, err)
	}

	setting, err := h.svc.UpdateWhatsAppTemplate(requestBody.Template)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, setting)
}

func (h *SettingsHandler) Get(ctx *fiber.Ctx) error {
	key := domain.SettingKey(ctx.Params("key"))

	setting, err := h.svc.Get(key)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownSettingKey):
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			return utils.ResponseError(ctx, fiber.StatusNotFound, "setting not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, setting)
}

func (h *SettingsHandler) Upsert(ctx *fiber.Ctx) error {
	key := domain.SettingKey(ctx.Params("key"))

	var requestBody dto.UpdateSettingRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.validate.Struct(requestBody); err != nil {
		return utils.ResponseValidationError(ctx, err)
	}

	setting, err := h.svc.Upsert(key, requestBody.Value, requestBody.Description)
	if err != nil {
		if errors.Is(err, services.ErrUnknownSettingKey) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, setting)
}
