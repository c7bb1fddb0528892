package handlers

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/rafif143/basket/internal/api/rest/middleware"
	"github.com/rafif143/basket/internal/dto"
	"github.com/rafif143/basket/internal/helper"
	"github.com/rafif143/basket/internal/helper/utils"
	"github.com/rafif143/basket/internal/services"
	"github.com/rafif143/basket/internal/session"
)

type AuthHandler struct {
	svc      services.AuthService
	auth     helper.Auth
	validate *validator.Validate
}

func NewAuthHandler(svc services.AuthService, auth helper.Auth) *AuthHandler {
	return &AuthHandler{
		svc:      svc,
		auth:     auth,
		validate: validator.New(),
	}
}

func (h *AuthHandler) SetupRoutes(app *fiber.App) {
	admin := app.Group("/api/admin")

	admin.Post("/login", middleware.LoginRateLimiter(), h.Login)

	protected := admin.Group("", middleware.AuthMiddleware(h.auth))
	protected.Post("/logout", h.Logout)
	protected.Post("/session/extend", h.ExtendSession)
	protected.Get("/session", h.SessionStatus)
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.AdminLogin
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	if err := h.validate.Struct(requestBody); err != nil {
		return utils.ResponseValidationError(ctx, err)
	}

	resp, err := h.svc.Login(requestBody)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	h.setSessionCookies(ctx, resp)

	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AuthHandler) Logout(ctx *fiber.Ctx) error {
	h.svc.Logout()
	h.clearSessionCookies(ctx)
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "logged out")
}

func (h *AuthHandler) ExtendSession(ctx *fiber.Ctx) error {
	if !h.svc.ExtendSession() {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "no active session to extend")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, h.svc.SessionStatus())
}

func (h *AuthHandler) SessionStatus(ctx *fiber.Ctx) error {
	return utils.ResponseSuccess(ctx, fiber.StatusOK, h.svc.SessionStatus())
}

func (h *AuthHandler) setSessionCookies(ctx *fiber.Ctx, resp *dto.LoginResponse) {
	expires := time.UnixMilli(resp.ExpiresAt)

	ctx.Cookie(&fiber.Cookie{
		Name:     session.TokenKey,
		Value:    resp.Token,
		Path:     "/",
		Expires:  expires,
		Secure:   true,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *AuthHandler) clearSessionCookies(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:    session.TokenKey,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
	})
}
