package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ocs-portal/placement_service/internal/api/rest/middleware"
	"github.com/ocs-portal/placement_service/internal/apperr"
	"github.com/ocs-portal/placement_service/internal/dto"
	"github.com/ocs-portal/placement_service/internal/helper"
	"github.com/ocs-portal/placement_service/internal/helper/utils"
	"github.com/ocs-portal/placement_service/internal/services"
)

type AuthHandler struct {
	svc  services.AuthService
	auth helper.Auth
}

func NewAuthHandler(svc services.AuthService, auth helper.Auth) *AuthHandler {
	return &AuthHandler{svc: svc, auth: auth}
}

func (h *AuthHandler) SetupRoutes(app *fiber.App) {
	app.Post("/login", h.Login)
	app.Get("/users/me", middleware.AuthRequired(h.auth), h.Me)
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, apperr.Validation("invalid request body"))
	}

	resp, err := h.svc.Login(requestBody)
	if err != nil {
		return utils.ResponseError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"token":  resp.Token,
		"role":   resp.Role,
		"userid": resp.UserID,
	})
}

func (h *AuthHandler) Me(ctx *fiber.Ctx) error {
	identity, err := helper.CurrentIdentity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, apperr.MissingToken())
	}

	user, err := h.svc.CurrentUser(identity)
	if err != nil {
		return utils.ResponseError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"user": user})
}
