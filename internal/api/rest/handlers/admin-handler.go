package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ocs-portal/placement_service/internal/api/rest/middleware"
	"github.com/ocs-portal/placement_service/internal/domain"
	"github.com/ocs-portal/placement_service/internal/helper"
	"github.com/ocs-portal/placement_service/internal/helper/utils"
	"github.com/ocs-portal/placement_service/internal/services"
)

type AdminHandler struct {
	svc  services.PlacementService
	auth helper.Auth
}

func NewAdminHandler(svc services.PlacementService, auth helper.Auth) *AdminHandler {
	return &AdminHandler{svc: svc, auth: auth}
}

func (h *AdminHandler) SetupRoutes(app *fiber.App) {
	admin := app.Group("/admin",
		middleware.AuthRequired(h.auth),
		middleware.RoleRequired(domain.RoleAdmin),
	)

	admin.Get("/users", h.Users)
	admin.Get("/profiles", h.Profiles)
	admin.Get("/applications", h.Applications)
}

func (h *AdminHandler) Users(ctx *fiber.Ctx) error {
	users, err := h.svc.AllUsers()
	if err != nil {
		return utils.ResponseError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"users": users})
}

func (h *AdminHandler) Profiles(ctx *fiber.Ctx) error {
	profiles, err := h.svc.AllProfiles()
	if err != nil {
		return utils.ResponseError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"profiles": profiles})
}

func (h *AdminHandler) Applications(ctx *fiber.Ctx) error {
	applications, err := h.svc.AllApplications()
	if err != nil {
		return utils.ResponseError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"applications": applications})
}
