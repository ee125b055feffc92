package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ocs-portal/placement_service/internal/api/rest/middleware"
	"github.com/ocs-portal/placement_service/internal/apperr"
	"github.com/ocs-portal/placement_service/internal/domain"
	"github.com/ocs-portal/placement_service/internal/dto"
	"github.com/ocs-portal/placement_service/internal/helper"
	"github.com/ocs-portal/placement_service/internal/helper/utils"
	"github.com/ocs-portal/placement_service/internal/services"
)

type RecruiterHandler struct {
	svc  services.PlacementService
	auth helper.Auth
}

func NewRecruiterHandler(svc services.PlacementService, auth helper.Auth) *RecruiterHandler {
	return &RecruiterHandler{svc: svc, auth: auth}
}

func (h *RecruiterHandler) SetupRoutes(app *fiber.App) {
	recruiter := app.Group("/recruiter", middleware.AuthRequired(h.auth))

	recruiterOrAdmin := middleware.RoleRequired(domain.RoleRecruiter, domain.RoleAdmin)
	recruiterOnly := middleware.RoleRequired(domain.RoleRecruiter)

	recruiter.Post("/create_profile", recruiterOrAdmin, h.CreateProfile)
	recruiter.Get("/my_profiles", recruiterOnly, h.MyProfiles)
	recruiter.Get("/applications", recruiterOnly, h.Applications)
	recruiter.Post("/application/change_status", recruiterOrAdmin, h.ChangeStatus)
}

func (h *RecruiterHandler) CreateProfile(ctx *fiber.Ctx) error {
	identity, err := helper.CurrentIdentity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, apperr.MissingToken())
	}

	var requestBody dto.CreateProfileRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, apperr.Validation("invalid request body"))
	}

	profile, err := h.svc.CreateProfile(identity, requestBody)
	if err != nil {
		return utils.ResponseError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, fiber.Map{
		"message":      "Profile created successfully",
		"profile_code": profile.ProfileCode,
	})
}

func (h *RecruiterHandler) MyProfiles(ctx *fiber.Ctx) error {
	identity, err := helper.CurrentIdentity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, apperr.MissingToken())
	}

	profiles, err := h.svc.MyProfiles(identity)
	if err != nil {
		return utils.ResponseError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"profiles": profiles})
}

func (h *RecruiterHandler) Applications(ctx *fiber.Ctx) error {
	identity, err := helper.CurrentIdentity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, apperr.MissingToken())
	}

	applications, err := h.svc.RecruiterApplications(identity)
	if err != nil {
		return utils.ResponseError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"applications": applications})
}

func (h *RecruiterHandler) ChangeStatus(ctx *fiber.Ctx) error {
	identity, err := helper.CurrentIdentity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, apperr.MissingToken())
	}

	var requestBody dto.ChangeStatusRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, apperr.Validation("invalid request body"))
	}

	if err := h.svc.ChangeStatus(identity, requestBody); err != nil {
		return utils.ResponseError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "Application status updated successfully",
	})
}
