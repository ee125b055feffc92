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

type StudentHandler struct {
	svc  services.PlacementService
	auth helper.Auth
}

func NewStudentHandler(svc services.PlacementService, auth helper.Auth) *StudentHandler {
	return &StudentHandler{svc: svc, auth: auth}
}

func (h *StudentHandler) SetupRoutes(app *fiber.App) {
	student := app.Group("/student", middleware.AuthRequired(h.auth))

	// The profile list is open to any authenticated caller; the offer
	// lock only applies to students and is enforced in the service.
	student.Get("/profiles", h.Profiles)

	studentOnly := middleware.RoleRequired(domain.RoleStudent)
	student.Get("/applications/mine", studentOnly, h.MyApplications)
	student.Post("/apply", studentOnly, h.Apply)
	student.Post("/application/accept", studentOnly, h.AcceptOffer)
	student.Post("/application/reject", studentOnly, h.RejectOffer)
}

func (h *StudentHandler) Profiles(ctx *fiber.Ctx) error {
	identity, err := helper.CurrentIdentity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, apperr.MissingToken())
	}

	profiles, err := h.svc.ListProfiles(identity)
	if err != nil {
		return utils.ResponseError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"profiles": profiles})
}

func (h *StudentHandler) MyApplications(ctx *fiber.Ctx) error {
	identity, err := helper.CurrentIdentity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, apperr.MissingToken())
	}

	applications, err := h.svc.MyApplications(identity)
	if err != nil {
		return utils.ResponseError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"applications": applications})
}

func (h *StudentHandler) Apply(ctx *fiber.Ctx) error {
	identity, err := helper.CurrentIdentity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, apperr.MissingToken())
	}

	var requestBody dto.ApplyRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, apperr.Validation("profile_code must be a number"))
	}

	if err := h.svc.Apply(identity, requestBody); err != nil {
		return utils.ResponseError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, fiber.Map{
		"message": "Application submitted successfully",
	})
}

func (h *StudentHandler) AcceptOffer(ctx *fiber.Ctx) error {
	identity, err := helper.CurrentIdentity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, apperr.MissingToken())
	}

	var requestBody dto.ResolveOfferRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, apperr.Validation("profile_code is required"))
	}

	result, err := h.svc.AcceptOffer(identity, requestBody)
	if err != nil {
		return utils.ResponseError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message":      "Offer accepted successfully",
		"company_name": result.CompanyName,
		"designation":  result.Designation,
	})
}

func (h *StudentHandler) RejectOffer(ctx *fiber.Ctx) error {
	identity, err := helper.CurrentIdentity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, apperr.MissingToken())
	}

	var requestBody dto.ResolveOfferRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, apperr.Validation("profile_code is required"))
	}

	if err := h.svc.RejectOffer(identity, requestBody); err != nil {
		return utils.ResponseError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "Offer rejected",
	})
}
