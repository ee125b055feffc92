package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ocs-portal/placement_service/internal/apperr"
	"github.com/ocs-portal/placement_service/internal/helper"
	"github.com/ocs-portal/placement_service/internal/helper/utils"
)

// AuthRequired extracts and verifies the bearer token, then stores the
// verified identity in the request locals for handlers to pass on
// explicitly.
func AuthRequired(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := strings.TrimSpace(ctx.Get("Authorization"))
		if header == "" {
			return utils.ResponseError(ctx, apperr.MissingToken())
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return utils.ResponseError(ctx, apperr.MalformedAuthHeader())
		}

		identity, err := auth.VerifyToken(strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, helper.ErrTokenExpired) {
				return utils.ResponseError(ctx, apperr.TokenExpired())
			}
			return utils.ResponseError(ctx, apperr.InvalidToken())
		}

		ctx.Locals("identity", identity)
		return ctx.Next()
	}
}

// RoleRequired gates a route to the given roles. It must run after
// AuthRequired.
func RoleRequired(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		identity, err := helper.CurrentIdentity(ctx)
		if err != nil {
			return utils.ResponseError(ctx, apperr.MissingToken())
		}

		for _, role := range roles {
			if identity.Role == role {
				return ctx.Next()
			}
		}
		return utils.ResponseError(ctx, apperr.Forbidden(roles...))
	}
}
