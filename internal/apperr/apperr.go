// Package apperr carries the domain error taxonomy. Every client-visible
// failure is an *Error with a stable code and the HTTP status it maps to;
// anything else reaching the response layer is treated as a server fault.
package apperr

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodeMissingToken         = "MISSING_TOKEN"
	CodeMalformedAuthHeader  = "MALFORMED_AUTH_HEADER"
	CodeInvalidToken         = "INVALID_TOKEN"
	CodeTokenExpired         = "TOKEN_EXPIRED"
	CodeForbidden            = "FORBIDDEN"
	CodeOwnershipViolation   = "OWNERSHIP_VIOLATION"
	CodeLockedByOffer        = "LOCKED_BY_OFFER"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeProfileNotFound      = "PROFILE_NOT_FOUND"
	CodeApplicationNotFound  = "APPLICATION_NOT_FOUND"
	CodeRecruiterNotFound    = "RECRUITER_NOT_FOUND"
	CodeInvalidStatus        = "INVALID_STATUS"
	CodeDuplicateApplication = "DUPLICATE_APPLICATION"
	CodeInvalidTransition    = "INVALID_TRANSITION"
)

type Error struct {
	Code    string `json:"code"`
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

func Validation(message string) *Error {
	return New(CodeValidation, fiber.StatusBadRequest, message)
}

func InvalidCredentials() *Error {
	return New(CodeInvalidCredentials, fiber.StatusUnauthorized, "Invalid credentials")
}

func MissingToken() *Error {
	return New(CodeMissingToken, fiber.StatusUnauthorized, "Token is missing")
}

func MalformedAuthHeader() *Error {
	return New(CodeMalformedAuthHeader, fiber.StatusUnauthorized, "Invalid token format. Use: Bearer <token>")
}

func InvalidToken() *Error {
	return New(CodeInvalidToken, fiber.StatusUnauthorized, "Invalid token")
}

func TokenExpired() *Error {
	return New(CodeTokenExpired, fiber.StatusUnauthorized, "Token has expired")
}

func Forbidden(requiredRoles ...string) *Error {
	return New(CodeForbidden, fiber.StatusForbidden,
		"Access denied. Required role: "+strings.Join(requiredRoles, ", "))
}

// OwnershipViolation intentionally does not reveal whether the profile
// exists.
func OwnershipViolation() *Error {
	return New(CodeOwnershipViolation, fiber.StatusForbidden, "Profile not found or you do not have permission")
}

func LockedByOffer(blockingStatus string) *Error {
	return New(CodeLockedByOffer, fiber.StatusForbidden,
		fmt.Sprintf("Cannot proceed: you have a '%s' application. Please resolve it first.", blockingStatus))
}

func UserNotFound() *Error {
	return New(CodeUserNotFound, fiber.StatusNotFound, "User not found")
}

func ProfileNotFound() *Error {
	return New(CodeProfileNotFound, fiber.StatusNotFound, "Profile not found")
}

func ApplicationNotFound() *Error {
	return New(CodeApplicationNotFound, fiber.StatusNotFound, "Application not found")
}

func RecruiterNotFound() *Error {
	return New(CodeRecruiterNotFound, fiber.StatusNotFound, "Recruiter not found")
}

func InvalidStatus(allowed []string) *Error {
	return New(CodeInvalidStatus, fiber.StatusBadRequest,
		"new_status must be one of: "+strings.Join(allowed, ", "))
}

func DuplicateApplication() *Error {
	return New(CodeDuplicateApplication, fiber.StatusBadRequest, "You have already applied to this position")
}

func InvalidTransition(action, currentStatus string) *Error {
	return New(CodeInvalidTransition, fiber.StatusBadRequest,
		fmt.Sprintf("Can only %s applications with Selected status (current: %s)", action, currentStatus))
}
