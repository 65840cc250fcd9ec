package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-portal/internal/api/dto"
	"github.com/spec-kit/staff-portal/internal/auth"
	"github.com/spec-kit/staff-portal/internal/service"
	apperrors "github.com/spec-kit/staff-portal/pkg/util"
)

// AuthHandler exposes the staff session endpoints.
type AuthHandler struct {
	authService  *service.AuthService
	cookieSecure bool
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieSecure: cookieSecure}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	hasPair := req.Email != "" && req.Phone != ""
	hasAccount := req.Username != "" && req.Password != ""
	if !hasPair && !hasAccount {
		return apperrors.NewValidationError("email and phone, or username and password required", nil)
	}

	_, token, exp, err := h.authService.LoginStaff(c.Context(), service.StaffLogin{
		Email:    req.Email,
		Phone:    req.Phone,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}

	auth.SetSessionCookie(c, auth.StaffCookieName, token, exp, h.cookieSecure)
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Logout handles POST /api/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	auth.ClearSessionCookie(c, auth.StaffCookieName, h.cookieSecure)
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Me handles GET /api/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	rec, ok := auth.StaffFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(dto.MeResponse{
		Name:        rec.Name,
		Identifier:  rec.Identifier,
		Phone:       rec.Phone,
		Designation: rec.Designation,
	})
}
