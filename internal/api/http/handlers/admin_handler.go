package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-portal/internal/api/dto"
	"github.com/spec-kit/staff-portal/internal/auth"
	"github.com/spec-kit/staff-portal/internal/service"
	apperrors "github.com/spec-kit/staff-portal/pkg/util"
)

// AdminHandler exposes the admin session and account management endpoints.
type AdminHandler struct {
	authService  *service.AuthService
	cookieSecure bool
}

// NewAdminHandler constructs handler.
func NewAdminHandler(authService *service.AuthService, cookieSecure bool) *AdminHandler {
	return &AdminHandler{authService: authService, cookieSecure: cookieSecure}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Password == "" {
		return apperrors.NewValidationError("password required", nil)
	}

	token, exp, err := h.authService.LoginAdmin(c.Context(), req.Password)
	if err != nil {
		return apperrors.NewForbidden("invalid credentials")
	}

	auth.SetSessionCookie(c, auth.AdminCookieName, token, exp, h.cookieSecure)
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Logout handles POST /api/admin/logout.
func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	auth.ClearSessionCookie(c, auth.AdminCookieName, h.cookieSecure)
	return c.JSON(dto.SuccessResponse{Success: true})
}

// CreateUser handles POST /api/admin/create-user.
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	if _, err := h.authService.CreateStaff(c.Context(), req.Username, req.Name, req.Phone, req.Password); err != nil {
		// read-only backend and table write failure surface the same way
		return apperrors.NewStorageUnavailable(err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
