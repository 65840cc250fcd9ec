package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-portal/internal/api/dto"
	"github.com/spec-kit/staff-portal/internal/auth"
	"github.com/spec-kit/staff-portal/internal/service"
	apperrors "github.com/spec-kit/staff-portal/pkg/util"
)

// NotesHandler exposes the per-principal notes endpoints.
type NotesHandler struct {
	notes *service.NotesService
}

// NewNotesHandler constructs handler.
func NewNotesHandler(notes *service.NotesService) *NotesHandler {
	return &NotesHandler{notes: notes}
}

// Get handles GET /api/notes. A principal that never saved, and a backend
// that is down, both read as an empty note.
func (h *NotesHandler) Get(c *fiber.Ctx) error {
	rec, ok := auth.StaffFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	text := h.notes.Get(c.Context(), rec.Identifier)
	return c.JSON(dto.NotesResponse{Notes: text})
}

// Save handles POST /api/notes.
func (h *NotesHandler) Save(c *fiber.Ctx) error {
	rec, ok := auth.StaffFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.NotesRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Notes == nil {
		return apperrors.NewValidationError("notes field required", nil)
	}

	if err := h.notes.Save(c.Context(), rec.Identifier, *req.Notes); err != nil {
		return apperrors.NewStorageUnavailable(err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
