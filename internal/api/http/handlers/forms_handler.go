package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-portal/internal/gateway"
	apperrors "github.com/spec-kit/staff-portal/pkg/util"
)

// FormsHandler relays external form content to authenticated admins.
type FormsHandler struct {
	gateway *gateway.FormGateway
}

// NewFormsHandler constructs handler.
func NewFormsHandler(gw *gateway.FormGateway) *FormsHandler {
	return &FormsHandler{gateway: gw}
}

// Fetch handles GET /secure-form/:type. The upstream status and content type
// pass through verbatim and the body is streamed, never buffered.
func (h *FormsHandler) Fetch(c *fiber.Ctx) error {
	category := c.Params("type")

	form, err := h.gateway.Fetch(c.UserContext(), category)
	if err != nil {
		if errors.Is(err, gateway.ErrNotConfigured) {
			return apperrors.NewNotFound("form", nil)
		}
		return apperrors.NewUpstreamFetchError(err)
	}

	c.Status(form.StatusCode)
	if form.ContentType != "" {
		c.Set(fiber.HeaderContentType, form.ContentType)
	}
	return c.SendStream(form.Body)
}
