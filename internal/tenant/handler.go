package tenant

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes tenant HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a tenant HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	Plan string `json:"plan"`
}

type tenantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Plan string `json:"plan"`
}

// Create provisions a tenant.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	t, err := h.service.Create(c.UserContext(), CreateInput{Name: req.Name, Slug: req.Slug, Plan: req.Plan})
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusOK).JSON(tenantResponse{ID: t.ID, Name: t.Name, Slug: t.Slug, Plan: t.Plan})
}

// List returns all tenants.
func (h *Handler) List(c *fiber.Ctx) error {
	tenants, err := h.service.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	out := make([]tenantResponse, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, tenantResponse{ID: t.ID, Name: t.Name, Slug: t.Slug, Plan: t.Plan})
	}
	return c.Status(http.StatusOK).JSON(out)
}
