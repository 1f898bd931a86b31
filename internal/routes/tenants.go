package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/securesign/securesign/internal/tenant"
)

// RegisterTenantRoutes wires tenant endpoints.
func RegisterTenantRoutes(r fiber.Router, h *tenant.Handler) {
	group := r.Group("/tenants")
	group.Post("/", h.Create)
	group.Get("/", h.List)
}
