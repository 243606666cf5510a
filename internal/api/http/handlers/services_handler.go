package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grooming-service/internal/api/dto"
	"github.com/spec-kit/grooming-service/internal/service"
)

// ServicesHandler exposes service catalog management (administrator only).
type ServicesHandler struct {
	catalog  *service.CatalogService
	pageSize int
}

// NewServicesHandler constructs handler.
func NewServicesHandler(catalog *service.CatalogService, pageSize int) *ServicesHandler {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &ServicesHandler{catalog: catalog, pageSize: pageSize}
}

// List handles GET /servicelist.
func (h *ServicesHandler) List(c *fiber.Ctx) error {
	page := currentPage(c)
	items, total, err := h.catalog.List(c.Context(), h.pageSize, (page-1)*h.pageSize)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data":       dto.FromServices(items),
		"pagination": paginate(c, page, h.pageSize, total),
	})
}

// Add handles POST /add_service.
func (h *ServicesHandler) Add(c *fiber.Ctx) error {
	var req dto.ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.catalog.Add(c.Context(), service.ServiceInput{Name: req.Name, Price: req.Price})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data":   dto.FromService(*created),
		"notice": "This service is online now!",
	})
}

// Edit handles GET and POST /edit_service/:name.
func (h *ServicesHandler) Edit(c *fiber.Ctx) error {
	name := c.Params("name")

	if c.Method() == fiber.MethodGet {
		current, err := h.catalog.GetForEdit(c.Context(), name)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": dto.FromService(*current)})
	}

	var req dto.ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.catalog.Edit(c.Context(), name, service.ServiceInput{Name: req.Name, Price: req.Price})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data":   dto.FromService(*updated),
		"notice": "Your changes have been saved.",
	})
}

// Expire handles GET /expire_service/:id; the offering goes offline but the
// record survives for existing appointment references.
func (h *ServicesHandler) Expire(c *fiber.Ctx) error {
	if err := h.catalog.Expire(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"notice": "This service is offline now."})
}
