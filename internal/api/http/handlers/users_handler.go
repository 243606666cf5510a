package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grooming-service/internal/api/dto"
	"github.com/spec-kit/grooming-service/internal/service"
)

// UsersHandler exposes the administrator's user roster management.
type UsersHandler struct {
	roster   *service.RosterService
	pageSize int
}

// NewUsersHandler constructs handler.
func NewUsersHandler(roster *service.RosterService, pageSize int) *UsersHandler {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &UsersHandler{roster: roster, pageSize: pageSize}
}

// List handles GET /userlist.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	page := currentPage(c)
	items, total, err := h.roster.List(c.Context(), h.pageSize, (page-1)*h.pageSize)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data":       dto.FromUsers(items),
		"pagination": paginate(c, page, h.pageSize, total),
	})
}

// Delete handles POST /deleteuser/:id; the user's appointments go first.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.roster.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"notice": "This user has already been deleted."})
}

// SetPermission handles POST /set_permission/:id/:administrator.
func (h *UsersHandler) SetPermission(c *fiber.Ctx) error {
	administrator, err := strconv.ParseBool(c.Params("administrator"))
	if err != nil {
		administrator = false
	}
	if err := h.roster.SetPermission(c.Context(), c.Params("id"), administrator); err != nil {
		return err
	}

	notice := "This user has already been set as a normal user."
	if administrator {
		notice = "This user has already been set as a administrator."
	}
	return c.JSON(fiber.Map{"notice": notice})
}
