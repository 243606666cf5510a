package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grooming-service/internal/api/dto"
	"github.com/spec-kit/grooming-service/internal/auth"
	"github.com/spec-kit/grooming-service/internal/domain"
	"github.com/spec-kit/grooming-service/internal/service"
)

// DogsHandler exposes dog profile management.
type DogsHandler struct {
	dogs     *service.DogService
	pageSize int
}

// NewDogsHandler constructs handler.
func NewDogsHandler(dogs *service.DogService, pageSize int) *DogsHandler {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &DogsHandler{dogs: dogs, pageSize: pageSize}
}

// List handles GET /doglist.
func (h *DogsHandler) List(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	page := currentPage(c)
	items, total, err := h.dogs.List(c.Context(), principal.User.ID, h.pageSize, (page-1)*h.pageSize)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data":       dto.FromDogs(items),
		"pagination": paginate(c, page, h.pageSize, total),
	})
}

// Add handles POST /add_dog.
func (h *DogsHandler) Add(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	var req dto.DogRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	dog, err := h.dogs.Add(c.Context(), principal.User.ID, dogInputFromRequest(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data":   dto.FromDog(*dog),
		"notice": "This dog is been added to your list.",
	})
}

// Edit handles GET and POST /edit_dog/:name, scoped to the caller's own dogs.
func (h *DogsHandler) Edit(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	name := c.Params("name")

	if c.Method() == fiber.MethodGet {
		dog, err := h.dogs.GetForEdit(c.Context(), principal.User.ID, name)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": dto.FromDog(*dog)})
	}

	var req dto.DogRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	dog, err := h.dogs.Edit(c.Context(), principal.User.ID, name, dogInputFromRequest(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data":   dto.FromDog(*dog),
		"notice": "Your changes have been saved.",
	})
}

func dogInputFromRequest(req dto.DogRequest) service.DogInput {
	return service.DogInput{
		Name:    req.Name,
		Breed:   req.Breed,
		Age:     req.Age,
		Length:  req.Length,
		Gender:  domain.Gender(req.Gender),
		Comment: req.Comment,
	}
}
