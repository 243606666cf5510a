package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grooming-service/internal/api/dto"
	"github.com/spec-kit/grooming-service/internal/auth"
	"github.com/spec-kit/grooming-service/internal/service"
)

// AppointmentsHandler exposes the booking flow, personal listing, admin
// queue and moderation endpoints.
type AppointmentsHandler struct {
	appointments *service.AppointmentService
	roster       *service.RosterService
	pageSize     int
}

// NewAppointmentsHandler constructs handler.
func NewAppointmentsHandler(appointments *service.AppointmentService, roster *service.RosterService, pageSize int) *AppointmentsHandler {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &AppointmentsHandler{appointments: appointments, roster: roster, pageSize: pageSize}
}

// Index handles GET and POST /index. Administrators do not book through the
// ordinary flow; they are sent to their queue instead.
func (h *AppointmentsHandler) Index(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	if principal.IsAdministrator() {
		return c.Redirect("/administrator/"+principal.User.Username, fiber.StatusSeeOther)
	}

	if c.Method() == fiber.MethodGet {
		choices, err := h.appointments.Choices(c.Context(), principal.User.ID)
		if err != nil {
			return err
		}
		resp := dto.BookingChoicesResponse{
			Dogs:     dto.FromDogs(choices.Dogs),
			Services: dto.FromServices(choices.Services),
		}
		for _, d := range choices.Dates {
			resp.Dates = append(resp.Dates, d.Value)
		}
		for _, s := range choices.Slots {
			resp.Slots = append(resp.Slots, dto.SlotChoice{Index: s.Index, Label: s.Label})
		}
		return c.JSON(fiber.Map{"data": resp})
	}

	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	appointment, err := h.appointments.Create(c.Context(), principal.User, service.AppointmentCreateInput{
		Date:      req.Date,
		SlotIndex: req.Time,
		DogID:     req.Dog,
		ServiceID: req.Service,
		Comment:   req.Comment,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data":   dto.FromAppointment(*appointment),
		"notice": "Your appointment is already submitted!",
		"next":   "/user/" + principal.User.Username,
	})
}

// UserList handles GET /user/:username, the paginated personal list of
// incomplete appointments.
func (h *AppointmentsHandler) UserList(c *fiber.Ctx) error {
	user, err := h.roster.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return err
	}

	page := currentPage(c)
	items, total, err := h.appointments.ListForUser(c.Context(), user.ID, h.pageSize, (page-1)*h.pageSize)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data":       dto.FromAppointments(items),
		"user":       dto.FromUser(*user),
		"pagination": paginate(c, page, h.pageSize, total),
	})
}

// AdminQueue handles GET /administrator/:username, the pending queue ordered
// by date then time ascending.
func (h *AppointmentsHandler) AdminQueue(c *fiber.Ctx) error {
	page := currentPage(c)
	items, total, err := h.appointments.ListQueue(c.Context(), h.pageSize, (page-1)*h.pageSize)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data":       dto.FromAppointments(items),
		"pagination": paginate(c, page, h.pageSize, total),
	})
}

// Reschedule handles GET and POST /reschedule/:appointment_id. The date
// window offered is anchored at the appointment's current date.
func (h *AppointmentsHandler) Reschedule(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	id := c.Params("appointment_id")

	if c.Method() == fiber.MethodGet {
		appointment, dates, slots, err := h.appointments.RescheduleChoices(c.Context(), principal.User, id)
		if err != nil {
			return err
		}
		resp := fiber.Map{"appointment": dto.FromAppointment(*appointment)}
		var dateValues []string
		for _, d := range dates {
			dateValues = append(dateValues, d.Value)
		}
		var slotChoices []dto.SlotChoice
		for _, s := range slots {
			slotChoices = append(slotChoices, dto.SlotChoice{Index: s.Index, Label: s.Label})
		}
		resp["dates"] = dateValues
		resp["slots"] = slotChoices
		return c.JSON(fiber.Map{"data": resp})
	}

	var req dto.RescheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	appointment, err := h.appointments.Reschedule(c.Context(), principal.User, id, req.Date, req.Time)
	if err != nil {
		return err
	}

	// Same mutation for both roles; only the landing page differs.
	next := "/user/" + principal.User.Username
	if principal.IsAdministrator() {
		next = "/administrator/" + principal.User.Username
	}
	return c.JSON(fiber.Map{
		"data":   dto.FromAppointment(*appointment),
		"notice": "Your changes have been saved!",
		"next":   next,
	})
}

// Complete handles GET /complete/:appointment_id (administrator only).
func (h *AppointmentsHandler) Complete(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	if err := h.appointments.Complete(c.Context(), principal.User.ID, c.Params("appointment_id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"notice": "This appointment has been marked as completed.",
		"next":   "/administrator/" + principal.User.Username,
	})
}

// Delete handles GET /delete/:appointment_id (administrator only).
func (h *AppointmentsHandler) Delete(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	if err := h.appointments.Delete(c.Context(), principal.User.ID, c.Params("appointment_id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"notice": "This appointment has already been deleted.",
		"next":   "/administrator/" + principal.User.Username,
	})
}
