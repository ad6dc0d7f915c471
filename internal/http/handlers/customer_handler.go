package handlers

import (
	"farmstand/internal/domain"
	applog "farmstand/internal/log"
	"farmstand/internal/repos"
	"farmstand/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	Customers *repos.CustomerRepo
}

type customerPayload struct {
	ID       int64  `json:"customerId"`
	Name     string `json:"customerName"`
	Email    string `json:"customerEmail"`
	Password string `json:"customerPassword"`
}

func (p customerPayload) validate(requireID bool) (domain.Customer, string, bool) {
	if requireID && p.ID <= 0 {
		return domain.Customer{}, "customerId must be a positive integer", false
	}
	name, ok := validate.Name(p.Name)
	if !ok {
		return domain.Customer{}, "invalid customerName", false
	}
	email, ok := validate.Email(p.Email)
	if !ok {
		return domain.Customer{}, "invalid customerEmail", false
	}
	if !validate.Password(p.Password) {
		return domain.Customer{}, "password does not meet requirements", false
	}
	return domain.Customer{ID: p.ID, Name: name, Email: email}, "", true
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in customerPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	cust, msg, ok := in.validate(true)
	if !ok {
		return badRequest(c, msg)
	}
	out, err := h.Customers.Create(c.UserContext(), cust, in.Password)
	if err != nil {
		return fail(c, err, "Customer not found")
	}
	applog.Audit(c, "customer.create", map[string]any{"id": out.ID})
	return c.Status(fiber.StatusCreated).JSON(out.View())
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.Customers.List(c.UserContext())
	if err != nil {
		return fail(c, err, "Customer not found")
	}
	views := make([]domain.CustomerView, 0, len(list))
	for _, cust := range list {
		views = append(views, cust.View())
	}
	return c.JSON(views)
}

func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid customer id")
	}
	cust, err := h.Customers.ByID(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "Customer not found")
	}
	return c.JSON(cust.View())
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid customer id")
	}
	var in customerPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	cust, msg, okp := in.validate(false)
	if !okp {
		return badRequest(c, msg)
	}
	out, err := h.Customers.Update(c.UserContext(), id, cust, in.Password)
	if err != nil {
		return fail(c, err, "Customer not found")
	}
	applog.Audit(c, "customer.update", map[string]any{"id": id})
	return c.JSON(out.View())
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid customer id")
	}
	if err := h.Customers.Delete(c.UserContext(), id); err != nil {
		return fail(c, err, "Customer not found")
	}
	applog.Audit(c, "customer.delete", map[string]any{"id": id})
	return message(c, fiber.StatusOK, "Customer deleted successfully")
}
