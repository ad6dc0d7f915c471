package handlers

import (
	"farmstand/internal/domain"
	applog "farmstand/internal/log"
	"farmstand/internal/repos"
	"farmstand/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SellerHandler struct {
	Sellers *repos.SellerRepo
}

type sellerPayload struct {
	ID       int64  `json:"sellerId"`
	Name     string `json:"sellerName"`
	Email    string `json:"sellerEmail"`
	Password string `json:"sellerPassword"`
}

func (p sellerPayload) validate(requireID bool) (domain.Seller, string, bool) {
	if requireID && p.ID <= 0 {
		return domain.Seller{}, "sellerId must be a positive integer", false
	}
	name, ok := validate.Name(p.Name)
	if !ok {
		return domain.Seller{}, "invalid sellerName", false
	}
	email, ok := validate.Email(p.Email)
	if !ok {
		return domain.Seller{}, "invalid sellerEmail", false
	}
	if !validate.Password(p.Password) {
		return domain.Seller{}, "password does not meet requirements", false
	}
	return domain.Seller{ID: p.ID, Name: name, Email: email}, "", true
}

func (h *SellerHandler) Create(c *fiber.Ctx) error {
	var in sellerPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	s, msg, ok := in.validate(true)
	if !ok {
		return badRequest(c, msg)
	}
	out, err := h.Sellers.Create(c.UserContext(), s, in.Password)
	if err != nil {
		return fail(c, err, "Seller not found")
	}
	applog.Audit(c, "seller.create", map[string]any{"id": out.ID})
	return c.Status(fiber.StatusCreated).JSON(out.View())
}

func (h *SellerHandler) List(c *fiber.Ctx) error {
	list, err := h.Sellers.List(c.UserContext())
	if err != nil {
		return fail(c, err, "Seller not found")
	}
	views := make([]domain.SellerView, 0, len(list))
	for _, s := range list {
		views = append(views, s.View())
	}
	return c.JSON(views)
}

func (h *SellerHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid seller id")
	}
	s, err := h.Sellers.ByID(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "Seller not found")
	}
	return c.JSON(s.View())
}

func (h *SellerHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid seller id")
	}
	var in sellerPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	s, msg, okp := in.validate(false)
	if !okp {
		return badRequest(c, msg)
	}
	out, err := h.Sellers.Update(c.UserContext(), id, s, in.Password)
	if err != nil {
		return fail(c, err, "Seller not found")
	}
	applog.Audit(c, "seller.update", map[string]any{"id": id})
	return c.JSON(out.View())
}

func (h *SellerHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid seller id")
	}
	if err := h.Sellers.Delete(c.UserContext(), id); err != nil {
		return fail(c, err, "Seller not found")
	}
	applog.Audit(c, "seller.delete", map[string]any{"id": id})
	return message(c, fiber.StatusOK, "Seller deleted successfully")
}
