package handlers

import (
	applog "farmstand/internal/log"
	"farmstand/internal/services"
	"farmstand/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// LoginHandler checks credentials and answers with a message only; no
// session or token is issued.
type LoginHandler struct {
	Auth *services.AuthService
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *LoginHandler) parse(c *fiber.Ctx) (loginPayload, bool) {
	var in loginPayload
	if err := c.BodyParser(&in); err != nil {
		return in, false
	}
	email, ok := validate.Email(in.Email)
	if !ok || !validate.Password(in.Password) {
		return in, false
	}
	in.Email = email
	return in, true
}

func (h *LoginHandler) Customer(c *fiber.Ctx) error {
	in, ok := h.parse(c)
	if !ok {
		applog.Security(c, "login.customer.fail", map[string]any{"reason": "bad_format"})
		return message(c, fiber.StatusUnauthorized, "Incorrect email or password")
	}
	if _, err := h.Auth.LoginCustomer(c.UserContext(), in.Email, in.Password); err != nil {
		applog.Security(c, "login.customer.fail", map[string]any{"email": in.Email})
		return fail(c, err, "Customer not found")
	}
	applog.Audit(c, "login.customer.success", map[string]any{"email": in.Email})
	return message(c, fiber.StatusOK, "Customer logged in successfully")
}

func (h *LoginHandler) Seller(c *fiber.Ctx) error {
	in, ok := h.parse(c)
	if !ok {
		applog.Security(c, "login.seller.fail", map[string]any{"reason": "bad_format"})
		return message(c, fiber.StatusUnauthorized, "Incorrect email or password")
	}
	if _, err := h.Auth.LoginSeller(c.UserContext(), in.Email, in.Password); err != nil {
		applog.Security(c, "login.seller.fail", map[string]any{"email": in.Email})
		return fail(c, err, "Seller not found")
	}
	applog.Audit(c, "login.seller.success", map[string]any{"email": in.Email})
	return message(c, fiber.StatusOK, "Seller logged in successfully")
}
