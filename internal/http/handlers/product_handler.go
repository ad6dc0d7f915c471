package handlers

import (
	"farmstand/internal/domain"
	applog "farmstand/internal/log"
	"farmstand/internal/repos"
	"farmstand/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	Products *repos.ProductRepo
}

type productPayload struct {
	Name     string          `json:"productName"`
	Quantity int             `json:"productQuantity"`
	Image    string          `json:"productImage"`
	Price    decimal.Decimal `json:"productPrice"`
	Make     string          `json:"productMake"`
	Expiry   string          `json:"productExpiry"`
	Category string          `json:"productCategory"`
	SellerID int64           `json:"sellerId"`
	Sold     int             `json:"sold"`
}

func (p productPayload) validate() (domain.Product, string, bool) {
	name, ok := validate.Name(p.Name)
	if !ok {
		return domain.Product{}, "invalid productName", false
	}
	if p.Quantity < 0 || p.Sold < 0 {
		return domain.Product{}, "quantities cannot be negative", false
	}
	if !p.Price.IsPositive() {
		return domain.Product{}, "productPrice must be positive", false
	}
	mk, ok := validate.Date(p.Make)
	if !ok {
		return domain.Product{}, "productMake must be a YYYY-MM-DD date", false
	}
	exp, ok := validate.Date(p.Expiry)
	if !ok {
		return domain.Product{}, "productExpiry must be a YYYY-MM-DD date", false
	}
	cat, ok := validate.Category(p.Category)
	if !ok {
		return domain.Product{}, "invalid productCategory", false
	}
	if p.SellerID <= 0 {
		return domain.Product{}, "sellerId must be a positive integer", false
	}
	return domain.Product{
		Name:     name,
		Quantity: p.Quantity,
		Image:    p.Image,
		Price:    p.Price,
		Make:     mk,
		Expiry:   exp,
		Category: cat,
		SellerID: p.SellerID,
		Sold:     p.Sold,
	}, "", true
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in productPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	p, msg, ok := in.validate()
	if !ok {
		return badRequest(c, msg)
	}
	out, err := h.Products.Create(c.UserContext(), p)
	if err != nil {
		return fail(c, err, "Product not found")
	}
	applog.Audit(c, "product.create", map[string]any{"id": out.ID, "seller": out.SellerID})
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.Products.List(c.UserContext())
	if err != nil {
		return fail(c, err, "Product not found")
	}
	return c.JSON(list)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	p, err := h.Products.ByID(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "Product not found")
	}
	return c.JSON(p)
}

func (h *ProductHandler) BySeller(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid seller id")
	}
	list, err := h.Products.BySeller(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "No products found for the seller")
	}
	return c.JSON(list)
}

func (h *ProductHandler) ByCategory(c *fiber.Ctx) error {
	cat, ok := validate.Category(c.Params("category"))
	if !ok {
		return badRequest(c, "invalid category")
	}
	list, err := h.Products.ByCategory(c.UserContext(), cat)
	if err != nil {
		return fail(c, err, "No products found for the category")
	}
	return c.JSON(list)
}

func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Products.Categories(c.UserContext())
	if err != nil {
		return fail(c, err, "Product not found")
	}
	return c.JSON(cats)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	var in productPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	p, msg, okp := in.validate()
	if !okp {
		return badRequest(c, msg)
	}
	out, err := h.Products.Update(c.UserContext(), id, p)
	if err != nil {
		return fail(c, err, "Product not found")
	}
	applog.Audit(c, "product.update", map[string]any{"id": id})
	return c.JSON(out)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	if err := h.Products.Delete(c.UserContext(), id); err != nil {
		return fail(c, err, "Product not found")
	}
	applog.Audit(c, "product.delete", map[string]any{"id": id})
	return message(c, fiber.StatusOK, "Product deleted successfully")
}
