package handlers

import (
	"farmstand/internal/domain"
	applog "farmstand/internal/log"
	"farmstand/internal/repos"
	"farmstand/internal/services"
	"farmstand/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type SalesHandler struct {
	Sales    *repos.SalesRepo
	Recorder *services.SalesService
}

type salePayload struct {
	SellerID   int64           `json:"sellerId"`
	CustomerID int64           `json:"customerId"`
	ProductID  int64           `json:"productId"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Date       string          `json:"salesDate"`
}

func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in salePayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	if in.SellerID <= 0 || in.CustomerID <= 0 || in.ProductID <= 0 {
		return badRequest(c, "sellerId, customerId and productId must be positive integers")
	}
	if in.Quantity <= 0 {
		return badRequest(c, "quantity must be positive")
	}
	date, ok := validate.DateTime(in.Date)
	if !ok {
		return badRequest(c, "salesDate must be a YYYY-MM-DD HH:MM:SS timestamp")
	}

	sale, err := h.Recorder.Record(c.UserContext(), domain.Sale{
		SellerID:   in.SellerID,
		CustomerID: in.CustomerID,
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		Price:      in.Price,
		Date:       date,
	})
	if err != nil {
		return fail(c, err, "Product not found")
	}
	applog.Audit(c, "sale.record", map[string]any{
		"number": sale.Number, "product": sale.ProductID, "quantity": sale.Quantity,
	})
	return c.Status(fiber.StatusCreated).JSON(sale)
}

func (h *SalesHandler) List(c *fiber.Ctx) error {
	list, err := h.Sales.All(c.UserContext())
	if err != nil {
		return fail(c, err, "Sales not found")
	}
	return c.JSON(list)
}

func (h *SalesHandler) Get(c *fiber.Ctx) error {
	num, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid sales number")
	}
	sale, err := h.Sales.ByNumber(c.UserContext(), num)
	if err != nil {
		return fail(c, err, "Sales not found")
	}
	return c.JSON(sale)
}

func (h *SalesHandler) BySeller(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid seller id")
	}
	list, err := h.Sales.BySeller(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "Sales not found")
	}
	return c.JSON(list)
}

func (h *SalesHandler) ByCustomer(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid customer id")
	}
	list, err := h.Sales.ByCustomer(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "Sales not found")
	}
	return c.JSON(list)
}
