// Package httpapi wires the fiber application: middleware, routes, and the
// error surface.
package httpapi

import (
	"strconv"
	"time"

	"farmstand/internal/config"
	"farmstand/internal/http/handlers"
	applog "farmstand/internal/log"
	"farmstand/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func New(cfg config.Config, db *sqlx.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "farmstand",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Avoid leaking internals; log the cause, answer with a message.
			applog.Error(c, "server.error", err, nil)
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"message": "Internal Server Error"})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(recordMetrics)

	deps := handlers.NewDeps(db)

	// Login throttled per client
	loginLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "Too many attempts. Please try again later."})
		},
	})

	// ---------- Customers ----------
	app.Post("/customers/create", deps.Customers.Create)
	app.Get("/customers/", deps.Customers.List)
	app.Post("/customers/login", loginLimiter, deps.Login.Customer)
	app.Get("/customers/:id", deps.Customers.Get)
	app.Put("/customers/:id", deps.Customers.Update)
	app.Delete("/customers/:id", deps.Customers.Delete)

	// ---------- Sellers ----------
	app.Post("/sellers/create", deps.Sellers.Create)
	app.Get("/sellers/", deps.Sellers.List)
	app.Post("/sellers/login", loginLimiter, deps.Login.Seller)
	app.Get("/sellers/:id", deps.Sellers.Get)
	app.Put("/sellers/:id", deps.Sellers.Update)
	app.Delete("/sellers/:id", deps.Sellers.Delete)

	// ---------- Products ----------
	app.Post("/products/create", deps.Products.Create)
	app.Get("/products", deps.Products.List)
	app.Get("/products/seller/:id", deps.Products.BySeller)
	app.Get("/products/category/:category", deps.Products.ByCategory)
	app.Get("/products/:id", deps.Products.Get)
	app.Put("/products/:id", deps.Products.Update)
	app.Delete("/products/:id", deps.Products.Delete)
	app.Get("/categories", deps.Products.Categories)

	// ---------- Sales ----------
	app.Post("/sales/", deps.Sales.Create)
	app.Get("/sales/", deps.Sales.List)
	app.Get("/sales/seller/:id", deps.Sales.BySeller)
	app.Get("/sales/customer/:id", deps.Sales.ByCustomer)
	app.Get("/sales/:id", deps.Sales.Get)

	// ---------- Ops ----------
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not Found"})
	})

	return app
}

// recordMetrics observes every request against the matched route so the
// label set stays bounded.
func recordMetrics(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if fe, ok := err.(*fiber.Error); ok {
		status = fe.Code
	}
	// The registry keeps label values forever; fiber reuses the buffers
	// backing Method and Route after the handler returns, so copy first.
	method := utils.CopyString(c.Method())
	route := utils.CopyString(c.Route().Path)
	labels := []string{method, route, strconv.Itoa(status)}
	metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
	metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	return err
}
