// Package log is the structured action log. Entries carry the request
// context (method, path, status, request id) when a fiber context is
// available.
package log

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var base = zap.Must(zap.NewProduction())

// Init rebuilds the logger at the configured level. Unknown levels fall
// back to info.
func Init(level string) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stdout"}
	base = zap.Must(cfg.Build())
}

// Sync flushes buffered entries; call on shutdown.
func Sync() { _ = base.Sync() }

func ctxFields(c *fiber.Ctx, action string, fields map[string]any) []zap.Field {
	out := []zap.Field{zap.String("action", action)}
	if c != nil {
		out = append(out,
			zap.String("ip", c.IP()),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
		)
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			out = append(out, zap.String("req_id", rid))
		}
	}
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	base.Info(action, ctxFields(c, action, fields)...)
}

// Audit marks state-changing operations worth tracing back to a request.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	base.Info(action, append(ctxFields(c, action, fields), zap.Bool("audit", true))...)
}

// Security marks rejected input, throttles, and failed logins.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	base.Warn(action, ctxFields(c, action, fields)...)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	base.Error(action, append(ctxFields(c, action, fields), zap.Error(err))...)
}
