package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"gymclub_backend/internals/configs"
)

// Setup installs the base chain: panic recovery first, then CORS, then the
// global limiter.
func Setup(app *fiber.App, cfg *configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware(cfg.AllowOrigins))
	app.Use(GlobalRateLimiter())
}
