package authRoutes

import (
	authControllers "schoolhub/controllers/auth"
	authValidators "schoolhub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/jwt", authValidators.TokenPayload(), authControllers.IssueToken)
}
