package userRoutes

import (
	userControllers "schoolhub/controllers/user"
	"schoolhub/middleware"
	userValidators "schoolhub/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	app.Post("/users", middleware.JWTMiddleware, userValidators.RegisterUser(), userControllers.RegisterUser)
	app.Get("/users", middleware.JWTMiddleware, userControllers.GetUsers)

	// Role lookup stays public; the frontend calls it before a token exists
	app.Get("/users/admin/:email", userValidators.RoleLookup(), userControllers.GetUserRole)

	app.Put("/users/:id", middleware.JWTMiddleware, userValidators.UpdateRole(), userControllers.UpdateUserRole)
}
