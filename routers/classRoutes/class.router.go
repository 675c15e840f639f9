package classRoutes

import (
	classControllers "schoolhub/controllers/class"
	"schoolhub/middleware"
	classValidators "schoolhub/validators/class"

	"github.com/gofiber/fiber/v2"
)

func SetupClassRoutes(app *fiber.App) {
	// Public catalogue (approved classes only) and the full listing
	app.Get("/addclass", classControllers.GetApprovedClasses)
	app.Get("/addclasses", classControllers.GetAllClasses)

	// Instructor submission and detail update
	app.Post("/addclass", middleware.JWTMiddleware, classValidators.CreateClass(), classControllers.CreateClass)
	app.Patch("/classupdate/:id", middleware.JWTMiddleware, classValidators.UpdateClassInfo(), classControllers.UpdateClassInfo)

	// Admin moderation
	app.Patch("/addclass/:id", middleware.JWTMiddleware, classValidators.UpdateStatus(), classControllers.UpdateClassStatus)
	app.Put("/addclass/:id", middleware.JWTMiddleware, classValidators.UpdateFeedback(), classControllers.UpdateClassFeedback)
	app.Delete("/addclass/:id", middleware.JWTMiddleware, classValidators.ClassID(), classControllers.DeleteClass)
}
