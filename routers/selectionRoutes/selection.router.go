package selectionRoutes

import (
	selectionControllers "schoolhub/controllers/selection"
	"schoolhub/middleware"
	selectionValidators "schoolhub/validators/selection"

	"github.com/gofiber/fiber/v2"
)

func SetupSelectionRoutes(app *fiber.App) {
	app.Post("/selectedClasses", middleware.JWTMiddleware, selectionValidators.CreateSelection(), selectionControllers.CreateSelection)
	app.Get("/selectedClasses", middleware.JWTMiddleware, selectionControllers.GetSelections)
	app.Delete("/selectedClasses/:id", middleware.JWTMiddleware, selectionValidators.SelectionID(), selectionControllers.DeleteSelection)
}
