package paymentRoutes

import (
	paymentControllers "schoolhub/controllers/payment"
	"schoolhub/middleware"
	paymentValidators "schoolhub/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	app.Post("/create-payment-intent", middleware.JWTMiddleware, paymentValidators.CreatePaymentIntent(), paymentControllers.CreatePaymentIntent)
	app.Post("/payments", middleware.JWTMiddleware, paymentValidators.FinalizePayment(), paymentControllers.FinalizePayment)

	// Payment history is public in the source; kept that way
	app.Get("/payments", paymentControllers.GetPayments)
}
