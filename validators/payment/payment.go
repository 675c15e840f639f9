package paymentValidator

import (
	"schoolhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreatePaymentIntent validates the payment intent request
func CreatePaymentIntent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Price float64 `json:"price" validate:"required,gt=0"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			errors["price"] = "Price must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedIntent", reqData)
		return c.Next()
	}
}

// FinalizePayment validates the enrollment finalization payload.
// AvailableSeats is the seat count the client observed at submission time;
// the finalizer writes availableSeats-1 as the new stored value.
func FinalizePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email           string                 `json:"email" validate:"required,email"`
			Amount          float64                `json:"amount" validate:"required,gt=0"`
			ClassID         uint                   `json:"classId" validate:"required"`
			SelectionID     uint                   `json:"main_id" validate:"required"`
			AvailableSeats  int                    `json:"availableSeats" validate:"gte=1"`
			ClassName       string                 `json:"className"`
			GatewayResponse map[string]interface{} `json:"gatewayResponse"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Email":
					errors["email"] = "Invalid email!"
				case "Amount":
					errors["amount"] = "Amount must be greater than 0!"
				case "ClassID":
					errors["classId"] = "Class ID is required!"
				case "SelectionID":
					errors["main_id"] = "Selection ID is required!"
				case "AvailableSeats":
					errors["availableSeats"] = "Available seats must be at least 1 to enroll!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
