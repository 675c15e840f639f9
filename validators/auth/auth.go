package authValidator

import (
	"schoolhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// TokenPayload validates the identity payload submitted for signing.
// Only the email is checked; the rest of the payload is signed as-is.
func TokenPayload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := make(map[string]interface{})
		if err := c.BodyParser(&payload); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		email, _ := payload["email"].(string)
		if email == "" || validate.Var(email, "email") != nil {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("tokenPayload", payload)
		return c.Next()
	}
}
