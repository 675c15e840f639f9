package authControllers

import (
	"schoolhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// IssueToken signs the caller-supplied identity payload and returns the token
func IssueToken(c *fiber.Ctx) error {
	payload, ok := c.Locals("tokenPayload").(map[string]interface{})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	token, err := middleware.GenerateJWT(payload)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token issued!", fiber.Map{
		"token": token,
	})
}
