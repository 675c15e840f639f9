package userValidator

import (
	"strconv"
	"strings"

	"schoolhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RegisterUser validator middleware
func RegisterUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			PhotoURL string `json:"photoURL"`
			Gender   string `json:"gender"`
			Phone    string `json:"phone"`
			Address  string `json:"address"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Email
		if reqData.Email == "" || validate.Var(reqData.Email, "email") != nil {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

// UpdateRole validates the role assignment request
func UpdateRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required!", nil)
		}

		userID, err := strconv.Atoi(idStr)
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		reqData := new(struct {
			Role string `json:"role"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.Role {
		case "student", "instructor", "admin":
		default:
			errors["role"] = "Role must be student, instructor or admin!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("userID", userID)
		c.Locals("validatedRole", reqData.Role)
		return c.Next()
	}
}

// RoleLookup validates the email path parameter of the role lookup
func RoleLookup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := strings.TrimSpace(c.Params("email"))
		if email == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is required!", nil)
		}

		c.Locals("lookupEmail", email)
		return c.Next()
	}
}
