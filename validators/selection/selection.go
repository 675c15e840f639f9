package selectionValidator

import (
	"strconv"
	"strings"

	"schoolhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateSelection validator middleware
func CreateSelection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email           string  `json:"email" validate:"required,email"`
			ClassID         uint    `json:"classId" validate:"required"`
			ClassName       string  `json:"className"`
			Image           string  `json:"image"`
			InstructorName  string  `json:"instructorName"`
			InstructorEmail string  `json:"instructorEmail"`
			Price           float64 `json:"price" validate:"gte=0"`
			AvailableSeats  int     `json:"availableSeats" validate:"gte=0"`
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
				case "ClassID":
					errors["classId"] = "Class ID is required!"
				case "Price":
					errors["price"] = "Price cannot be negative!"
				case "AvailableSeats":
					errors["availableSeats"] = "Available seats cannot be negative!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSelection", reqData)
		return c.Next()
	}
}

// SelectionID validates the :id parameter of the delete route
func SelectionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Selection ID is required!", nil)
		}

		selectionID, err := strconv.Atoi(idStr)
		if err != nil || selectionID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Selection ID!", nil)
		}

		c.Locals("selectionID", selectionID)
		return c.Next()
	}
}
