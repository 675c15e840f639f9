package classValidator

import (
	"strconv"
	"strings"

	"schoolhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseClassID validates the :id path parameter shared by the class routes
func parseClassID(c *fiber.Ctx) (int, bool) {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return 0, false
	}
	classID, err := strconv.Atoi(idStr)
	if err != nil || classID <= 0 {
		return 0, false
	}
	return classID, true
}

// CreateClass validator middleware
func CreateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClassName       string  `json:"className" validate:"required"`
			Image           string  `json:"image"`
			InstructorName  string  `json:"instructorName"`
			InstructorEmail string  `json:"instructorEmail" validate:"required,email"`
			AvailableSeats  int     `json:"availableSeats" validate:"gte=0"`
			Price           float64 `json:"price" validate:"gte=0"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "ClassName":
					errors["className"] = "Class name is required!"
				case "InstructorEmail":
					errors["instructorEmail"] = "Invalid instructor email!"
				case "AvailableSeats":
					errors["availableSeats"] = "Available seats cannot be negative!"
				case "Price":
					errors["price"] = "Price cannot be negative!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClass", reqData)
		return c.Next()
	}
}

// ClassID validates the :id parameter for delete and lookups
func ClassID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		classID, ok := parseClassID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Class ID!", nil)
		}

		c.Locals("classID", classID)
		return c.Next()
	}
}

// UpdateStatus validates the admin status change request
func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		classID, ok := parseClassID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Class ID!", nil)
		}

		reqData := new(struct {
			Status string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.Status {
		case "pending", "approved", "denied":
		default:
			errors["status"] = "Status must be pending, approved or denied!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("classID", classID)
		c.Locals("validatedStatus", reqData.Status)
		return c.Next()
	}
}

// UpdateFeedback validates the admin feedback request
func UpdateFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		classID, ok := parseClassID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Class ID!", nil)
		}

		reqData := new(struct {
			Feedback string `json:"feedback"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Feedback) == "" {
			errors["feedback"] = "Feedback is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("classID", classID)
		c.Locals("validatedFeedback", reqData.Feedback)
		return c.Next()
	}
}

// UpdateClassInfo validates the instructor class detail update
func UpdateClassInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		classID, ok := parseClassID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Class ID!", nil)
		}

		reqData := new(struct {
			ClassName      string  `json:"className" validate:"required"`
			AvailableSeats int     `json:"availableSeats" validate:"gte=0"`
			Price          float64 `json:"price" validate:"gte=0"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "ClassName":
					errors["className"] = "Class name is required!"
				case "AvailableSeats":
					errors["availableSeats"] = "Available seats cannot be negative!"
				case "Price":
					errors["price"] = "Price cannot be negative!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("classID", classID)
		c.Locals("validatedClassInfo", reqData)
		return c.Next()
	}
}
