package selectionControllers

import (
	"schoolhub/database"
	"schoolhub/middleware"
	"schoolhub/models"

	"github.com/gofiber/fiber/v2"
)

// CreateSelection adds a class to a learner's pending list.
// Duplicate selections for the same (email, class) pair are allowed.
func CreateSelection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSelection").(*struct {
		Email           string  `json:"email" validate:"required,email"`
		ClassID         uint    `json:"classId" validate:"required"`
		ClassName       string  `json:"className"`
		Image           string  `json:"image"`
		InstructorName  string  `json:"instructorName"`
		InstructorEmail string  `json:"instructorEmail"`
		Price           float64 `json:"price" validate:"gte=0"`
		AvailableSeats  int     `json:"availableSeats" validate:"gte=0"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	selection := models.SelectedClass{
		Email:           reqData.Email,
		ClassID:         reqData.ClassID,
		ClassName:       reqData.ClassName,
		Image:           reqData.Image,
		InstructorName:  reqData.InstructorName,
		InstructorEmail: reqData.InstructorEmail,
		Price:           reqData.Price,
		AvailableSeats:  reqData.AvailableSeats,
	}

	if err := database.Database.Db.Create(&selection).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to select class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Class selected successfully!", selection)
}

// GetSelections lists a learner's pending selections. A missing email
// query yields an empty list, not an error.
func GetSelections(c *fiber.Ctx) error {
	email := c.Query("email")

	selections := []models.SelectedClass{}
	if email == "" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Selected classes fetched!", selections)
	}

	if err := database.Database.Db.Where("email = ?", email).Find(&selections).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch selected classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Selected classes fetched!", selections)
}

// DeleteSelection removes a pending selection by identifier
func DeleteSelection(c *fiber.Ctx) error {
	selectionID := c.Locals("selectionID").(int)

	result := database.Database.Db.Where("id = ?", selectionID).Delete(&models.SelectedClass{})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete selected class!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Selected class not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Selected class deleted!", fiber.Map{
		"deletedCount": result.RowsAffected,
	})
}
