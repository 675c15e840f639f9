package classControllers

import (
	"schoolhub/database"
	"schoolhub/middleware"
	"schoolhub/models"

	"github.com/gofiber/fiber/v2"
)

// GetApprovedClasses returns only classes an admin has approved.
// This is the public catalogue the enrollment page renders.
func GetApprovedClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.Where("status = ?", "approved").Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

// GetAllClasses returns every class, or the classes of one instructor
// when an email query parameter is present
func GetAllClasses(c *fiber.Ctx) error {
	email := c.Query("email")

	db := database.Database.Db
	if email != "" {
		db = db.Where("instructor_email = ?", email)
	}

	var classes []models.Class
	if err := db.Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

// CreateClass stores an instructor submission. New classes always start
// pending until an admin approves or denies them.
func CreateClass(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedClass").(*struct {
		ClassName       string  `json:"className" validate:"required"`
		Image           string  `json:"image"`
		InstructorName  string  `json:"instructorName"`
		InstructorEmail string  `json:"instructorEmail" validate:"required,email"`
		AvailableSeats  int     `json:"availableSeats" validate:"gte=0"`
		Price           float64 `json:"price" validate:"gte=0"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	class := models.Class{
		ClassName:       reqData.ClassName,
		Image:           reqData.Image,
		InstructorName:  reqData.InstructorName,
		InstructorEmail: reqData.InstructorEmail,
		AvailableSeats:  reqData.AvailableSeats,
		Price:           reqData.Price,
		Status:          "pending",
	}

	if err := database.Database.Db.Create(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Class created successfully!", class)
}

// UpdateClassStatus sets only the status field (admin approve/deny)
func UpdateClassStatus(c *fiber.Ctx) error {
	classID := c.Locals("classID").(int)
	status := c.Locals("validatedStatus").(string)

	var class models.Class
	if err := database.Database.Db.Where("id = ?", classID).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	if err := database.Database.Db.Model(&class).Update("status", status).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class status updated!", class)
}

// UpdateClassFeedback sets only the feedback field (admin note to instructor)
func UpdateClassFeedback(c *fiber.Ctx) error {
	classID := c.Locals("classID").(int)
	feedback := c.Locals("validatedFeedback").(string)

	var class models.Class
	if err := database.Database.Db.Where("id = ?", classID).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	if err := database.Database.Db.Model(&class).Update("feedback", feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class feedback updated!", class)
}

// UpdateClassInfo replaces the instructor-editable fields of a class
func UpdateClassInfo(c *fiber.Ctx) error {
	classID := c.Locals("classID").(int)

	reqData, ok := c.Locals("validatedClassInfo").(*struct {
		ClassName      string  `json:"className" validate:"required"`
		AvailableSeats int     `json:"availableSeats" validate:"gte=0"`
		Price          float64 `json:"price" validate:"gte=0"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var class models.Class
	if err := database.Database.Db.Where("id = ?", classID).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	updates := map[string]interface{}{
		"class_name":      reqData.ClassName,
		"available_seats": reqData.AvailableSeats,
		"price":           reqData.Price,
	}
	if err := database.Database.Db.Model(&class).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class updated successfully!", class)
}

// DeleteClass removes a class by identifier
func DeleteClass(c *fiber.Ctx) error {
	classID := c.Locals("classID").(int)

	result := database.Database.Db.Where("id = ?", classID).Delete(&models.Class{})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete class!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class deleted successfully!", fiber.Map{
		"deletedCount": result.RowsAffected,
	})
}
