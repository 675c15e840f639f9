package userControllers

import (
	"schoolhub/database"
	"schoolhub/middleware"
	"schoolhub/models"

	"github.com/gofiber/fiber/v2"
)

// RegisterUser creates a user record unless the email is already registered
func RegisterUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		PhotoURL string `json:"photoURL"`
		Gender   string `json:"gender"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Registration is idempotent on email: a repeat signup is not an error
	var existingUser models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&existingUser).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "user already exists", nil)
	}

	user := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		PhotoURL: reqData.PhotoURL,
		Gender:   reqData.Gender,
		Phone:    reqData.Phone,
		Address:  reqData.Address,
	}

	if err := database.Database.Db.Create(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully!", user)
}

// GetUsers returns all registered users
func GetUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// GetUserRole returns the role for an email, or null when the user is
// unknown or has no role assigned. Never an error for absent records.
func GetUserRole(c *fiber.Ctx) error {
	email := c.Locals("lookupEmail").(string)

	var role interface{}
	var user models.User
	if err := database.Database.Db.Where("email = ?", email).First(&user).Error; err == nil && user.Role != "" {
		role = user.Role
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role fetched!", fiber.Map{
		"role": role,
	})
}

// UpdateUserRole sets the role field of a user. Only the role is replaced.
func UpdateUserRole(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)
	role := c.Locals("validatedRole").(string)

	var user models.User
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.Database.Db.Model(&user).Update("role", role).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated!", user)
}
