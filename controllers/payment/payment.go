package paymentControllers

import (
	"encoding/json"
	"time"

	"schoolhub/database"
	"schoolhub/middleware"
	"schoolhub/models"
	"schoolhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreatePaymentIntent asks the payment processor for a client secret the
// frontend uses to confirm the card payment. Amount is sent in minor units.
func CreatePaymentIntent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIntent").(*struct {
		Price float64 `json:"price" validate:"required,gt=0"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	amount := int(reqData.Price * 100)

	intent, err := utils.CreatePaymentIntent(amount, "usd")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment intent!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment intent created!", fiber.Map{
		"clientSecret": intent.ClientSecret,
	})
}

// FinalizePayment converts a confirmed card payment into durable state:
// the payment row is appended, the class seat count is rewritten to the
// client-declared count minus one, and the originating selection is
// retired. All three writes share one transaction, so a failure partway
// leaves no orphan payment behind and a client retry cannot double-charge.
//
// The seat count is deliberately the value the client observed, not a
// fresh read, so two concurrent finalizations of the same class can both
// write from a stale baseline. The seat audit job reports the drift.
func FinalizePayment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPayment").(*struct {
		Email           string                 `json:"email" validate:"required,email"`
		Amount          float64                `json:"amount" validate:"required,gt=0"`
		ClassID         uint                   `json:"classId" validate:"required"`
		SelectionID     uint                   `json:"main_id" validate:"required"`
		AvailableSeats  int                    `json:"availableSeats" validate:"gte=1"`
		ClassName       string                 `json:"className"`
		GatewayResponse map[string]interface{} `json:"gatewayResponse"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	newSeats := reqData.AvailableSeats - 1

	var gatewayResponse datatypes.JSON
	if reqData.GatewayResponse != nil {
		if jsonBytes, err := json.Marshal(reqData.GatewayResponse); err == nil {
			gatewayResponse = datatypes.JSON(jsonBytes)
		}
	}

	payment := models.Payment{
		Email:           reqData.Email,
		TransactionID:   uuid.NewString(),
		Amount:          reqData.Amount,
		ClassID:         reqData.ClassID,
		SelectionID:     reqData.SelectionID,
		ClassName:       reqData.ClassName,
		Date:            time.Now(),
		GatewayResponse: gatewayResponse,
	}

	var deletedCount int64

	tx := database.Database.Db.Begin()

	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	seatUpdate := tx.Model(&models.Class{}).Where("id = ?", reqData.ClassID).Updates(map[string]interface{}{
		"available_seats": newSeats,
		"enrolled":        gorm.Expr("enrolled + 1"),
	})
	if seatUpdate.Error != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update seats!", nil)
	}
	if seatUpdate.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	deleteResult := tx.Where("id = ?", reqData.SelectionID).Delete(&models.SelectedClass{})
	if deleteResult.Error != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove selected class!", nil)
	}
	deletedCount = deleteResult.RowsAffected

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to finalize payment!", nil)
	}

	// Best effort; a failed receipt never fails the enrollment
	utils.SendPaymentReceipt(payment.Email, payment.ClassName, payment.Amount, payment.TransactionID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment recorded successfully!", fiber.Map{
		"payment":        payment,
		"availableSeats": newSeats,
		"deletedCount":   deletedCount,
	})
}

// GetPayments returns a learner's payment history, newest first
func GetPayments(c *fiber.Ctx) error {
	email := c.Query("email")

	payments := []models.Payment{}
	if email == "" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched!", payments)
	}

	if err := database.Database.Db.Where("email = ?", email).Order("date desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched!", payments)
}
