package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment is the durable record of a completed enrollment purchase.
// Rows are append-only; nothing in the system mutates or deletes them.
type Payment struct {
	gorm.Model
	Email           string         `json:"email" gorm:"index;not null"`
	TransactionID   string         `json:"transactionId" gorm:"uniqueIndex;not null"`
	Amount          float64        `json:"amount" gorm:"not null"`
	ClassID         uint           `json:"classId" gorm:"index;not null"`
	SelectionID     uint           `json:"main_id" gorm:"index;not null"`
	ClassName       string         `json:"className"`
	Date            time.Time      `json:"date"`
	GatewayResponse datatypes.JSON `json:"gatewayResponse,omitempty"`
}
