package models

import (
	"gorm.io/gorm"
)

// SelectedClass is a learner's pending pick of a class, prior to payment.
// Duplicate (email, class) rows are allowed, matching the cart behavior
// of the frontend.
type SelectedClass struct {
	gorm.Model
	Email           string  `json:"email" gorm:"index;not null"`
	ClassID         uint    `json:"classId" gorm:"index;not null"`
	ClassName       string  `json:"className"`
	Image           string  `json:"image"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `json:"instructorEmail"`
	Price           float64 `json:"price"`
	AvailableSeats  int     `json:"availableSeats"` // seat count the learner saw when selecting
}
