package models

import (
	"gorm.io/gorm"
)

// Class represents an instructor-submitted course offering
type Class struct {
	gorm.Model
	ClassName       string  `json:"className" gorm:"not null"`
	Image           string  `json:"image" gorm:"default:''"`
	InstructorName  string  `json:"instructorName" gorm:"default:''"`
	InstructorEmail string  `json:"instructorEmail" gorm:"index;not null"`
	AvailableSeats  int     `json:"availableSeats" gorm:"default:0"`
	Price           float64 `json:"price" gorm:"default:0"`
	Status          string  `json:"status" gorm:"default:'pending'"` // pending, approved, denied
	Feedback        string  `json:"feedback" gorm:"type:text"`
	Enrolled        int     `json:"enrolled" gorm:"default:0"`
}
