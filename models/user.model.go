package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"default:''"`
	Email    string `json:"email" gorm:"unique;not null"`
	PhotoURL string `json:"photoURL" gorm:"default:''"`
	Role     string `json:"role" gorm:"default:''"` // student, instructor, admin; empty until assigned
	Gender   string `json:"gender" gorm:"default:''"`
	Phone    string `json:"phone" gorm:"default:''"`
	Address  string `json:"address" gorm:"default:''"`
}
