package model

import "gorm.io/gorm"

// User adalah akun admin dashboard.
type User struct {
	gorm.Model
	Nama     string `json:"nama"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-"`
}
