package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	IdentityID   string         `json:"identity_id" gorm:"unique;not null"`
	RestaurantID uint           `json:"restaurant_id" gorm:"index"`
	Name         string         `json:"name" gorm:"not null"`
	Email        string         `json:"email" gorm:"unique;not null"`
	Role         string         `json:"role" gorm:"default:'staff'"` // superadmin, restaurant_owner, staff
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type UserRole string

const (
	SuperAdmin      UserRole = "superadmin"
	RestaurantOwner UserRole = "restaurant_owner"
	Staff           UserRole = "staff"
)

// Identity is the auth-service account backing a User. Application rows
// reference it by IdentityID; tenant deprovisioning removes both.
type Identity struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"unique;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}
