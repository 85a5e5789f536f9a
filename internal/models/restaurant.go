package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Restaurant struct {
	ID        uint               `json:"id" gorm:"primaryKey"`
	Name      string             `json:"name" gorm:"not null"`
	Slug      string             `json:"slug" gorm:"unique;not null"`
	OwnerID   uint               `json:"owner_id"`
	OwnerName string             `json:"owner_name"`
	Settings  RestaurantSettings `json:"settings" gorm:"type:jsonb"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	DeletedAt gorm.DeletedAt     `json:"deleted_at" gorm:"index"`
}

// RestaurantSettings is resolved to explicit defaults once at load time,
// so callers never chase missing nested fields.
type RestaurantSettings struct {
	Currency         string   `json:"currency"`
	Theme            string   `json:"theme"`
	WhatsAppNumber   string   `json:"whatsapp_number"`
	DeliveryZones    []string `json:"delivery_zones"`
	DeliveryCost     float64  `json:"delivery_cost"`
	TableCount       int      `json:"table_count"`
	EstimatedMinutes int      `json:"estimated_minutes"`
}

func (s *RestaurantSettings) ApplyDefaults() {
	if s.Currency == "" {
		s.Currency = "USD"
	}
	if s.Theme == "" {
		s.Theme = "classic"
	}
	if s.EstimatedMinutes <= 0 {
		s.EstimatedMinutes = 30
	}
}

// DeliveryEnabled reports whether the restaurant charges for and accepts
// delivery orders: at least one configured zone is required.
func (s RestaurantSettings) DeliveryEnabled() bool {
	return len(s.DeliveryZones) > 0
}

func (s RestaurantSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *RestaurantSettings) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan restaurant settings")
	}
	if err := json.Unmarshal(bytes, s); err != nil {
		return err
	}
	s.ApplyDefaults()
	return nil
}

type Subscription struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RestaurantID uint           `json:"restaurant_id" gorm:"not null;index"`
	Plan         string         `json:"plan" gorm:"default:'free'"` // free, starter, premium
	Status       string         `json:"status" gorm:"default:'active'"`
	ExpiresAt    *time.Time     `json:"expires_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
