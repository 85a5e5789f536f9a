package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type OrderItem struct {
	ID                  uint           `json:"id" gorm:"primaryKey"`
	OrderID             uint           `json:"order_id" gorm:"not null;index"`
	ProductID           uint           `json:"product_id" gorm:"not null"`
	VariationID         uint           `json:"variation_id" gorm:"not null"`
	ProductName         string         `json:"product_name" gorm:"not null"`
	VariationName       string         `json:"variation_name"`
	Quantity            int            `json:"quantity" gorm:"not null"`
	UnitPrice           float64        `json:"unit_price" gorm:"not null"`
	ExtrasCost          float64        `json:"extras_cost"`
	TotalPrice          float64        `json:"total_price" gorm:"not null"`
	SelectedIngredients IDList         `json:"selected_ingredients" gorm:"type:jsonb"`
	Notes               string         `json:"notes" gorm:"type:text"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// IDList stores a list of ingredient ids as a JSON column.
type IDList []uint

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		l = IDList{}
	}
	return json.Marshal(l)
}

func (l *IDList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan id list")
	}
	return json.Unmarshal(bytes, l)
}
