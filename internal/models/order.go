package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	RestaurantID    uint           `json:"restaurant_id" gorm:"not null;index"`
	OrderNumber     string         `json:"order_number" gorm:"not null"`
	CustomerName    string         `json:"customer_name" gorm:"not null"`
	CustomerPhone   string         `json:"customer_phone" gorm:"not null"`
	OrderType       string         `json:"order_type" gorm:"not null"` // pickup, delivery, table
	DeliveryAddress string         `json:"delivery_address"`
	TableNumber     string         `json:"table_number"`
	DeliveryCost    float64        `json:"delivery_cost"`
	Subtotal        float64        `json:"subtotal" gorm:"not null"`
	Total           float64        `json:"total" gorm:"not null"`
	Status          string         `json:"status" gorm:"default:'pending'"` // pending, confirmed, completed, cancelled
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderType string

const (
	OrderPickup   OrderType = "pickup"
	OrderDelivery OrderType = "delivery"
	OrderTable    OrderType = "table"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)
