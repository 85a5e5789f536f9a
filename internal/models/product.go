package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RestaurantID uint           `json:"restaurant_id" gorm:"not null;index"`
	Name         string         `json:"name" gorm:"not null"`
	Description  string         `json:"description" gorm:"type:text"`
	IsAvailable  bool           `json:"is_available" gorm:"default:true"`
	Variations   []Variation    `json:"variations"`
	Ingredients  []Ingredient   `json:"ingredients"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// Variation is a purchasable size/option of a product. Every product has
// at least one.
type Variation struct {
	ID             uint     `json:"id" gorm:"primaryKey"`
	ProductID      uint     `json:"product_id" gorm:"not null;index"`
	Name           string   `json:"name" gorm:"not null"`
	Price          float64  `json:"price" gorm:"not null"`
	CompareAtPrice *float64 `json:"compare_at_price"`
	SKU            string   `json:"sku"`
}

// Ingredient belongs to a product. Non-optional ingredients are always
// included and never priced; optional ones add ExtraCost when selected.
type Ingredient struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	ProductID uint    `json:"product_id" gorm:"not null;index"`
	Name      string  `json:"name" gorm:"not null"`
	Optional  bool    `json:"optional" gorm:"default:false"`
	ExtraCost float64 `json:"extra_cost"`
}

type Category struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RestaurantID uint           `json:"restaurant_id" gorm:"not null;index"`
	Name         string         `json:"name" gorm:"not null"`
	SortOrder    int            `json:"sort_order" gorm:"default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// ProductCategory links a product to a category within the same
// restaurant.
type ProductCategory struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	ProductID  uint `json:"product_id" gorm:"not null;index"`
	CategoryID uint `json:"category_id" gorm:"not null;index"`
}
