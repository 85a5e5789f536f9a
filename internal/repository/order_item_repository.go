package repository

import (
	"menu_orders/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	CreateBatch(items []models.OrderItem) error
	GetByOrderID(orderID uint) ([]models.OrderItem, error)
	DeleteByOrderIDs(orderIDs []uint) error
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) CreateBatch(items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

func (r *orderItemRepository) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *orderItemRepository) DeleteByOrderIDs(orderIDs []uint) error {
	if len(orderIDs) == 0 {
		return nil
	}
	return r.db.Unscoped().Where("order_id IN ?", orderIDs).Delete(&models.OrderItem{}).Error
}
