package repository

import (
	"menu_orders/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByRestaurantID(restaurantID uint) ([]models.Order, error)
	GetIDsByRestaurantID(restaurantID uint) ([]uint, error)
	Update(order *models.Order) error
	DeleteByRestaurantID(restaurantID uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByRestaurantID(restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("restaurant_id = ?", restaurantID).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetIDsByRestaurantID(restaurantID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Order{}).Where("restaurant_id = ?", restaurantID).Pluck("id", &ids).Error
	return ids, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) DeleteByRestaurantID(restaurantID uint) error {
	return r.db.Unscoped().Where("restaurant_id = ?", restaurantID).Delete(&models.Order{}).Error
}
