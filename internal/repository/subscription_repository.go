package repository

import (
	"menu_orders/internal/models"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Create(subscription *models.Subscription) error
	GetByRestaurantID(restaurantID uint) ([]models.Subscription, error)
	DeleteByRestaurantID(restaurantID uint) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(subscription *models.Subscription) error {
	return r.db.Create(subscription).Error
}

func (r *subscriptionRepository) GetByRestaurantID(restaurantID uint) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	err := r.db.Where("restaurant_id = ?", restaurantID).Find(&subscriptions).Error
	return subscriptions, err
}

func (r *subscriptionRepository) DeleteByRestaurantID(restaurantID uint) error {
	return r.db.Unscoped().Where("restaurant_id = ?", restaurantID).Delete(&models.Subscription{}).Error
}
