package repository

import (
	"time"

	"menu_orders/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	UpsertByPhone(restaurantID uint, name, phone string) (*models.Customer, error)
	GetByRestaurantID(restaurantID uint) ([]models.Customer, error)
	DeleteByRestaurantID(restaurantID uint) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// UpsertByPhone records the customer on first order and refreshes name
// and last-order time on repeat orders.
func (r *customerRepository) UpsertByPhone(restaurantID uint, name, phone string) (*models.Customer, error) {
	now := time.Now()

	var customer models.Customer
	err := r.db.Where("restaurant_id = ? AND phone = ?", restaurantID, phone).First(&customer).Error
	if err == gorm.ErrRecordNotFound {
		customer = models.Customer{
			RestaurantID: restaurantID,
			Name:         name,
			Phone:        phone,
			LastOrderAt:  &now,
		}
		if err := r.db.Create(&customer).Error; err != nil {
			return nil, err
		}
		return &customer, nil
	}
	if err != nil {
		return nil, err
	}

	customer.Name = name
	customer.LastOrderAt = &now
	if err := r.db.Save(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetByRestaurantID(restaurantID uint) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Where("restaurant_id = ?", restaurantID).Find(&customers).Error
	return customers, err
}

func (r *customerRepository) DeleteByRestaurantID(restaurantID uint) error {
	return r.db.Unscoped().Where("restaurant_id = ?", restaurantID).Delete(&models.Customer{}).Error
}
