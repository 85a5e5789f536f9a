package repository

import (
	"menu_orders/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetByRestaurantID(restaurantID uint) ([]models.Product, error)
	GetIDsByRestaurantID(restaurantID uint) ([]uint, error)
	Update(product *models.Product) error
	Delete(id uint) error
	DeleteByRestaurantID(restaurantID uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Variations").Preload("Ingredients").First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByRestaurantID(restaurantID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Variations").Preload("Ingredients").
		Where("restaurant_id = ?", restaurantID).Find(&products).Error
	return products, err
}

func (r *productRepository) GetIDsByRestaurantID(restaurantID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Product{}).Where("restaurant_id = ?", restaurantID).Pluck("id", &ids).Error
	return ids, err
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.Product{}, id).Error
}

func (r *productRepository) DeleteByRestaurantID(restaurantID uint) error {
	return r.db.Unscoped().Where("restaurant_id = ?", restaurantID).Delete(&models.Product{}).Error
}
