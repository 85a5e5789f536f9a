package repository

import (
	"menu_orders/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	GetByRestaurantID(restaurantID uint) ([]models.Category, error)
	DeleteByRestaurantID(restaurantID uint) error
	LinkProduct(productID, categoryID uint) error
	GetLinksByCategoryID(categoryID uint) ([]models.ProductCategory, error)
	DeleteLinksByProductIDs(productIDs []uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByRestaurantID(restaurantID uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("restaurant_id = ?", restaurantID).Order("sort_order asc").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) DeleteByRestaurantID(restaurantID uint) error {
	return r.db.Unscoped().Where("restaurant_id = ?", restaurantID).Delete(&models.Category{}).Error
}

func (r *categoryRepository) LinkProduct(productID, categoryID uint) error {
	return r.db.Create(&models.ProductCategory{ProductID: productID, CategoryID: categoryID}).Error
}

func (r *categoryRepository) GetLinksByCategoryID(categoryID uint) ([]models.ProductCategory, error) {
	var links []models.ProductCategory
	err := r.db.Where("category_id = ?", categoryID).Find(&links).Error
	return links, err
}

func (r *categoryRepository) DeleteLinksByProductIDs(productIDs []uint) error {
	if len(productIDs) == 0 {
		return nil
	}
	return r.db.Where("product_id IN ?", productIDs).Delete(&models.ProductCategory{}).Error
}
