package repository

import (
	"menu_orders/internal/models"

	"gorm.io/gorm"
)

type IdentityRepository interface {
	Create(identity *models.Identity) error
	GetByID(id string) (*models.Identity, error)
	GetByEmail(email string) (*models.Identity, error)
	Delete(id string) error
}

type identityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) IdentityRepository {
	return &identityRepository{db: db}
}

func (r *identityRepository) Create(identity *models.Identity) error {
	return r.db.Create(identity).Error
}

func (r *identityRepository) GetByID(id string) (*models.Identity, error) {
	var identity models.Identity
	err := r.db.Where("id = ?", id).First(&identity).Error
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

func (r *identityRepository) GetByEmail(email string) (*models.Identity, error) {
	var identity models.Identity
	err := r.db.Where("email = ?", email).First(&identity).Error
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

func (r *identityRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Identity{}).Error
}
