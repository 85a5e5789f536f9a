package handlers

import (
	"net/http"

	"menu_orders/internal/repository"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	restaurantRepo repository.RestaurantRepository
	productRepo    repository.ProductRepository
	categoryRepo   repository.CategoryRepository
}

func NewMenuHandler(restaurantRepo repository.RestaurantRepository, productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *MenuHandler {
	return &MenuHandler{
		restaurantRepo: restaurantRepo,
		productRepo:    productRepo,
		categoryRepo:   categoryRepo,
	}
}

// GetMenu serves the public menu for a restaurant slug: restaurant
// settings plus categories and products with variations and ingredients.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	slug := c.Param("slug")

	restaurant, err := h.restaurantRepo.GetBySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	categories, err := h.categoryRepo.GetByRestaurantID(restaurant.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}

	products, err := h.productRepo.GetByRestaurantID(restaurant.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant,
		"categories": categories,
		"products":   products,
	})
}
