package handlers

import (
	"net/http"
	"time"

	"menu_orders/internal/cart"
	"menu_orders/internal/models"
	"menu_orders/internal/redis"
	"menu_orders/internal/repository"

	"github.com/gin-gonic/gin"
)

// CartHandler owns the per-session cart lifecycle: each request restores
// the cart from its redis snapshot, applies one operation, and writes
// the snapshot back with a fresh TTL.
type CartHandler struct {
	redis       *redis.Client
	productRepo repository.ProductRepository
	cartTTL     time.Duration
}

func NewCartHandler(redisClient *redis.Client, productRepo repository.ProductRepository, cartTTL time.Duration) *CartHandler {
	return &CartHandler{
		redis:       redisClient,
		productRepo: productRepo,
		cartTTL:     cartTTL,
	}
}

type addItemRequest struct {
	ProductID           uint   `json:"product_id"`
	VariationID         uint   `json:"variation_id"`
	Quantity            int    `json:"quantity"`
	SelectedIngredients []uint `json:"selected_ingredients"`
	Notes               string `json:"notes"`
}

type updateQuantityRequest struct {
	ProductID   uint `json:"product_id"`
	VariationID uint `json:"variation_id"`
	Quantity    int  `json:"quantity"`
}

type removeItemRequest struct {
	ProductID   uint `json:"product_id"`
	VariationID uint `json:"variation_id"`
}

func (h *CartHandler) loadCart(sessionID string) (*cart.Cart, error) {
	snapshot, err := h.redis.GetCart(sessionID)
	if err != nil {
		return nil, err
	}
	return cart.FromSnapshot(snapshot), nil
}

func (h *CartHandler) saveCart(sessionID string, activeCart *cart.Cart) error {
	return h.redis.SetCart(sessionID, activeCart.Snapshot(), h.cartTTL)
}

func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := c.Param("session_id")

	activeCart, err := h.loadCart(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	respondCart(c, activeCart)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := h.productRepo.GetByID(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	variation, ok := findVariation(product.Variations, req.VariationID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Variation not found"})
		return
	}

	activeCart, err := h.loadCart(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	activeCart.AddItem(*product, variation, req.Quantity, req.SelectedIngredients, req.Notes)

	if err := h.saveCart(sessionID, activeCart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	respondCart(c, activeCart)
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	activeCart, err := h.loadCart(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	activeCart.UpdateQuantity(req.ProductID, req.VariationID, req.Quantity)

	if err := h.saveCart(sessionID, activeCart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	respondCart(c, activeCart)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req removeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	activeCart, err := h.loadCart(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	activeCart.RemoveItem(req.ProductID, req.VariationID)

	if err := h.saveCart(sessionID, activeCart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	respondCart(c, activeCart)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := c.Param("session_id")

	if err := h.redis.DeleteCart(sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": []cart.LineItem{}, "total": 0.0, "item_count": 0})
}

func respondCart(c *gin.Context, activeCart *cart.Cart) {
	items := activeCart.Items()
	if items == nil {
		items = []cart.LineItem{}
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"total":      activeCart.Total(),
		"item_count": activeCart.ItemCount(),
	})
}

func findVariation(variations []models.Variation, id uint) (models.Variation, bool) {
	for _, v := range variations {
		if v.ID == id {
			return v, true
		}
	}
	return models.Variation{}, false
}
